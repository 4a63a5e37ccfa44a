package services

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/Govind-619/SkillSphere/models"
	"github.com/Govind-619/SkillSphere/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CouponInput carries the admin-editable fields of a coupon
type CouponInput struct {
	Code        string
	DiscountPct decimal.Decimal
	Quota       int
	ExpiryDate  time.Time
}

func (in CouponInput) validate(now time.Time) error {
	if utf8.RuneCountInString(NormalizeCouponCode(in.Code)) < utils.MinCouponCodeLength {
		return utils.ValidationErr("Validation error: coupon code must be at least 5 characters.", nil)
	}
	if !in.DiscountPct.IsPositive() {
		return utils.ValidationErr("Validation error: discount value must be positive.", nil)
	}
	if in.DiscountPct.GreaterThan(hundred) {
		return utils.ValidationErr("Validation error: discount value must not exceed 100.", nil)
	}
	if in.Quota <= 0 {
		return utils.ValidationErr("Validation error: quota must be positive.", nil)
	}
	if !in.ExpiryDate.After(now) {
		return utils.ValidationErr("Validation error: expiry date must be in the future.", nil)
	}
	return nil
}

// codeTaken reports whether another non-deleted coupon uses code
func codeTaken(tx *gorm.DB, code string, excludeID uint) (bool, error) {
	q := tx.Model(&models.Coupon{}).Where("code = ?", code)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func duplicateCode() error {
	return utils.ValidationErr("Validation error: coupon code must be unique.", ErrDuplicateCoupon)
}

// CreateCoupon validates and stores a new coupon
func CreateCoupon(ctx context.Context, db *gorm.DB, in CouponInput) (*models.Coupon, error) {
	if err := in.validate(time.Now().UTC()); err != nil {
		return nil, err
	}

	coupon := models.Coupon{
		Code:        NormalizeCouponCode(in.Code),
		DiscountPct: in.DiscountPct,
		Quota:       in.Quota,
		ExpiryDate:  in.ExpiryDate.UTC(),
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := codeTaken(tx, coupon.Code, 0)
		if err != nil {
			return utils.InternalError("Failed to check coupon code", err)
		}
		if taken {
			return duplicateCode()
		}
		if err := tx.Create(&coupon).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return duplicateCode()
			}
			return utils.InternalError("Failed to create coupon", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.LogInfo("Created coupon %s (id %d, %s%%, quota %d)", coupon.Code, coupon.ID, coupon.DiscountPct.String(), coupon.Quota)
	return &coupon, nil
}

// UpdateCoupon replaces the editable fields of coupon id
func UpdateCoupon(ctx context.Context, db *gorm.DB, id uint, in CouponInput) (*models.Coupon, error) {
	var coupon models.Coupon
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&coupon, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("Coupon not found.", ErrCouponNotFound)
			}
			return utils.InternalError("Failed to load coupon", err)
		}
		if err := in.validate(time.Now().UTC()); err != nil {
			return err
		}

		code := NormalizeCouponCode(in.Code)
		taken, err := codeTaken(tx, code, coupon.ID)
		if err != nil {
			return utils.InternalError("Failed to check coupon code", err)
		}
		if taken {
			return duplicateCode()
		}

		err = tx.Model(&coupon).Updates(map[string]interface{}{
			"code":         code,
			"discount_pct": in.DiscountPct,
			"quota":        in.Quota,
			"expiry_date":  in.ExpiryDate.UTC(),
		}).Error
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return duplicateCode()
			}
			return utils.InternalError("Failed to update coupon", err)
		}
		return tx.First(&coupon, id).Error
	})
	if err != nil {
		return nil, err
	}

	utils.LogInfo("Updated coupon %s (id %d)", coupon.Code, coupon.ID)
	return &coupon, nil
}

// DeleteCoupon soft-deletes coupon id, freeing its code for reuse
func DeleteCoupon(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&models.Coupon{}, id)
	if res.Error != nil {
		return utils.InternalError("Failed to delete coupon", res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.NotFoundError("Coupon not found.", ErrCouponNotFound)
	}
	utils.LogInfo("Deleted coupon %d", id)
	return nil
}

// ListActiveCoupons returns coupons that can still be redeemed, newest first
func ListActiveCoupons(ctx context.Context, db *gorm.DB) ([]models.Coupon, error) {
	var coupons []models.Coupon
	err := db.WithContext(ctx).
		Where("expiry_date > ? AND quota > 0", time.Now().UTC()).
		Order("created_at DESC, id DESC").
		Find(&coupons).Error
	if err != nil {
		return nil, utils.InternalError("Failed to list coupons", err)
	}
	return coupons, nil
}
