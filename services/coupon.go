package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Govind-619/SkillSphere/models"
	"github.com/Govind-619/SkillSphere/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// quotaAttempts bounds the compare-and-swap on coupon quota
const quotaAttempts = 2

var hundred = decimal.NewFromInt(100)

// Redemption is the outcome of applying a coupon to a price
type Redemption struct {
	Coupon   models.Coupon
	Discount decimal.Decimal
}

// NormalizeCouponCode trims and upper-cases a coupon code
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CalculateDiscount returns pct percent of price, rounded to cents
func CalculateDiscount(price, pct decimal.Decimal) decimal.Decimal {
	return price.Mul(pct).Div(hundred).Round(2)
}

// RedeemCoupon validates the coupon identified by code and consumes one unit
// of its quota. tx must be the transaction that records the purchase, so a
// failed purchase write also restores the quota.
func RedeemCoupon(tx *gorm.DB, code string, price decimal.Decimal, now time.Time) (*Redemption, error) {
	redemption, err := redeemCoupon(tx, NormalizeCouponCode(code), price, now)
	utils.CouponRedemptions.WithLabelValues(utils.Outcome(err)).Inc()
	return redemption, err
}

func redeemCoupon(tx *gorm.DB, code string, price decimal.Decimal, now time.Time) (*Redemption, error) {
	var coupon models.Coupon
	if err := tx.Where("code = ?", code).First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Coupon not found.", ErrCouponNotFound)
		}
		return nil, utils.InternalError("Failed to load coupon", err)
	}

	if coupon.IsExpired(now) {
		utils.LogInfo("Rejected expired coupon %s (expired %s)", coupon.Code, coupon.ExpiryDate.Format(time.RFC3339))
		return nil, utils.ValidationErr("Validation error: coupon has expired.", ErrCouponExpired)
	}
	if coupon.Quota <= 0 {
		utils.LogInfo("Rejected exhausted coupon %s", coupon.Code)
		return nil, utils.ConflictError("Coupon quota has been exhausted.", ErrQuotaExhausted)
	}

	if err := decrementQuota(tx, &coupon); err != nil {
		return nil, err
	}

	return &Redemption{
		Coupon:   coupon,
		Discount: CalculateDiscount(price, coupon.DiscountPct),
	}, nil
}

// decrementQuota takes one unit of quota only while quota is still positive.
// A lost race re-reads the row once before giving up.
func decrementQuota(tx *gorm.DB, coupon *models.Coupon) error {
	for attempt := 1; attempt <= quotaAttempts; attempt++ {
		res := tx.Model(&models.Coupon{}).
			Where("id = ? AND quota > 0", coupon.ID).
			Update("quota", gorm.Expr("quota - ?", 1))
		if res.Error != nil {
			return utils.InternalError("Failed to update coupon quota", res.Error)
		}
		if res.RowsAffected == 1 {
			coupon.Quota--
			return nil
		}

		utils.LogDebug("Quota update for coupon %s missed on attempt %d", coupon.Code, attempt)
		var current models.Coupon
		if err := tx.First(&current, coupon.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("Coupon not found.", ErrCouponNotFound)
			}
			return utils.InternalError("Failed to reload coupon", err)
		}
		if current.Quota <= 0 {
			return utils.ConflictError("Coupon quota has been exhausted.", ErrQuotaExhausted)
		}
		*coupon = current
	}
	return utils.ConflictError("Coupon is being redeemed concurrently, please retry.", ErrQuotaConflict)
}
