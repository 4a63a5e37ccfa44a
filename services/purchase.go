package services

import (
	"context"
	"errors"
	"time"

	"github.com/Govind-619/SkillSphere/models"
	"github.com/Govind-619/SkillSphere/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PurchaseInput describes a purchase request by an authenticated user
type PurchaseInput struct {
	UserID        uint
	CourseID      uint
	PaymentMethod models.PaymentMethod
	CouponCode    string
}

// Receipt is returned to the buyer once the purchase is committed
type Receipt struct {
	PurchaseID    uint                 `json:"purchaseId"`
	CourseID      uint                 `json:"courseId"`
	CourseTitle   string               `json:"courseTitle"`
	UserID        uint                 `json:"userId"`
	PurchaseDate  time.Time            `json:"purchaseDate"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	OriginalPrice decimal.Decimal      `json:"originalPrice"`
	Discount      decimal.Decimal      `json:"discountApplied"`
	PaidAmount    decimal.Decimal      `json:"paidAmount"`
	CouponCode    string               `json:"couponCode,omitempty"`
}

// PurchaseCourse records a purchase of a course, applying the coupon when one
// is given. The coupon quota decrement and the purchase insert commit together.
func PurchaseCourse(ctx context.Context, db *gorm.DB, in PurchaseInput) (*Receipt, error) {
	if !in.PaymentMethod.Valid() {
		return nil, utils.ValidationErr("Validation error: payment method must be one of debit_card, credit_card, paypal.", ErrInvalidPaymentMethod)
	}
	if in.UserID == 0 {
		return nil, utils.UnauthorizedError(utils.ErrInvalidToken, ErrUnauthenticated)
	}

	var (
		purchase models.Purchase
		course   models.Course
	)
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&course, in.CourseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("Course not found.", ErrCourseNotFound)
			}
			return utils.InternalError("Failed to load course", err)
		}

		now := time.Now().UTC()
		purchase = models.Purchase{
			UserID:        in.UserID,
			CourseID:      course.ID,
			PaymentMethod: in.PaymentMethod,
			OriginalPrice: course.Price,
			Discount:      decimal.Zero,
			PurchasedAt:   now,
		}

		if code := NormalizeCouponCode(in.CouponCode); code != "" {
			redemption, err := RedeemCoupon(tx, code, course.Price, now)
			if err != nil {
				return err
			}
			couponID := redemption.Coupon.ID
			purchase.CouponID = &couponID
			purchase.CouponCode = redemption.Coupon.Code
			purchase.Discount = redemption.Discount
		}
		purchase.PaidAmount = course.Price.Sub(purchase.Discount)

		if err := tx.Omit(clause.Associations).Create(&purchase).Error; err != nil {
			return utils.InternalError("Failed to record purchase", err)
		}
		return nil
	})
	utils.Purchases.WithLabelValues(utils.Outcome(err)).Inc()
	if err != nil {
		if utils.GetAppError(err) == nil {
			return nil, utils.InternalError("Failed to commit purchase", err)
		}
		return nil, err
	}

	utils.LogInfo("User %d purchased course %d (purchase %d, paid %s, coupon %q)",
		purchase.UserID, purchase.CourseID, purchase.ID, purchase.PaidAmount.StringFixed(2), purchase.CouponCode)

	return &Receipt{
		PurchaseID:    purchase.ID,
		CourseID:      purchase.CourseID,
		CourseTitle:   course.Title,
		UserID:        purchase.UserID,
		PurchaseDate:  purchase.PurchasedAt,
		PaymentMethod: purchase.PaymentMethod,
		OriginalPrice: purchase.OriginalPrice,
		Discount:      purchase.Discount,
		PaidAmount:    purchase.PaidAmount,
		CouponCode:    purchase.CouponCode,
	}, nil
}
