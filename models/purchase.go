package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a purchase was paid for
type PaymentMethod string

const (
	PaymentDebitCard  PaymentMethod = "debit_card"
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentPaypal     PaymentMethod = "paypal"
)

// Valid reports whether p is one of the accepted payment methods
func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentDebitCard, PaymentCreditCard, PaymentPaypal:
		return true
	}
	return false
}

// Purchase is the immutable record of a completed course acquisition.
// CouponCode keeps the code as applied even if the coupon is later deleted.
type Purchase struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UserID        uint            `gorm:"not null;index" json:"user_id"`
	User          User            `gorm:"foreignKey:UserID" json:"-"`
	CourseID      uint            `gorm:"not null;index" json:"course_id"`
	Course        Course          `gorm:"foreignKey:CourseID" json:"-"`
	CouponID      *uint           `gorm:"index" json:"coupon_id,omitempty"`
	Coupon        *Coupon         `gorm:"foreignKey:CouponID" json:"-"`
	CouponCode    string          `gorm:"size:64" json:"coupon_code,omitempty"`
	PaymentMethod PaymentMethod   `gorm:"type:varchar(20);not null" json:"payment_method"`
	OriginalPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"original_price"`
	Discount      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"discount"`
	PaidAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"paid_amount"`
	PurchasedAt   time.Time       `gorm:"not null;index" json:"purchased_at"`
}
