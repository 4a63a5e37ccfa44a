package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Coupon grants a percentage discount for a limited number of purchases.
// Codes are stored upper-case and are unique among non-deleted coupons.
type Coupon struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Code        string          `gorm:"size:64;not null;uniqueIndex:idx_coupons_code_active,where:deleted_at IS NULL" json:"code"`
	DiscountPct decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"discount_pct"`
	Quota       int             `gorm:"not null;default:0;check:quota >= 0" json:"quota"`
	ExpiryDate  time.Time       `gorm:"not null;index" json:"expiry_date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

// IsExpired reports whether the coupon expiry is at or before now
func (c Coupon) IsExpired(now time.Time) bool {
	return !c.ExpiryDate.After(now)
}

// Redeemable reports whether the coupon can still be applied at now
func (c Coupon) Redeemable(now time.Time) bool {
	return !c.IsExpired(now) && c.Quota > 0
}
