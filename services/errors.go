package services

import "errors"

var (
	ErrCouponNotFound       = errors.New("coupon not found")
	ErrCouponExpired        = errors.New("coupon has expired")
	ErrQuotaExhausted       = errors.New("coupon quota exhausted")
	ErrQuotaConflict        = errors.New("coupon quota changed concurrently")
	ErrDuplicateCoupon      = errors.New("coupon code already exists")
	ErrCourseNotFound       = errors.New("course not found")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrBadCredentials       = errors.New("invalid credentials")
)
