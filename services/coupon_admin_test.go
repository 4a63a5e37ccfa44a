package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Govind-619/SkillSphere/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCouponInput(code string) CouponInput {
	return CouponInput{
		Code:        code,
		DiscountPct: decimal.NewFromInt(25),
		Quota:       10,
		ExpiryDate:  time.Now().Add(72 * time.Hour),
	}
}

func TestCreateCoupon(t *testing.T) {
	db := utils.SetupTestDB(t)
	ctx := context.Background()

	coupon, err := CreateCoupon(ctx, db, validCouponInput(" spring25 "))
	require.NoError(t, err)
	assert.Equal(t, "SPRING25", coupon.Code)
	assert.Equal(t, 10, coupon.Quota)
	assert.NotZero(t, coupon.ID)

	_, err = CreateCoupon(ctx, db, validCouponInput("Spring25"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateCoupon))
	assert.Equal(t, http.StatusUnprocessableEntity, utils.StatusOf(err))
}

func TestCreateCoupon_Validation(t *testing.T) {
	db := utils.SetupTestDB(t)

	tests := []struct {
		name   string
		modify func(*CouponInput)
	}{
		{"short code", func(in *CouponInput) { in.Code = "AB12" }},
		{"blank padded code", func(in *CouponInput) { in.Code = "  AB1  " }},
		{"zero discount", func(in *CouponInput) { in.DiscountPct = decimal.Zero }},
		{"negative discount", func(in *CouponInput) { in.DiscountPct = decimal.NewFromInt(-5) }},
		{"discount over 100", func(in *CouponInput) { in.DiscountPct = decimal.RequireFromString("100.01") }},
		{"zero quota", func(in *CouponInput) { in.Quota = 0 }},
		{"expiry in the past", func(in *CouponInput) { in.ExpiryDate = time.Now().Add(-time.Hour) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCouponInput("VALID01")
			tt.modify(&in)

			_, err := CreateCoupon(context.Background(), db, in)
			require.Error(t, err)
			assert.True(t, utils.IsValidationError(err))
		})
	}

	in := validCouponInput("FULL100")
	in.DiscountPct = decimal.NewFromInt(100)
	_, err := CreateCoupon(context.Background(), db, in)
	assert.NoError(t, err)
}

func TestUpdateCoupon(t *testing.T) {
	db := utils.SetupTestDB(t)
	ctx := context.Background()

	first, err := CreateCoupon(ctx, db, validCouponInput("FIRST01"))
	require.NoError(t, err)
	_, err = CreateCoupon(ctx, db, validCouponInput("SECOND1"))
	require.NoError(t, err)

	in := validCouponInput("first01")
	in.Quota = 3
	in.DiscountPct = decimal.NewFromInt(40)
	updated, err := UpdateCoupon(ctx, db, first.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "FIRST01", updated.Code)
	assert.Equal(t, 3, updated.Quota)
	assert.True(t, decimal.NewFromInt(40).Equal(updated.DiscountPct))

	_, err = UpdateCoupon(ctx, db, first.ID, validCouponInput("SECOND1"))
	assert.True(t, errors.Is(err, ErrDuplicateCoupon))

	_, err = UpdateCoupon(ctx, db, first.ID+100, validCouponInput("OTHER01"))
	assert.True(t, errors.Is(err, ErrCouponNotFound))
	assert.Equal(t, http.StatusNotFound, utils.StatusOf(err))

	bad := validCouponInput("FIRST01")
	bad.Quota = -1
	_, err = UpdateCoupon(ctx, db, first.ID, bad)
	assert.True(t, utils.IsValidationError(err))
}

func TestDeleteCoupon_FreesCode(t *testing.T) {
	db := utils.SetupTestDB(t)
	ctx := context.Background()

	coupon, err := CreateCoupon(ctx, db, validCouponInput("REUSE01"))
	require.NoError(t, err)

	require.NoError(t, DeleteCoupon(ctx, db, coupon.ID))
	assert.True(t, errors.Is(DeleteCoupon(ctx, db, coupon.ID), ErrCouponNotFound))

	again, err := CreateCoupon(ctx, db, validCouponInput("REUSE01"))
	require.NoError(t, err)
	assert.NotEqual(t, coupon.ID, again.ID)
}

func TestListActiveCoupons(t *testing.T) {
	db := utils.SetupTestDB(t)

	active := utils.CreateTestCoupon(t, db, "ACTIVE1", 10, 5, time.Hour)
	utils.CreateTestCoupon(t, db, "EXPIRED", 10, 5, -time.Hour)
	utils.CreateTestCoupon(t, db, "USEDUP1", 10, 0, time.Hour)
	deleted := utils.CreateTestCoupon(t, db, "DELETED", 10, 5, time.Hour)
	require.NoError(t, db.Delete(deleted).Error)

	coupons, err := ListActiveCoupons(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, coupons, 1)
	assert.Equal(t, active.ID, coupons[0].ID)
}
