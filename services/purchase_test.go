package services

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/Govind-619/SkillSphere/models"
	"github.com/Govind-619/SkillSphere/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countPurchases(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Purchase{}).Count(&n).Error)
	return n
}

func TestPurchaseCourse_WithCoupon(t *testing.T) {
	db := utils.SetupTestDB(t)
	user := utils.CreateTestUser(t, db, "buyer@example.com", models.RoleStudent)
	course := utils.CreateTestCourse(t, db, "Go Fundamentals", "100.00")
	coupon := utils.CreateTestCoupon(t, db, "SAVE20", 20, 3, 24*time.Hour)

	receipt, err := PurchaseCourse(context.Background(), db, PurchaseInput{
		UserID:        user.ID,
		CourseID:      course.ID,
		PaymentMethod: models.PaymentCreditCard,
		CouponCode:    "save20",
	})
	require.NoError(t, err)

	assert.NotZero(t, receipt.PurchaseID)
	assert.Equal(t, "Go Fundamentals", receipt.CourseTitle)
	assert.Equal(t, "SAVE20", receipt.CouponCode)
	assert.True(t, decimal.NewFromInt(100).Equal(receipt.OriginalPrice))
	assert.True(t, decimal.NewFromInt(20).Equal(receipt.Discount))
	assert.True(t, decimal.NewFromInt(80).Equal(receipt.PaidAmount))
	assert.Equal(t, 2, reloadCoupon(t, db, coupon.ID).Quota)

	var stored models.Purchase
	require.NoError(t, db.First(&stored, receipt.PurchaseID).Error)
	require.NotNil(t, stored.CouponID)
	assert.Equal(t, coupon.ID, *stored.CouponID)
	assert.True(t, decimal.NewFromInt(80).Equal(stored.PaidAmount))
}

func TestPurchaseCourse_WithoutCoupon(t *testing.T) {
	db := utils.SetupTestDB(t)
	user := utils.CreateTestUser(t, db, "buyer@example.com", models.RoleStudent)
	course := utils.CreateTestCourse(t, db, "Kubernetes", "49.99")

	receipt, err := PurchaseCourse(context.Background(), db, PurchaseInput{
		UserID:        user.ID,
		CourseID:      course.ID,
		PaymentMethod: models.PaymentPaypal,
	})
	require.NoError(t, err)

	assert.True(t, decimal.Zero.Equal(receipt.Discount))
	assert.True(t, course.Price.Equal(receipt.PaidAmount))
	assert.Empty(t, receipt.CouponCode)

	var stored models.Purchase
	require.NoError(t, db.First(&stored, receipt.PurchaseID).Error)
	assert.Nil(t, stored.CouponID)
}

func TestPurchaseCourse_Rejections(t *testing.T) {
	db := utils.SetupTestDB(t)
	user := utils.CreateTestUser(t, db, "buyer@example.com", models.RoleStudent)
	course := utils.CreateTestCourse(t, db, "Rust", "60")
	utils.CreateTestCoupon(t, db, "EXPIRED1", 50, 10, -time.Minute)
	utils.CreateTestCoupon(t, db, "EMPTY01", 50, 0, time.Hour)

	tests := []struct {
		name       string
		in         PurchaseInput
		wantStatus int
		wantErr    error
	}{
		{
			name:       "invalid payment method",
			in:         PurchaseInput{UserID: user.ID, CourseID: course.ID, PaymentMethod: "cash"},
			wantStatus: http.StatusUnprocessableEntity,
			wantErr:    ErrInvalidPaymentMethod,
		},
		{
			name:       "missing user",
			in:         PurchaseInput{CourseID: course.ID, PaymentMethod: models.PaymentDebitCard},
			wantStatus: http.StatusUnauthorized,
			wantErr:    ErrUnauthenticated,
		},
		{
			name:       "unknown course",
			in:         PurchaseInput{UserID: user.ID, CourseID: course.ID + 100, PaymentMethod: models.PaymentDebitCard},
			wantStatus: http.StatusNotFound,
			wantErr:    ErrCourseNotFound,
		},
		{
			name:       "unknown coupon",
			in:         PurchaseInput{UserID: user.ID, CourseID: course.ID, PaymentMethod: models.PaymentDebitCard, CouponCode: "WHO_KNOWS"},
			wantStatus: http.StatusNotFound,
			wantErr:    ErrCouponNotFound,
		},
		{
			name:       "expired coupon",
			in:         PurchaseInput{UserID: user.ID, CourseID: course.ID, PaymentMethod: models.PaymentDebitCard, CouponCode: "EXPIRED1"},
			wantStatus: http.StatusUnprocessableEntity,
			wantErr:    ErrCouponExpired,
		},
		{
			name:       "exhausted coupon",
			in:         PurchaseInput{UserID: user.ID, CourseID: course.ID, PaymentMethod: models.PaymentDebitCard, CouponCode: "EMPTY01"},
			wantStatus: http.StatusConflict,
			wantErr:    ErrQuotaExhausted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			receipt, err := PurchaseCourse(context.Background(), db, tt.in)
			require.Error(t, err)
			assert.Nil(t, receipt)
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.Equal(t, tt.wantStatus, utils.StatusOf(err))
		})
	}

	assert.Zero(t, countPurchases(t, db))
}

func TestPurchaseCourse_RollsBackQuotaWhenInsertFails(t *testing.T) {
	db := utils.SetupTestDB(t)
	user := utils.CreateTestUser(t, db, "buyer@example.com", models.RoleStudent)
	course := utils.CreateTestCourse(t, db, "Postgres Internals", "100")
	coupon := utils.CreateTestCoupon(t, db, "SAVE20", 20, 3, time.Hour)

	err := db.Callback().Create().Before("gorm:create").Register("test:fail_purchase_insert", func(tx *gorm.DB) {
		if tx.Statement.Table == "purchases" {
			tx.AddError(errors.New("disk full"))
		}
	})
	require.NoError(t, err)

	_, err = PurchaseCourse(context.Background(), db, PurchaseInput{
		UserID:        user.ID,
		CourseID:      course.ID,
		PaymentMethod: models.PaymentDebitCard,
		CouponCode:    "SAVE20",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, utils.StatusOf(err))

	assert.Equal(t, 3, reloadCoupon(t, db, coupon.ID).Quota)
	assert.Zero(t, countPurchases(t, db))
}

func TestPurchaseCourse_ConcurrentLastCoupon(t *testing.T) {
	db := utils.SetupTestDB(t)
	course := utils.CreateTestCourse(t, db, "Distributed Systems", "100")
	coupon := utils.CreateTestCoupon(t, db, "LAST01", 50, 1, time.Hour)
	buyers := []*models.User{
		utils.CreateTestUser(t, db, "first@example.com", models.RoleStudent),
		utils.CreateTestUser(t, db, "second@example.com", models.RoleStudent),
	}

	errs := make([]error, len(buyers))
	var wg sync.WaitGroup
	for i, buyer := range buyers {
		wg.Add(1)
		go func(i int, userID uint) {
			defer wg.Done()
			_, errs[i] = PurchaseCourse(context.Background(), db, PurchaseInput{
				UserID:        userID,
				CourseID:      course.ID,
				PaymentMethod: models.PaymentCreditCard,
				CouponCode:    "LAST01",
			})
		}(i, buyer.ID)
	}
	wg.Wait()

	var succeeded, exhausted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrQuotaExhausted):
			exhausted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, exhausted)
	assert.Equal(t, 0, reloadCoupon(t, db, coupon.ID).Quota)
	assert.Equal(t, int64(1), countPurchases(t, db))
}
