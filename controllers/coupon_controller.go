package controllers

import (
	"time"

	"github.com/Govind-619/SkillSphere/config"
	"github.com/Govind-619/SkillSphere/models"
	"github.com/Govind-619/SkillSphere/services"
	"github.com/Govind-619/SkillSphere/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CouponRequest represents the request body for creating or updating a coupon
type CouponRequest struct {
	CouponCode    string          `json:"couponCode"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	Quota         int             `json:"quota"`
	ExpiryDate    time.Time       `json:"expiryDate"`
}

func (r CouponRequest) input() services.CouponInput {
	return services.CouponInput{
		Code:        r.CouponCode,
		DiscountPct: r.DiscountValue,
		Quota:       r.Quota,
		ExpiryDate:  r.ExpiryDate,
	}
}

type couponResponse struct {
	CouponID      uint            `json:"couponId"`
	CouponCode    string          `json:"couponCode"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	Quota         int             `json:"quota"`
	ExpiryDate    time.Time       `json:"expiryDate"`
}

func toCouponResponse(c *models.Coupon) couponResponse {
	return couponResponse{
		CouponID:      c.ID,
		CouponCode:    c.Code,
		DiscountValue: c.DiscountPct,
		Quota:         c.Quota,
		ExpiryDate:    c.ExpiryDate,
	}
}

// ListCoupons returns coupons that can still be redeemed
func ListCoupons(c *gin.Context) {
	coupons, err := services.ListActiveCoupons(c.Request.Context(), config.DB)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	data := make([]couponResponse, 0, len(coupons))
	for i := range coupons {
		data = append(data, toCouponResponse(&coupons[i]))
	}
	utils.Success(c, "Coupons retrieved successfully.", data)
}

// CreateCoupon adds a coupon
func CreateCoupon(c *gin.Context) {
	utils.LogInfo("CreateCoupon called")

	var req CouponRequest
	if !bindJSON(c, &req) {
		return
	}

	coupon, err := services.CreateCoupon(c.Request.Context(), config.DB, req.input())
	if err != nil {
		utils.LogError("Coupon creation failed for code %s: %v", req.CouponCode, err)
		utils.RespondError(c, err)
		return
	}

	utils.Created(c, "Coupon added successfully.", toCouponResponse(coupon))
}

// UpdateCoupon replaces the fields of an existing coupon
func UpdateCoupon(c *gin.Context) {
	utils.LogInfo("UpdateCoupon called")

	id, err := parseID(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var req CouponRequest
	if !bindJSON(c, &req) {
		return
	}

	coupon, err := services.UpdateCoupon(c.Request.Context(), config.DB, id, req.input())
	if err != nil {
		utils.LogError("Coupon update failed for id %d: %v", id, err)
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, "Coupon updated successfully.", toCouponResponse(coupon))
}

// DeleteCoupon soft-deletes a coupon
func DeleteCoupon(c *gin.Context) {
	utils.LogInfo("DeleteCoupon called")

	id, err := parseID(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if err := services.DeleteCoupon(c.Request.Context(), config.DB, id); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, "Coupon deleted successfully.", nil)
}
