package controllers

import (
	"github.com/Govind-619/SkillSphere/config"
	"github.com/Govind-619/SkillSphere/middleware"
	"github.com/Govind-619/SkillSphere/models"
	"github.com/Govind-619/SkillSphere/services"
	"github.com/Govind-619/SkillSphere/utils"
	"github.com/gin-gonic/gin"
)

// PurchaseRequest represents the request body for buying a course
type PurchaseRequest struct {
	PaymentMethod string `json:"paymentMethod"`
	CouponCode    string `json:"couponCode"`
}

// PurchaseCourse buys the course in the path for the authenticated user
func PurchaseCourse(c *gin.Context) {
	utils.LogInfo("PurchaseCourse called")

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, utils.ErrInvalidToken)
		return
	}

	courseID, err := parseID(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var req PurchaseRequest
	if !bindJSON(c, &req) {
		return
	}
	utils.LogInfo("User %d purchasing course %d via %s (coupon %q)", user.ID, courseID, req.PaymentMethod, req.CouponCode)

	receipt, err := services.PurchaseCourse(c.Request.Context(), config.DB, services.PurchaseInput{
		UserID:        user.ID,
		CourseID:      courseID,
		PaymentMethod: models.PaymentMethod(req.PaymentMethod),
		CouponCode:    req.CouponCode,
	})
	if err != nil {
		utils.LogError("Purchase of course %d by user %d failed: %v", courseID, user.ID, err)
		utils.RespondError(c, err)
		return
	}

	go func(to, name string, r services.Receipt) {
		if err := utils.SendPurchaseConfirmation(to, name, r.CourseTitle, r.PurchaseID, r.PaidAmount); err != nil {
			utils.LogError("Failed to send confirmation for purchase %d: %v", r.PurchaseID, err)
		}
	}(user.Email, user.Name, *receipt)

	utils.Success(c, "Course purchased successfully.", receipt)
}
