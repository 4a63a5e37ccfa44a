package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Govind-619/SkillSphere/config"
	"github.com/Govind-619/SkillSphere/middleware"
	"github.com/Govind-619/SkillSphere/services"
	"github.com/Govind-619/SkillSphere/utils"
	"github.com/gin-gonic/gin"
)

func transactionQuery(c *gin.Context) services.TransactionQuery {
	user, _ := middleware.CurrentUser(c)
	return services.TransactionQuery{
		Viewer:     user,
		CourseName: c.Query("courseName"),
		UserEmail:  c.Query("userEmail"),
		SortBy:     c.Query("sortBy"),
	}
}

// ListTransactions returns the purchase history visible to the caller
func ListTransactions(c *gin.Context) {
	utils.LogInfo("ListTransactions called")

	page, err := utils.PaginationFromQuery(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	q := transactionQuery(c)
	q.Page = page
	rows, err := services.ListTransactions(c.Request.Context(), config.DB, q)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessWithPagination(c, "Transactions retrieved successfully.", rows, page)
}

// ExportTransactions streams the filtered transactions as an XLSX workbook
func ExportTransactions(c *gin.Context) {
	utils.LogInfo("ExportTransactions called")

	purchases, err := services.ExportTransactions(c.Request.Context(), config.DB, transactionQuery(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	file, err := utils.BuildTransactionsWorkbook(purchases)
	if err != nil {
		utils.RespondError(c, utils.InternalError("Failed to build export", err))
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=transactions_%s.xlsx", time.Now().Format("20060102")))
	c.Status(http.StatusOK)
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		return
	}
	utils.LogInfo("Exported %d transactions", len(purchases))
}

// DownloadReceipt returns a PDF receipt for one of the caller's transactions
func DownloadReceipt(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, utils.ErrInvalidToken)
		return
	}

	id, err := parseID(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	purchase, err := services.GetTransaction(c.Request.Context(), config.DB, user, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	pdf, err := utils.GenerateReceiptPDF(purchase)
	if err != nil {
		utils.RespondError(c, utils.InternalError("Failed to generate receipt", err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt_%d.pdf", purchase.ID))
	c.Data(http.StatusOK, "application/pdf", pdf)
	utils.LogInfo("Receipt for transaction %d downloaded by user %d", purchase.ID, user.ID)
}
