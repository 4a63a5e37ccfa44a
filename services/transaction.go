package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Govind-619/SkillSphere/models"
	"github.com/Govind-619/SkillSphere/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionQuery filters the purchase history visible to Viewer
type TransactionQuery struct {
	Viewer     models.User
	CourseName string
	UserEmail  string
	SortBy     string
	Page       *utils.Pagination
}

// TransactionRow is one entry of the purchase history
type TransactionRow struct {
	TransactionID uint                 `json:"transactionId"`
	UserEmail     string               `json:"userEmail,omitempty"`
	CourseID      uint                 `json:"courseId"`
	CourseTitle   string               `json:"courseTitle"`
	PurchaseDate  time.Time            `json:"purchaseDate"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	Amount        decimal.Decimal      `json:"amount"`
	Discount      decimal.Decimal      `json:"discount"`
	CouponCode    string               `json:"couponCode"`
	PaidAmount    decimal.Decimal      `json:"paidAmount"`
}

func withPurchaseRelations(db *gorm.DB) *gorm.DB {
	unscoped := func(db *gorm.DB) *gorm.DB { return db.Unscoped() }
	return db.Preload("Course", unscoped).Preload("User", unscoped)
}

// scopeTransactions applies row visibility before any filter or paging:
// only viewers allowed to see all transactions escape the own-rows filter.
func scopeTransactions(db *gorm.DB, q TransactionQuery) *gorm.DB {
	base := db.Model(&models.Purchase{}).
		Joins("JOIN courses ON courses.id = purchases.course_id").
		Joins("JOIN users ON users.id = purchases.user_id")

	seeAll := q.Viewer.Role.Can(models.PermViewAllTransactions)
	if !seeAll {
		base = base.Where("purchases.user_id = ?", q.Viewer.ID)
	}
	if name := strings.TrimSpace(q.CourseName); name != "" {
		base = base.Where("LOWER(courses.title) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if email := strings.TrimSpace(q.UserEmail); email != "" && seeAll {
		base = base.Where("LOWER(users.email) LIKE ?", "%"+strings.ToLower(email)+"%")
	}
	return base
}

func transactionSort(q TransactionQuery) (string, error) {
	def := utils.SortAsc
	if q.Viewer.Role.Can(models.PermViewAllTransactions) {
		def = utils.SortDesc
	}
	return utils.ParseSort(q.SortBy, def)
}

// ListTransactions returns one page of the viewer's visible purchases and
// fills in q.Page totals
func ListTransactions(ctx context.Context, db *gorm.DB, q TransactionQuery) ([]TransactionRow, error) {
	if q.Viewer.ID == 0 {
		return nil, utils.UnauthorizedError(utils.ErrInvalidToken, ErrUnauthenticated)
	}
	sort, err := transactionSort(q)
	if err != nil {
		return nil, err
	}

	base := scopeTransactions(db.WithContext(ctx), q)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, utils.InternalError("Failed to count transactions", err)
	}
	q.Page.SetTotal(total)

	var purchases []models.Purchase
	err = withPurchaseRelations(q.Page.Apply(base.Session(&gorm.Session{}))).
		Select("purchases.*").
		Order(utils.OrderClause("purchases.purchased_at", sort)).
		Order(utils.OrderClause("purchases.id", sort)).
		Find(&purchases).Error
	if err != nil {
		return nil, utils.InternalError("Failed to list transactions", err)
	}

	showEmail := q.Viewer.Role.Can(models.PermViewAllTransactions)
	rows := make([]TransactionRow, 0, len(purchases))
	for _, p := range purchases {
		row := TransactionRow{
			TransactionID: p.ID,
			CourseID:      p.CourseID,
			CourseTitle:   p.Course.Title,
			PurchaseDate:  p.PurchasedAt,
			PaymentMethod: p.PaymentMethod,
			Amount:        p.OriginalPrice,
			Discount:      p.Discount,
			CouponCode:    p.CouponCode,
			PaidAmount:    p.PaidAmount,
		}
		if showEmail {
			row.UserEmail = p.User.Email
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ExportTransactions returns every purchase matching the filters, newest first
func ExportTransactions(ctx context.Context, db *gorm.DB, q TransactionQuery) ([]models.Purchase, error) {
	if !q.Viewer.Role.Can(models.PermExportTransactions) {
		return nil, utils.ForbiddenError(utils.ErrForbidden, nil)
	}

	var purchases []models.Purchase
	err := withPurchaseRelations(scopeTransactions(db.WithContext(ctx), q)).
		Select("purchases.*").
		Order("purchases.purchased_at DESC, purchases.id DESC").
		Find(&purchases).Error
	if err != nil {
		return nil, utils.InternalError("Failed to export transactions", err)
	}
	return purchases, nil
}

// GetTransaction loads one purchase if viewer may see it. Rows owned by
// others are reported as missing.
func GetTransaction(ctx context.Context, db *gorm.DB, viewer models.User, id uint) (*models.Purchase, error) {
	q := withPurchaseRelations(db.WithContext(ctx)).Where("id = ?", id)
	if !viewer.Role.Can(models.PermViewAllTransactions) {
		q = q.Where("user_id = ?", viewer.ID)
	}

	var purchase models.Purchase
	if err := q.First(&purchase).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Transaction not found.", ErrTransactionNotFound)
		}
		return nil, utils.InternalError("Failed to load transaction", err)
	}
	return &purchase, nil
}
