package utils

import (
	"fmt"

	"github.com/Govind-619/SkillSphere/models"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
)

var transactionHeaders = []string{
	"Transaction ID", "Purchase Date", "User Email", "Course", "Payment Method",
	"Coupon", "Original Price", "Discount", "Paid Amount",
}

// BuildTransactionsWorkbook lays out purchases as a single-sheet workbook with a totals row.
// Purchases must have User and Course loaded.
func BuildTransactionsWorkbook(purchases []models.Purchase) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transactions")
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	bold := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	bold.Font = *font

	headerRow := sheet.AddRow()
	for _, h := range transactionHeaders {
		cell := headerRow.AddCell()
		cell.SetString(h)
		cell.SetStyle(bold)
	}

	var gross, discounts, net decimal.Decimal
	for _, p := range purchases {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(p.ID))
		row.AddCell().SetString(p.PurchasedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetString(p.User.Email)
		row.AddCell().SetString(p.Course.Title)
		row.AddCell().SetString(string(p.PaymentMethod))
		row.AddCell().SetString(p.CouponCode)
		row.AddCell().SetFloat(p.OriginalPrice.InexactFloat64())
		row.AddCell().SetFloat(p.Discount.InexactFloat64())
		row.AddCell().SetFloat(p.PaidAmount.InexactFloat64())

		gross = gross.Add(p.OriginalPrice)
		discounts = discounts.Add(p.Discount)
		net = net.Add(p.PaidAmount)
	}

	sheet.AddRow() // spacing
	totals := sheet.AddRow()
	label := totals.AddCell()
	label.SetString(fmt.Sprintf("Totals (%d transactions)", len(purchases)))
	label.SetStyle(bold)
	for i := 0; i < 5; i++ {
		totals.AddCell()
	}
	totals.AddCell().SetFloat(gross.InexactFloat64())
	totals.AddCell().SetFloat(discounts.InexactFloat64())
	totals.AddCell().SetFloat(net.InexactFloat64())

	return file, nil
}
