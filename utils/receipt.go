package utils

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/Govind-619/SkillSphere/models"
	"github.com/jung-kurt/gofpdf"
)

// GenerateReceiptPDF renders a purchase receipt. p must have User and Course loaded.
func GenerateReceiptPDF(p *models.Purchase) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, AppName)
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "RECEIPT")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(60, 8, "Transaction ID: "+strconv.Itoa(int(p.ID)))
	pdf.Cell(80, 8, "Date: "+p.PurchasedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(8)
	pdf.Cell(60, 8, "Payment Method: "+string(p.PaymentMethod))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Billed To:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, p.User.Name)
	pdf.Ln(6)
	pdf.Cell(100, 8, p.User.Email)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(110, 8, "Course", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Price", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(110, 8, p.Course.Title, "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, p.OriginalPrice.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	pdf.Ln(4)
	summary := [][2]string{
		{"Original Price:", p.OriginalPrice.StringFixed(2)},
		{"Discount:", p.Discount.StringFixed(2)},
	}
	if p.CouponCode != "" {
		summary = append(summary, [2]string{"Coupon:", p.CouponCode})
	}
	for _, line := range summary {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(110, 8, line[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(40, 8, line[1], "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(110, 10, "Amount Paid:", "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 10, p.PaidAmount.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 12)
	pdf.Cell(0, 10, "Thank you for learning with "+AppName+"!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
