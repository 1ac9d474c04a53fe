// Package reports renders payment receipts and registration exports
package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/Govind-619/TurboLeague/models"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// PaymentReceipt renders a one-page PDF receipt. The payment must have its
// registration loaded.
func PaymentReceipt(p *models.Payment, issuedAt time.Time) ([]byte, error) {
	if p.Registration == nil {
		return nil, fmt.Errorf("payment %s has no registration loaded", p.ID)
	}
	reg := p.Registration

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 12, "TURBO CRICKET LEAGUE - Payment Receipt")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, "Issued: "+issuedAt.Format("2006-01-02 15:04"))
	pdf.Ln(12)

	rows := [][2]string{
		{"Receipt No.", p.Receipt},
		{"Payment ID", p.ID},
		{"Order ID", p.RazorpayOrderID},
		{"Transaction ID", deref(p.RazorpayPaymentID)},
		{"Registration ID", reg.ID},
		{"Player", reg.Name},
		{"Email", reg.Email},
		{"League", reg.LeagueType},
		{"Role", reg.Role},
		{"Paid On", p.UpdatedAt.Format("2006-01-02 15:04")},
		{"Status", string(p.Status)},
	}
	for i, r := range rows {
		fill := i%2 == 0
		pdf.SetFillColor(245, 245, 245)
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(55, 9, r[0], "1", 0, "L", fill, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(125, 9, r[1], "1", 0, "L", fill, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 13)
	pdf.SetFillColor(220, 230, 250)
	pdf.CellFormat(55, 10, "Amount Paid", "1", 0, "L", true, 0, "")
	pdf.CellFormat(125, 10, fmt.Sprintf("%s %s", p.Currency, decimal.New(p.Amount, -2).StringFixed(2)), "1", 0, "R", true, 0, "")
	pdf.Ln(16)

	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 6, "This is a computer generated receipt and does not require a signature.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %v", err)
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
