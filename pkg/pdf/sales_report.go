package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// SalesRow is one line of the sales report table.
type SalesRow struct {
	Guest  string
	Amount float64
	Status string
}

// PromotionBanner is the optional active-promotion line under the header.
type PromotionBanner struct {
	Title           string
	DiscountPercent float64
}

type ItfSalesReport interface {
	Render(rows []SalesRow, promotion *PromotionBanner) ([]byte, error)
}

type salesReport struct{}

func NewSalesReport() ItfSalesReport {
	return &salesReport{}
}

// Render produces the A4 sales report document: indigo header bar,
// optional promotion banner, striped table with colored status badges.
// Rendering is pure; identical inputs produce identical bytes.
func (p *salesReport) Render(rows []SalesRow, promotion *PromotionBanner) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(time.Unix(0, 0))
	pdf.SetMargins(14, 14, 14)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 28

	// Header bar
	pdf.SetFillColor(79, 70, 229)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(contentWidth, 16, "Hotel Sales Report", "", 1, "C", true, 0, "")
	pdf.Ln(6)

	// Promotion banner
	if promotion != nil {
		pdf.SetTextColor(37, 109, 36)
		pdf.SetFont("Helvetica", "I", 12)
		banner := fmt.Sprintf("Active Promotion: \"%s\" - %s%% discount applied",
			promotion.Title, trimTrailingZeros(promotion.DiscountPercent))
		pdf.CellFormat(contentWidth, 8, banner, "", 1, "C", false, 0, "")
		pdf.Ln(4)
	}

	colWidth := contentWidth / 3

	// Table header
	pdf.SetFillColor(99, 102, 241)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 12)
	for _, h := range []string{"Guest", "Amount", "Status"} {
		pdf.CellFormat(colWidth, 10, h, "", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 11)
	for i, row := range rows {
		fill := i%2 == 0
		pdf.SetFillColor(249, 250, 251)
		pdf.SetTextColor(17, 24, 39)

		pdf.CellFormat(colWidth, 10, row.Guest, "B", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidth, 10, formatAmount(row.Amount), "B", 0, "C", fill, 0, "")

		// Status badge: green for Paid, amber for Pending.
		if row.Status == "Paid" {
			pdf.SetFillColor(52, 211, 153)
			pdf.SetTextColor(6, 78, 59)
		} else {
			pdf.SetFillColor(252, 211, 77)
			pdf.SetTextColor(120, 53, 15)
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(colWidth, 10, row.Status, "B", 1, "C", true, 0, "")
		pdf.SetFont("Helvetica", "", 11)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func formatAmount(amount float64) string {
	parts := strings.SplitN(fmt.Sprintf("%.3f", amount), ".", 2)
	whole, frac := parts[0], strings.TrimRight(parts[1], "0")

	var b strings.Builder
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 && whole[i-1] != '-' {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}

	return fmt.Sprintf("PHP %s", b.String())
}

func trimTrailingZeros(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
