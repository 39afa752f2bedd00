package pdf

import (
	"bytes"
	"testing"
)

func TestRenderProducesPDF(t *testing.T) {
	rows := []SalesRow{
		{Guest: "Juan Dela Cruz", Amount: 4500, Status: "Paid"},
		{Guest: "Maria Santos", Amount: 12000, Status: "Pending"},
	}

	document, err := NewSalesReport().Render(rows, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(document) == 0 {
		t.Fatal("Render returned an empty document")
	}
	if !bytes.HasPrefix(document, []byte("%PDF")) {
		t.Errorf("document does not start with %%PDF, got %q", document[:4])
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	rows := []SalesRow{
		{Guest: "Juan Dela Cruz", Amount: 4500, Status: "Paid"},
	}
	banner := &PromotionBanner{Title: "Summer Escape", DiscountPercent: 15}

	first, err := NewSalesReport().Render(rows, banner)
	if err != nil {
		t.Fatalf("first Render: %v", err)
	}
	second, err := NewSalesReport().Render(rows, banner)
	if err != nil {
		t.Fatalf("second Render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("identical inputs produced different documents")
	}
}

func TestRenderBannerChangesDocument(t *testing.T) {
	rows := []SalesRow{
		{Guest: "Juan Dela Cruz", Amount: 4500, Status: "Paid"},
	}

	plain, err := NewSalesReport().Render(rows, nil)
	if err != nil {
		t.Fatalf("Render without banner: %v", err)
	}
	promoted, err := NewSalesReport().Render(rows, &PromotionBanner{Title: "Summer Escape", DiscountPercent: 15})
	if err != nil {
		t.Fatalf("Render with banner: %v", err)
	}
	if bytes.Equal(plain, promoted) {
		t.Error("banner had no effect on the document")
	}
}

func TestRenderEmptyReport(t *testing.T) {
	document, err := NewSalesReport().Render(nil, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(document, []byte("%PDF")) {
		t.Error("empty report is not a valid document")
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "PHP 0"},
		{500, "PHP 500"},
		{4500, "PHP 4,500"},
		{12000, "PHP 12,000"},
		{1250000, "PHP 1,250,000"},
		{4500.5, "PHP 4,500.5"},
		{1250.25, "PHP 1,250.25"},
		{999.999, "PHP 999.999"},
	}

	for _, tt := range tests {
		if got := formatAmount(tt.amount); got != tt.want {
			t.Errorf("formatAmount(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestTrimTrailingZeros(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{15, "15"},
		{12.5, "12.5"},
		{7.25, "7.25"},
		{20.0, "20"},
	}

	for _, tt := range tests {
		if got := trimTrailingZeros(tt.value); got != tt.want {
			t.Errorf("trimTrailingZeros(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
