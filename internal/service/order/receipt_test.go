package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rakapradana/printpos/internal/domain/models"
	"github.com/rakapradana/printpos/internal/service/pricing"
)

func receiptFixture(paid float64, status models.PaymentStatus, method string) (models.Order, pricing.Catalog, models.StoreSettings) {
	o := models.Order{
		ID:            "P-20240307-140509-123456",
		CustomerName:  "Budi",
		Items:         []models.OrderItem{{ProductID: "banner", Quantity: 1, Width: 2, Height: 1}},
		TotalCost:     100000,
		PaymentStatus: status,
		PaymentMethod: method,
		PaidAmount:    paid,
		CreatedAt:     time.Date(2024, 3, 7, 14, 5, 9, 0, time.Local),
	}
	catalog := pricing.NewCatalog([]models.Product{
		{ID: "banner", Name: "Banner", UnitPrice: 50000, Method: models.MethodByArea},
	})
	settings := models.StoreSettings{
		StoreName:    "Toko Printing Anda",
		Address:      "Jl. Contoh No. 1",
		Phone:        "0812-0000-0000",
		ReceiptNotes: "Terima kasih!",
	}
	return o, catalog, settings
}

func TestReceiptContents(t *testing.T) {
	o, catalog, settings := receiptFixture(100000, models.PaymentPaid, "Cash")
	text := Receipt(o, catalog, settings)

	assert.Contains(t, text, "Toko Printing Anda")
	assert.Contains(t, text, "ID Pesanan : P-20240307-140509-123456")
	assert.Contains(t, text, "Pemesan    : Budi")
	assert.Contains(t, text, "Banner 1x")
	assert.Contains(t, text, "Rp 100.000")
	assert.Contains(t, text, "Lunas")
	assert.Contains(t, text, "Metode")
	assert.Contains(t, text, "Cash")
	assert.Contains(t, text, "Terima kasih!")
}

func TestReceiptChangeVsOutstanding(t *testing.T) {
	t.Run("overpaid prints change only", func(t *testing.T) {
		o, catalog, settings := receiptFixture(150000, models.PaymentPaid, "Cash")
		text := Receipt(o, catalog, settings)
		assert.Contains(t, text, "Kembalian")
		assert.Contains(t, text, "Rp 50.000")
		assert.NotContains(t, text, "Sisa Hutang")
	})

	t.Run("underpaid prints outstanding only", func(t *testing.T) {
		o, catalog, settings := receiptFixture(40000, models.PaymentUnpaid, "Cash")
		text := Receipt(o, catalog, settings)
		assert.Contains(t, text, "Sisa Hutang")
		assert.Contains(t, text, "Rp 60.000")
		assert.NotContains(t, text, "Kembalian")
	})

	t.Run("exact payment prints neither", func(t *testing.T) {
		o, catalog, settings := receiptFixture(100000, models.PaymentPaid, "Cash")
		text := Receipt(o, catalog, settings)
		assert.NotContains(t, text, "Kembalian")
		assert.NotContains(t, text, "Sisa Hutang")
	})
}

func TestReceiptUnsettledOrder(t *testing.T) {
	o, catalog, settings := receiptFixture(0, models.PaymentUnpaid, "")
	text := Receipt(o, catalog, settings)

	assert.Contains(t, text, "Belum Lunas")
	assert.Contains(t, text, "N/A")
	assert.Contains(t, text, "Sisa Hutang")
}

func TestReceiptUnknownProduct(t *testing.T) {
	o, catalog, settings := receiptFixture(0, models.PaymentUnpaid, "")
	o.Items = []models.OrderItem{{ProductID: "missing", Quantity: 2}}
	text := Receipt(o, catalog, settings)

	assert.Contains(t, text, "N/A 2x")
	assert.Contains(t, text, "Rp 0")
}

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{1000, "Rp 1.000"},
		{100000, "Rp 100.000"},
		{1250000, "Rp 1.250.000"},
		{-50000, "Rp -50.000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRupiah(tt.amount), "amount %v", tt.amount)
	}
}
