package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/rakapradana/printpos/internal/domain/models"
	"github.com/rakapradana/printpos/internal/service/pricing"
)

// receiptWidth is the character width of an 80mm thermal printer line.
const receiptWidth = 32

// Receipt renders an order as a fixed-width plain-text document suitable for
// an 80mm printer. Exactly one of change or outstanding balance is printed,
// and neither when the paid amount equals the total.
func Receipt(o models.Order, catalog pricing.Catalog, settings models.StoreSettings) string {
	var b strings.Builder

	writeCentered(&b, settings.StoreName)
	if settings.Address != "" {
		writeCentered(&b, settings.Address)
	}
	if settings.Phone != "" {
		writeCentered(&b, settings.Phone)
	}
	writeRule(&b)

	fmt.Fprintf(&b, "ID Pesanan : %s\n", o.ID)
	fmt.Fprintf(&b, "Pemesan    : %s\n", o.CustomerName)
	fmt.Fprintf(&b, "Tanggal    : %s\n", o.CreatedAt.Format(time.DateTime))
	writeRule(&b)

	for _, item := range o.Items {
		name := "N/A"
		if product, ok := catalog[item.ProductID]; ok {
			name = product.Name
		}
		price := pricing.Price(item, catalog)
		writeAmountLine(&b, fmt.Sprintf("%s %dx", name, item.Quantity), price)
	}
	writeRule(&b)

	writeAmountLine(&b, "Total", o.TotalCost)
	writeAmountLine(&b, "Dibayar", o.PaidAmount)
	writeSplit(&b, "Status", string(o.PaymentStatus))
	method := o.PaymentMethod
	if method == "" {
		method = "N/A"
	}
	writeSplit(&b, "Metode", method)

	if change := o.PaidAmount - o.TotalCost; change > 0 {
		writeRule(&b)
		writeAmountLine(&b, "Kembalian", change)
	} else if outstanding := o.TotalCost - o.PaidAmount; outstanding > 0 {
		writeRule(&b)
		writeAmountLine(&b, "Sisa Hutang", outstanding)
	}

	if settings.ReceiptNotes != "" {
		writeRule(&b)
		writeCentered(&b, settings.ReceiptNotes)
	}

	return b.String()
}

// FormatRupiah renders a whole-rupiah amount with dot thousand separators,
// e.g. "Rp 100.000". Negative amounts carry a leading minus.
func FormatRupiah(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := fmt.Sprintf("%.0f", amount)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(d)
	}

	if negative {
		return "Rp -" + grouped.String()
	}
	return "Rp " + grouped.String()
}

func writeCentered(b *strings.Builder, text string) {
	if len(text) >= receiptWidth {
		b.WriteString(text)
	} else {
		pad := (receiptWidth - len(text)) / 2
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(text)
	}
	b.WriteByte('\n')
}

func writeRule(b *strings.Builder) {
	b.WriteString(strings.Repeat("-", receiptWidth))
	b.WriteByte('\n')
}

func writeAmountLine(b *strings.Builder, label string, amount float64) {
	writeSplit(b, label, FormatRupiah(amount))
}

func writeSplit(b *strings.Builder, left, right string) {
	gap := receiptWidth - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(left)
	b.WriteString(strings.Repeat(" ", gap))
	b.WriteString(right)
	b.WriteByte('\n')
}
