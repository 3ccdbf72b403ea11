package reporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

const csvDateLayout = "02/01/2006"

// Filename returns the download name for a period export.
func Filename(period Period) string {
	return fmt.Sprintf("laporan_%s.csv", period)
}

// WriteCSV exports the summary's filtered window as tabular data: one row per
// order with a positive amount and one per expense with a negative amount.
func WriteCSV(w io.Writer, summary Summary) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Tipe", "Tanggal", "Deskripsi", "Jumlah"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, o := range summary.Orders {
		row := []string{
			"Penjualan",
			o.CreatedAt.Format(csvDateLayout),
			"Pesanan " + o.CustomerName,
			formatAmount(o.TotalCost),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write order row: %w", err)
		}
	}

	for _, e := range summary.Expenses {
		row := []string{
			"Pengeluaran",
			e.CreatedAt.Format(csvDateLayout),
			e.Description,
			formatAmount(-e.Cost),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write expense row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
