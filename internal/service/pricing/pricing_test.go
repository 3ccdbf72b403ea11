package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rakapradana/printpos/internal/domain/models"
)

func TestPrice(t *testing.T) {
	catalog := NewCatalog([]models.Product{
		{ID: "banner", Name: "Banner", UnitPrice: 50000, Method: models.MethodByArea},
		{ID: "stickers", Name: "Stiker", UnitPrice: 15000, Method: models.MethodByPackage},
		{ID: "cards", Name: "Kartu Nama", UnitPrice: 500, Method: models.MethodByUnit},
	})

	tests := []struct {
		name string
		item models.OrderItem
		want float64
	}{
		{
			name: "by area multiplies width height and unit price",
			item: models.OrderItem{ProductID: "banner", Width: 2, Height: 1},
			want: 100000,
		},
		{
			name: "by package multiplies quantity and unit price",
			item: models.OrderItem{ProductID: "stickers", Quantity: 3},
			want: 45000,
		},
		{
			name: "by unit multiplies quantity and unit price",
			item: models.OrderItem{ProductID: "cards", Quantity: 100},
			want: 50000,
		},
		{
			name: "unresolved product prices as zero",
			item: models.OrderItem{ProductID: "deleted", Quantity: 5},
			want: 0,
		},
		{
			name: "zero dimensions accepted without error",
			item: models.OrderItem{ProductID: "banner", Width: 0, Height: 3},
			want: 0,
		},
		{
			name: "negative dimensions yield a non-positive price",
			item: models.OrderItem{ProductID: "banner", Width: -2, Height: 1},
			want: -100000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Price(tt.item, catalog))
		})
	}
}

func TestTotal(t *testing.T) {
	catalog := NewCatalog([]models.Product{
		{ID: "banner", UnitPrice: 50000, Method: models.MethodByArea},
		{ID: "stickers", UnitPrice: 15000, Method: models.MethodByPackage},
	})

	items := []models.OrderItem{
		{ProductID: "banner", Width: 2, Height: 1},
		{ProductID: "stickers", Quantity: 2},
		{ProductID: "gone", Quantity: 10},
	}

	assert.Equal(t, 130000.0, Total(items, catalog))
	assert.Equal(t, 0.0, Total(nil, catalog))
}
