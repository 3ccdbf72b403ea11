// Package pricing computes line-item prices and order totals from the product
// catalog snapshot currently held by the caller.
package pricing

import "github.com/rakapradana/printpos/internal/domain/models"

// Catalog is a product lookup keyed by product id.
type Catalog map[string]models.Product

// NewCatalog indexes a products snapshot by id.
func NewCatalog(products []models.Product) Catalog {
	catalog := make(Catalog, len(products))
	for _, p := range products {
		catalog[p.ID] = p
	}
	return catalog
}

// Price computes the price of a single line item. An unresolved product
// reference prices as zero: the order stays saveable and the gap shows up on
// the receipt instead of failing the sale. Dimensions and quantities are not
// validated; non-positive inputs simply yield a non-positive price.
func Price(item models.OrderItem, catalog Catalog) float64 {
	product, ok := catalog[item.ProductID]
	if !ok {
		return 0
	}

	switch product.Method {
	case models.MethodByArea:
		return item.Width * item.Height * product.UnitPrice
	case models.MethodByPackage, models.MethodByUnit:
		return float64(item.Quantity) * product.UnitPrice
	}
	return 0
}

// Total sums the per-item prices of an order's item list.
func Total(items []models.OrderItem, catalog Catalog) float64 {
	var total float64
	for _, item := range items {
		total += Price(item, catalog)
	}
	return total
}
