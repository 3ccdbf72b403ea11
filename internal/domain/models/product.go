package models

import "time"

// CalculationMethod selects how a line item referencing the product is priced.
type CalculationMethod string

const (
	// MethodByArea prices by width x height (cm) times the unit price.
	MethodByArea CalculationMethod = "area"
	// MethodByPackage prices by quantity times the unit price.
	MethodByPackage CalculationMethod = "package"
	// MethodByUnit prices by quantity times the unit price.
	MethodByUnit CalculationMethod = "unit"
)

// Valid reports whether the method is one of the known pricing methods.
func (m CalculationMethod) Valid() bool {
	switch m {
	case MethodByArea, MethodByPackage, MethodByUnit:
		return true
	}
	return false
}

// Product is a priced catalog entry. Order totals are snapshotted at save
// time, so later edits never rewrite historical orders.
type Product struct {
	ID        string            `bson:"_id" json:"id"`
	Name      string            `bson:"name" json:"name"`
	UnitPrice float64           `bson:"unit_price" json:"unitPrice"`
	Method    CalculationMethod `bson:"method" json:"method"`
	CreatedAt time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt *time.Time        `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}
