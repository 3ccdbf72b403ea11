package models

import "time"

// DailyClose is the end-of-day summary the scheduler persists. It is derived
// data and can always be rebuilt from the orders and expenses collections.
type DailyClose struct {
	Date          time.Time `bson:"date" json:"date"`
	TotalSales    float64   `bson:"total_sales" json:"totalSales"`
	TotalExpenses float64   `bson:"total_expenses" json:"totalExpenses"`
	Profit        float64   `bson:"profit" json:"profit"`
	CashIn        float64   `bson:"cash_in" json:"cashIn"`
	CashFlow      float64   `bson:"cash_flow" json:"cashFlow"`
	OrderCount    int       `bson:"order_count" json:"orderCount"`
	ExpenseCount  int       `bson:"expense_count" json:"expenseCount"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}
