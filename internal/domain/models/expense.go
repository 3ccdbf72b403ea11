package models

import "time"

// Expense is an operating cost entry. Immutable except for deletion.
type Expense struct {
	ID          string    `bson:"_id" json:"id"`
	Description string    `bson:"description" json:"description"`
	Cost        float64   `bson:"cost" json:"cost"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
