// Package models holds the order records exchanged with the remote content
// store. Orders are remote-owned: the console reads and deletes them but
// never creates or edits fields.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one purchased position within an order.
type LineItem struct {
	Title    string          `json:"title"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Order is a customer purchase record. ID is opaque and stable across
// fetches. Contact fields are free text and may be empty. TotalAmount may be
// absent on the wire, which decodes as zero. Status is an open-ended string;
// unknown values are valid.
type Order struct {
	ID           string          `json:"_id"`
	CustomerName string          `json:"customerName"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	City         string          `json:"city"`
	OrderDate    time.Time       `json:"orderDate"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Items        []LineItem      `json:"items"`
	Status       string          `json:"status"`
}
