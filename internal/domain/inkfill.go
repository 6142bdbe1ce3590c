package domain

import (
	"time"
)

// InkFillRecord is a manual record of ink added to one of a printer's
// channels. Records are append-only: never updated or deleted.
type InkFillRecord struct {
	// ID is the unique identifier for the record.
	ID string `json:"id"`

	// OwnerEmail is the email of the owning user.
	OwnerEmail string `json:"owner_email"`

	// PrinterID references the printer the ink was filled into.
	PrinterID string `json:"printer_id"`

	// Color is the ink channel name, stored in the printer's canonical
	// casing regardless of how the caller spelled it.
	Color string `json:"color"`

	// AmountLiters is the amount of ink added. Always strictly positive.
	AmountLiters float64 `json:"amount_liters"`

	// Timestamp is set at creation and immutable.
	Timestamp time.Time `json:"timestamp"`
}

// NewInkFillRecord creates an ink fill record with the server-assigned timestamp.
func NewInkFillRecord(ownerEmail, printerID, color string, amountLiters float64) *InkFillRecord {
	return &InkFillRecord{
		OwnerEmail:   ownerEmail,
		PrinterID:    printerID,
		Color:        color,
		AmountLiters: amountLiters,
		Timestamp:    time.Now().UTC(),
	}
}
