package domain

import (
	"fmt"
)

// InventoryItem is a named stock-keeping record tracking bottles or pouches
// of ink. Items belong to one owner and are not tied to a specific printer;
// printers may reference them through their ink_link mapping.
type InventoryItem struct {
	// ID is the unique identifier for the item.
	ID string `json:"id"`

	// OwnerEmail is the email of the owning user.
	OwnerEmail string `json:"owner_email"`

	// InkName is the user-defined name, e.g. "UV Cyan (1L Bottle)".
	// Unique per owner, compared case-sensitively.
	InkName string `json:"ink_name"`

	// UnitVolumeML is the amount of ink in one unit. Always positive.
	UnitVolumeML int `json:"unit_volume_ml"`

	// StockOnHand is the number of units in stock. Never negative.
	StockOnHand int `json:"stock_on_hand"`
}

// Validate checks the item's fields against the creation rules.
func (i *InventoryItem) Validate() error {
	if i.InkName == "" {
		return fmt.Errorf("%w: ink_name is required", ErrValidation)
	}
	if i.UnitVolumeML <= 0 {
		return fmt.Errorf("%w: unit_volume_ml must be greater than zero", ErrValidation)
	}
	if i.StockOnHand < 0 {
		return fmt.Errorf("%w: stock_on_hand must not be negative", ErrValidation)
	}
	return nil
}

// InventoryPatch is a partial update to an inventory item. Only the fields
// that are set change; nil fields are left untouched.
type InventoryPatch struct {
	InkName      *string `json:"ink_name,omitempty"`
	UnitVolumeML *int    `json:"unit_volume_ml,omitempty"`
	StockOnHand  *int    `json:"stock_on_hand,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p InventoryPatch) IsEmpty() bool {
	return p.InkName == nil && p.UnitVolumeML == nil && p.StockOnHand == nil
}

// Validate checks the supplied fields of the patch.
func (p InventoryPatch) Validate() error {
	if p.InkName != nil && *p.InkName == "" {
		return fmt.Errorf("%w: ink_name must not be empty", ErrValidation)
	}
	if p.UnitVolumeML != nil && *p.UnitVolumeML <= 0 {
		return fmt.Errorf("%w: unit_volume_ml must be greater than zero", ErrValidation)
	}
	if p.StockOnHand != nil && *p.StockOnHand < 0 {
		return fmt.Errorf("%w: stock_on_hand must not be negative", ErrValidation)
	}
	return nil
}
