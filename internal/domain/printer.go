package domain

import (
	"fmt"
	"strings"
	"time"
)

// PrinterStatus represents the operational state of a printer.
type PrinterStatus string

const (
	StatusOnline      PrinterStatus = "Online"
	StatusOffline     PrinterStatus = "Offline"
	StatusError       PrinterStatus = "Error"
	StatusMaintenance PrinterStatus = "Maintenance"
)

// validStatuses is the set of accepted printer statuses.
var validStatuses = map[PrinterStatus]bool{
	StatusOnline:      true,
	StatusOffline:     true,
	StatusError:       true,
	StatusMaintenance: true,
}

// validUnits is the set of accepted measurement units for printer dimensions.
var validUnits = map[string]bool{
	"mm": true, "cm": true, "meters": true, "inches": true, "feet": true,
}

// Specification holds the technical specification of a printer.
type Specification struct {
	// PrinterWidth is the physical width of the printer.
	PrinterWidth int `json:"printer_width" bson:"printer_width"`

	// PrinterLength is the physical length of the printer, if known.
	PrinterLength *int `json:"printer_length,omitempty" bson:"printer_length,omitempty"`

	// Unit is the measurement unit for the dimensions above.
	// One of: mm, cm, meters, inches, feet.
	Unit string `json:"unit" bson:"unit"`

	// PrintHead is the print head model or type.
	PrintHead string `json:"print_head" bson:"print_head"`

	// HeadNos is the number of print heads installed.
	HeadNos int `json:"head_nos" bson:"head_nos"`

	// RIPSoftware is the RIP software used (e.g. Onyx, Caldera), if any.
	RIPSoftware *string `json:"rip_software,omitempty" bson:"rip_software,omitempty"`

	// PrinterControlSystem is the control board hardware (e.g. BYHX, Hoson).
	PrinterControlSystem string `json:"printer_control_system" bson:"printer_control_system"`
}

// Printer represents a registered printer owned by exactly one user.
//
// The serial number is unique across the whole system, not just per owner;
// it is treated as a physical-asset constraint.
type Printer struct {
	// ID is the unique identifier for the printer, rendered as an opaque
	// hex string in API responses.
	ID string `json:"id"`

	// OwnerEmail is the email of the owning user. Always server-assigned
	// from the authenticated caller, never taken from the request payload.
	OwnerEmail string `json:"owner_email"`

	// PrinterName is a user-friendly display name.
	PrinterName string `json:"printer_name"`

	// PrinterMainCategory classifies the printer (e.g. Large Format, DTG).
	PrinterMainCategory string `json:"printer_main_category"`

	// PrinterSubCategory is an optional finer classification.
	PrinterSubCategory *string `json:"printer_sub_category,omitempty"`

	Brand        string     `json:"brand"`
	Model        string     `json:"model"`
	SerialNumber string     `json:"serial_number"`
	Vendor       *string    `json:"vendor,omitempty"`
	InstallDate  *time.Time `json:"install_date,omitempty"`

	// ColorNos is the number of configured ink channels.
	ColorNos int `json:"color_nos"`

	// Inks is the ordered, case-preserving list of ink channel names.
	// Ink fills and consumption are always attributed to one of these.
	Inks []string `json:"inks"`

	Specification Specification `json:"specification"`
	Location      string        `json:"location"`
	Department    *string       `json:"department,omitempty"`

	// InkCosts maps an ink channel name to its cost per liter.
	InkCosts map[string]float64 `json:"ink_costs"`

	// InkLink maps an ink channel name to an optional inventory item id.
	// The reference is not validated against the inventory ledger.
	InkLink map[string]*string `json:"ink_link"`

	Status PrinterStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanonicalInk matches color against the printer's ink channels,
// case-insensitively, and returns the channel name in its original casing.
func (p *Printer) CanonicalInk(color string) (string, bool) {
	for _, ink := range p.Inks {
		if strings.EqualFold(ink, color) {
			return ink, true
		}
	}
	return "", false
}

// Validate checks the printer's fields against the registration rules.
func (p *Printer) Validate() error {
	if p.PrinterName == "" {
		return fmt.Errorf("%w: printer_name is required", ErrValidation)
	}
	if p.PrinterMainCategory == "" {
		return fmt.Errorf("%w: printer_main_category is required", ErrValidation)
	}
	if p.Brand == "" {
		return fmt.Errorf("%w: brand is required", ErrValidation)
	}
	if p.Model == "" {
		return fmt.Errorf("%w: model is required", ErrValidation)
	}
	if p.SerialNumber == "" {
		return fmt.Errorf("%w: serial_number is required", ErrValidation)
	}
	if p.Location == "" {
		return fmt.Errorf("%w: location is required", ErrValidation)
	}
	if p.ColorNos <= 0 {
		return fmt.Errorf("%w: color_nos must be greater than zero", ErrValidation)
	}
	if len(p.Inks) == 0 {
		return fmt.Errorf("%w: inks must not be empty", ErrValidation)
	}
	if !validUnits[p.Specification.Unit] {
		return fmt.Errorf("%w: unit must be one of mm, cm, meters, inches, feet", ErrValidation)
	}
	if p.Specification.PrintHead == "" {
		return fmt.Errorf("%w: print_head is required", ErrValidation)
	}
	if p.Specification.PrinterControlSystem == "" {
		return fmt.Errorf("%w: printer_control_system is required", ErrValidation)
	}
	if p.Status != "" && !validStatuses[p.Status] {
		return fmt.Errorf("%w: status must be one of Online, Offline, Error, Maintenance", ErrValidation)
	}
	return nil
}
