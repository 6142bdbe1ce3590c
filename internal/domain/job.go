package domain

import (
	"fmt"
	"time"
)

// PrintJob is one completed print run logged against a printer.
//
// Derived fields (printed_area_sqm, printed_length_m, total_ink_ml) are
// stored verbatim as reported by the uploading agent; the system does not
// recompute or cross-check them. Jobs are append-only.
type PrintJob struct {
	// ID is the unique identifier for the job.
	ID string `json:"id"`

	// PrinterID references the printer the job ran on. Checked for
	// existence and ownership at upload time.
	PrinterID string `json:"printer_id"`

	// OwnerEmail is the email of the owning user.
	OwnerEmail string `json:"owner_email"`

	JobName   string `json:"job_name"`
	JobStatus string `json:"job_status"`

	// Copies is the number of copies printed. Defaults to 1.
	Copies int `json:"copies"`

	// PrintDate is when the job ran, as reported by the agent.
	PrintDate time.Time `json:"print_date"`

	// Dimensions
	WidthMM        float64 `json:"width_mm"`
	LengthMM       float64 `json:"length_mm"`
	PrintedAreaSqm float64 `json:"printed_area_sqm"`
	PrintedLengthM float64 `json:"printed_length_m"`

	// Ink
	TotalInkML float64 `json:"total_ink_ml"`

	// InkConsumptionML maps an ink channel name to milliliters consumed.
	InkConsumptionML map[string]float64 `json:"ink_consumption_ml"`

	// Print settings
	DPIX        int    `json:"dpi_x"`
	DPIY        int    `json:"dpi_y"`
	PrintMode   string `json:"print_mode"`
	Speed       string `json:"speed"`
	PrintedPass int    `json:"printed_pass"`
}

// Validate checks the job's fields against the upload rules.
// A zero Copies value is normalized to the default of 1.
func (j *PrintJob) Validate() error {
	if j.PrinterID == "" {
		return fmt.Errorf("%w: printer_id is required", ErrValidation)
	}
	if j.JobName == "" {
		return fmt.Errorf("%w: job_name is required", ErrValidation)
	}
	if j.Copies == 0 {
		j.Copies = 1
	}
	if j.Copies < 0 {
		return fmt.Errorf("%w: copies must be greater than zero", ErrValidation)
	}
	if j.PrintDate.IsZero() {
		return fmt.Errorf("%w: print_date is required", ErrValidation)
	}
	return nil
}
