package domain

import (
	"errors"
	"testing"
	"time"
)

func TestPrinter_CanonicalInk(t *testing.T) {
	p := &Printer{Inks: []string{"Cyan", "Magenta", "Yellow", "Black", "White"}}

	tests := []struct {
		color string
		want  string
		ok    bool
	}{
		{"Cyan", "Cyan", true},
		{"cyan", "Cyan", true},
		{"CYAN", "Cyan", true},
		{"white", "White", true},
		{"Orange", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := p.CanonicalInk(tt.color)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CanonicalInk(%q) = %q, %v; want %q, %v", tt.color, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPrinter_Validate(t *testing.T) {
	valid := func() *Printer {
		return &Printer{
			PrinterName:         "Shop Floor Printer",
			PrinterMainCategory: "Large Format",
			Brand:               "Epson",
			Model:               "SureColor",
			SerialNumber:        "SN-001",
			Location:            "Hall A",
			ColorNos:            4,
			Inks:                []string{"Cyan", "Magenta", "Yellow", "Black"},
			Specification: Specification{
				PrinterWidth:         1600,
				Unit:                 "mm",
				PrintHead:            "i3200",
				PrinterControlSystem: "BYHX",
			},
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("valid printer rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Printer)
	}{
		{"missing name", func(p *Printer) { p.PrinterName = "" }},
		{"missing serial", func(p *Printer) { p.SerialNumber = "" }},
		{"missing location", func(p *Printer) { p.Location = "" }},
		{"zero color channels", func(p *Printer) { p.ColorNos = 0 }},
		{"empty inks", func(p *Printer) { p.Inks = nil }},
		{"bad unit", func(p *Printer) { p.Specification.Unit = "yards" }},
		{"missing print head", func(p *Printer) { p.Specification.PrintHead = "" }},
		{"missing control system", func(p *Printer) { p.Specification.PrinterControlSystem = "" }},
		{"unknown status", func(p *Printer) { p.Status = "Broken" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(p)
			if err := p.Validate(); !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}

	t.Run("all units accepted", func(t *testing.T) {
		for _, unit := range []string{"mm", "cm", "meters", "inches", "feet"} {
			p := valid()
			p.Specification.Unit = unit
			if err := p.Validate(); err != nil {
				t.Errorf("unit %q rejected: %v", unit, err)
			}
		}
	})
}

func TestPrintJob_Validate_NormalizesCopies(t *testing.T) {
	job := &PrintJob{
		PrinterID: "000000000000000000000001",
		JobName:   "banner",
		PrintDate: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	if err := job.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.Copies != 1 {
		t.Errorf("expected copies normalized to 1, got %d", job.Copies)
	}

	job.Copies = -3
	if err := job.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for negative copies, got %v", err)
	}
}
