package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/prn-tf/printer-portal/internal/domain"
	"github.com/prn-tf/printer-portal/internal/repository"
)

// PrinterService handles printer registration and lifecycle.
type PrinterService struct {
	printerRepo repository.PrinterRepository
	logger      zerolog.Logger
}

// NewPrinterService creates a new PrinterService.
func NewPrinterService(printerRepo repository.PrinterRepository, logger zerolog.Logger) *PrinterService {
	return &PrinterService{
		printerRepo: printerRepo,
		logger:      logger.With().Str("service", "printer").Logger(),
	}
}

// Create registers a new printer for the owner. Any client-supplied
// ownership or timestamp fields are discarded and server-assigned.
func (s *PrinterService) Create(ctx context.Context, ownerEmail string, printer *domain.Printer) (*domain.Printer, error) {
	if printer.Status == "" {
		printer.Status = domain.StatusOnline
	}
	if err := printer.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.printerRepo.ExistsBySerial(ctx, printer.SerialNumber)
	if err != nil {
		s.logger.Error().Err(err).Str("serial", printer.SerialNumber).Msg("failed to check serial number")
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if exists {
		return nil, domain.NewDomainError(domain.ErrDuplicateSerialNumber,
			"printer with serial number %s already exists", printer.SerialNumber)
	}

	now := time.Now().UTC()
	printer.ID = ""
	printer.OwnerEmail = ownerEmail
	printer.CreatedAt = now
	printer.UpdatedAt = now

	if err := s.printerRepo.Create(ctx, printer); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// The unique index caught a serial created between check and insert.
			return nil, domain.NewDomainError(domain.ErrDuplicateSerialNumber,
				"printer with serial number %s already exists", printer.SerialNumber)
		}
		s.logger.Error().Err(err).Msg("failed to create printer")
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info().
		Str("printer_id", printer.ID).
		Str("owner", ownerEmail).
		Str("serial", printer.SerialNumber).
		Msg("printer registered")

	return printer, nil
}

// List returns all of the owner's printers.
func (s *PrinterService) List(ctx context.Context, ownerEmail string) ([]*domain.Printer, error) {
	printers, err := s.printerRepo.ListByOwner(ctx, ownerEmail)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list printers")
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return printers, nil
}

// Get returns one printer scoped to the owner. A printer owned by someone
// else is reported exactly like a missing one.
func (s *PrinterService) Get(ctx context.Context, ownerEmail, id string) (*domain.Printer, error) {
	printer, err := s.printerRepo.GetByID(ctx, ownerEmail, id)
	if err != nil {
		return nil, s.mapLookupErr(err, id)
	}
	return printer, nil
}

// Update replaces all mutable fields of the printer. The owner, creation
// timestamp and id of the stored document are preserved no matter what the
// payload carries; updated_at is always refreshed.
func (s *PrinterService) Update(ctx context.Context, ownerEmail, id string, printer *domain.Printer) (*domain.Printer, error) {
	existing, err := s.printerRepo.GetByID(ctx, ownerEmail, id)
	if err != nil {
		return nil, s.mapLookupErr(err, id)
	}

	if printer.Status == "" {
		printer.Status = domain.StatusOnline
	}
	if err := printer.Validate(); err != nil {
		return nil, err
	}

	// Protected fields come from the stored document, not the payload.
	printer.ID = existing.ID
	printer.OwnerEmail = existing.OwnerEmail
	printer.CreatedAt = existing.CreatedAt
	printer.UpdatedAt = time.Now().UTC()

	if err := s.printerRepo.Update(ctx, printer); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, domain.ErrPrinterNotFound
		case errors.Is(err, repository.ErrDuplicate):
			// The replacement serial collides with another printer's.
			return nil, domain.ErrDuplicateSerialNumber
		default:
			s.logger.Error().Err(err).Str("printer_id", id).Msg("failed to update printer")
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	s.logger.Info().Str("printer_id", id).Msg("printer updated")
	return printer, nil
}

// Delete removes one printer scoped to the owner.
func (s *PrinterService) Delete(ctx context.Context, ownerEmail, id string) error {
	if err := s.printerRepo.Delete(ctx, ownerEmail, id); err != nil {
		return s.mapLookupErr(err, id)
	}
	s.logger.Info().Str("printer_id", id).Msg("printer deleted")
	return nil
}

// mapLookupErr translates repository lookup failures for printers.
func (s *PrinterService) mapLookupErr(err error, id string) error {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		return domain.NewDomainError(ErrInvalidID, "invalid printer ID: %s", id)
	case errors.Is(err, repository.ErrNotFound):
		return domain.ErrPrinterNotFound
	default:
		s.logger.Error().Err(err).Str("printer_id", id).Msg("printer lookup failed")
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
