package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/prn-tf/printer-portal/internal/domain"
	"github.com/prn-tf/printer-portal/internal/repository"
)

// InkFillService records and lists manual ink fill events. Every operation
// resolves the target printer through the printer repository's ownership
// scoping before touching fill records.
type InkFillService struct {
	fillRepo    repository.InkFillRepository
	printerRepo repository.PrinterRepository
	logger      zerolog.Logger
}

// NewInkFillService creates a new InkFillService.
func NewInkFillService(fillRepo repository.InkFillRepository, printerRepo repository.PrinterRepository, logger zerolog.Logger) *InkFillService {
	return &InkFillService{
		fillRepo:    fillRepo,
		printerRepo: printerRepo,
		logger:      logger.With().Str("service", "inkfill").Logger(),
	}
}

// Record appends an ink fill event for one of the printer's channels.
// The color is matched case-insensitively against the printer's configured
// inks and stored using the printer's original casing. The printer-existence
// check and the insert are not atomic; a printer deleted in between leaves
// an orphan record, which is accepted.
func (s *InkFillService) Record(ctx context.Context, ownerEmail, printerID, color string, amountLiters float64) (*domain.InkFillRecord, error) {
	if amountLiters <= 0 {
		return nil, ErrInvalidInkAmount
	}

	printer, err := s.printerRepo.GetByID(ctx, ownerEmail, printerID)
	if err != nil {
		return nil, s.mapPrinterErr(err, printerID)
	}

	canonical, ok := printer.CanonicalInk(color)
	if !ok {
		return nil, domain.NewDomainError(domain.ErrInvalidInkColor,
			"invalid ink color '%s'. This printer only supports: %s",
			color, strings.Join(printer.Inks, ", "))
	}

	record := domain.NewInkFillRecord(ownerEmail, printerID, canonical, amountLiters)
	if err := s.fillRepo.Create(ctx, record); err != nil {
		s.logger.Error().Err(err).Str("printer_id", printerID).Msg("failed to record ink fill")
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info().
		Str("record_id", record.ID).
		Str("printer_id", printerID).
		Str("color", canonical).
		Float64("amount_liters", amountLiters).
		Msg("ink fill recorded")

	return record, nil
}

// ListForPrinter returns the owner's fill records for one printer, most
// recent first. The printer must exist and be owned by the caller.
func (s *InkFillService) ListForPrinter(ctx context.Context, ownerEmail, printerID string) ([]*domain.InkFillRecord, error) {
	if _, err := s.printerRepo.GetByID(ctx, ownerEmail, printerID); err != nil {
		return nil, s.mapPrinterErr(err, printerID)
	}

	records, err := s.fillRepo.ListByPrinter(ctx, ownerEmail, printerID)
	if err != nil {
		s.logger.Error().Err(err).Str("printer_id", printerID).Msg("failed to list ink fills")
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return records, nil
}

// ListAll returns every fill record of the owner across all printers,
// most recent first.
func (s *InkFillService) ListAll(ctx context.Context, ownerEmail string) ([]*domain.InkFillRecord, error) {
	records, err := s.fillRepo.ListByOwner(ctx, ownerEmail)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list ink fills")
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return records, nil
}

func (s *InkFillService) mapPrinterErr(err error, printerID string) error {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		return domain.NewDomainError(ErrInvalidID, "invalid printer ID: %s", printerID)
	case errors.Is(err, repository.ErrNotFound):
		return domain.ErrPrinterNotFound
	default:
		s.logger.Error().Err(err).Str("printer_id", printerID).Msg("printer lookup failed")
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
