package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/prn-tf/printer-portal/internal/domain"
	"github.com/prn-tf/printer-portal/internal/repository"
)

// JobService records and lists print job executions.
type JobService struct {
	jobRepo     repository.JobRepository
	printerRepo repository.PrinterRepository
	logger      zerolog.Logger
}

// NewJobService creates a new JobService.
func NewJobService(jobRepo repository.JobRepository, printerRepo repository.PrinterRepository, logger zerolog.Logger) *JobService {
	return &JobService{
		jobRepo:     jobRepo,
		printerRepo: printerRepo,
		logger:      logger.With().Str("service", "job").Logger(),
	}
}

// Upload stores a job log against one of the owner's printers. The job is
// stored verbatim: derived fields like printed_area_sqm are trusted as
// reported and never recomputed. The printer-existence check and the insert
// are not atomic (accepted risk, see the repository package).
func (s *JobService) Upload(ctx context.Context, ownerEmail string, job *domain.PrintJob) (string, error) {
	if err := job.Validate(); err != nil {
		return "", err
	}

	if _, err := s.printerRepo.GetByID(ctx, ownerEmail, job.PrinterID); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			return "", domain.NewDomainError(ErrInvalidID, "invalid printer_id format: %s", job.PrinterID)
		case errors.Is(err, repository.ErrNotFound):
			return "", domain.ErrPrinterNotFound
		default:
			s.logger.Error().Err(err).Str("printer_id", job.PrinterID).Msg("printer lookup failed")
			return "", fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	job.ID = ""
	job.OwnerEmail = ownerEmail

	if err := s.jobRepo.Create(ctx, job); err != nil {
		s.logger.Error().Err(err).Msg("failed to store job")
		return "", fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info().
		Str("job_id", job.ID).
		Str("printer_id", job.PrinterID).
		Str("job_name", job.JobName).
		Msg("job uploaded")

	return job.ID, nil
}

// ListForPrinter returns the owner's jobs for one printer, newest first.
// Unlike ink fill listing, the printer itself is not required to still
// exist; only the id format is checked.
func (s *JobService) ListForPrinter(ctx context.Context, ownerEmail, printerID string) ([]*domain.PrintJob, error) {
	jobs, err := s.jobRepo.ListByPrinter(ctx, ownerEmail, printerID)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return nil, domain.NewDomainError(ErrInvalidID, "invalid printer ID: %s", printerID)
		}
		s.logger.Error().Err(err).Str("printer_id", printerID).Msg("failed to list jobs")
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return jobs, nil
}

// Get returns one job scoped to the owner.
func (s *JobService) Get(ctx context.Context, ownerEmail, jobID string) (*domain.PrintJob, error) {
	job, err := s.jobRepo.GetByID(ctx, ownerEmail, jobID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			return nil, domain.NewDomainError(ErrInvalidID, "invalid job ID: %s", jobID)
		case errors.Is(err, repository.ErrNotFound):
			return nil, domain.ErrJobNotFound
		default:
			s.logger.Error().Err(err).Str("job_id", jobID).Msg("failed to get job")
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}
	return job, nil
}

// ListAll returns every job of the owner, newest first.
func (s *JobService) ListAll(ctx context.Context, ownerEmail string) ([]*domain.PrintJob, error) {
	jobs, err := s.jobRepo.ListByOwner(ctx, ownerEmail)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list jobs")
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return jobs, nil
}
