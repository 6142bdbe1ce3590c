package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/prn-tf/printer-portal/internal/domain"
	"github.com/prn-tf/printer-portal/internal/repository"
)

// InventoryService manages the per-owner ink inventory ledger.
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
	logger        zerolog.Logger
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(inventoryRepo repository.InventoryRepository, logger zerolog.Logger) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		logger:        logger.With().Str("service", "inventory").Logger(),
	}
}

// Create adds a new inventory item. The ink name must be unique for this
// owner; the comparison is case-sensitive.
func (s *InventoryService) Create(ctx context.Context, ownerEmail string, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.inventoryRepo.ExistsByName(ctx, ownerEmail, item.InkName)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to check ink name")
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if exists {
		return nil, domain.NewDomainError(domain.ErrDuplicateInkName,
			"an ink inventory item with the name '%s' already exists", item.InkName)
	}

	item.ID = ""
	item.OwnerEmail = ownerEmail

	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.NewDomainError(domain.ErrDuplicateInkName,
				"an ink inventory item with the name '%s' already exists", item.InkName)
		}
		s.logger.Error().Err(err).Msg("failed to create inventory item")
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info().Str("item_id", item.ID).Str("ink_name", item.InkName).Msg("inventory item created")
	return item, nil
}

// List returns all of the owner's inventory items.
func (s *InventoryService) List(ctx context.Context, ownerEmail string) ([]*domain.InventoryItem, error) {
	items, err := s.inventoryRepo.ListByOwner(ctx, ownerEmail)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list inventory")
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return items, nil
}

// Update applies a merge patch: only the supplied fields change. An empty
// patch is rejected before reaching the store.
func (s *InventoryService) Update(ctx context.Context, ownerEmail, id string, patch domain.InventoryPatch) (*domain.InventoryItem, error) {
	if patch.IsEmpty() {
		return nil, ErrEmptyUpdate
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	item, err := s.inventoryRepo.Patch(ctx, ownerEmail, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			return nil, domain.NewDomainError(ErrInvalidID, "invalid item ID: %s", id)
		case errors.Is(err, repository.ErrNotFound):
			return nil, domain.ErrItemNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, domain.NewDomainError(domain.ErrDuplicateInkName,
				"an ink inventory item with that name already exists")
		default:
			s.logger.Error().Err(err).Str("item_id", id).Msg("failed to patch inventory item")
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	s.logger.Info().Str("item_id", id).Msg("inventory item updated")
	return item, nil
}

// Delete removes one inventory item scoped to the owner.
func (s *InventoryService) Delete(ctx context.Context, ownerEmail, id string) error {
	if err := s.inventoryRepo.Delete(ctx, ownerEmail, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			return domain.NewDomainError(ErrInvalidID, "invalid item ID: %s", id)
		case errors.Is(err, repository.ErrNotFound):
			return domain.ErrItemNotFound
		default:
			s.logger.Error().Err(err).Str("item_id", id).Msg("failed to delete inventory item")
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}
	s.logger.Info().Str("item_id", id).Msg("inventory item deleted")
	return nil
}
