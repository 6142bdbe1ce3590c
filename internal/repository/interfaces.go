// Package repository defines data access interfaces for the printer portal.
// These interfaces abstract the document store, allowing for different
// implementations (MongoDB, in-memory for testing) while keeping the service
// layer clean.
//
// Every method that takes an ownerEmail parameter scopes its query to that
// owner. A resource that exists but belongs to someone else is reported as
// ErrNotFound, exactly like a resource that does not exist at all.
package repository

import (
	"context"

	"github.com/prn-tf/printer-portal/internal/domain"
)

// =============================================================================
// User Repository
// =============================================================================

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// Create creates a new user and fills in the assigned ID.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// =============================================================================
// Printer Repository
// =============================================================================

// PrinterRepository defines the interface for printer data access.
type PrinterRepository interface {
	// Create creates a new printer and fills in the assigned ID.
	Create(ctx context.Context, printer *domain.Printer) error

	// GetByID retrieves a printer by ID, scoped to the owner.
	// Returns ErrInvalidID for a malformed id and ErrNotFound when the
	// printer is absent or owned by someone else.
	GetByID(ctx context.Context, ownerEmail, id string) (*domain.Printer, error)

	// ListByOwner returns all printers belonging to the owner.
	ListByOwner(ctx context.Context, ownerEmail string) ([]*domain.Printer, error)

	// Update replaces the stored document with the given printer,
	// scoped to the owner. The printer's ID selects the document.
	Update(ctx context.Context, printer *domain.Printer) error

	// Delete deletes a printer by ID, scoped to the owner.
	Delete(ctx context.Context, ownerEmail, id string) error

	// ExistsBySerial checks if any printer in the system has the given
	// serial number, regardless of owner.
	ExistsBySerial(ctx context.Context, serialNumber string) (bool, error)
}

// =============================================================================
// Ink Fill Repository
// =============================================================================

// InkFillRepository defines the interface for ink fill record data access.
// Records are append-only; there are no update or delete methods.
type InkFillRepository interface {
	// Create appends a new ink fill record and fills in the assigned ID.
	Create(ctx context.Context, record *domain.InkFillRecord) error

	// ListByPrinter returns the owner's fill records for one printer,
	// sorted by timestamp descending.
	ListByPrinter(ctx context.Context, ownerEmail, printerID string) ([]*domain.InkFillRecord, error)

	// ListByOwner returns all of the owner's fill records across all
	// printers, sorted by timestamp descending.
	ListByOwner(ctx context.Context, ownerEmail string) ([]*domain.InkFillRecord, error)
}

// =============================================================================
// Job Repository
// =============================================================================

// JobRepository defines the interface for print job data access.
// Jobs are append-only; there are no update or delete methods.
type JobRepository interface {
	// Create appends a new print job and fills in the assigned ID.
	Create(ctx context.Context, job *domain.PrintJob) error

	// GetByID retrieves a job by ID, scoped to the owner.
	GetByID(ctx context.Context, ownerEmail, id string) (*domain.PrintJob, error)

	// ListByPrinter returns the owner's jobs for one printer, sorted by
	// print_date descending. The implementation must match printer_id
	// whether it was stored as a plain string or a native reference.
	ListByPrinter(ctx context.Context, ownerEmail, printerID string) ([]*domain.PrintJob, error)

	// ListByOwner returns all of the owner's jobs, sorted by print_date
	// descending.
	ListByOwner(ctx context.Context, ownerEmail string) ([]*domain.PrintJob, error)
}

// =============================================================================
// Inventory Repository
// =============================================================================

// InventoryRepository defines the interface for ink inventory data access.
type InventoryRepository interface {
	// Create creates a new inventory item and fills in the assigned ID.
	Create(ctx context.Context, item *domain.InventoryItem) error

	// ListByOwner returns all inventory items belonging to the owner.
	ListByOwner(ctx context.Context, ownerEmail string) ([]*domain.InventoryItem, error)

	// Patch applies a partial update to an item, scoped to the owner.
	// Only the patch's non-nil fields change. Returns the updated item.
	Patch(ctx context.Context, ownerEmail, id string, patch domain.InventoryPatch) (*domain.InventoryItem, error)

	// Delete deletes an item by ID, scoped to the owner.
	Delete(ctx context.Context, ownerEmail, id string) error

	// ExistsByName checks if the owner already has an item with the given
	// name. The comparison is case-sensitive.
	ExistsByName(ctx context.Context, ownerEmail, inkName string) (bool, error)
}

// =============================================================================
// Settings Repository
// =============================================================================

// SettingsRepository defines the interface for per-owner settings access.
//
// Both methods are idempotent upserts keyed by owner_email, so concurrent
// first reads by the same owner cannot produce duplicate documents.
type SettingsRepository interface {
	// GetOrCreate returns the owner's settings, atomically creating the
	// default document if none exists yet.
	GetOrCreate(ctx context.Context, ownerEmail string) (*domain.UserSettings, error)

	// Upsert replaces the owner's cost coefficient and currency symbol,
	// creating the document if absent, and returns the resulting settings.
	Upsert(ctx context.Context, ownerEmail string, costCoefficient float64, currencySymbol string) (*domain.UserSettings, error)
}
