package repository

import (
	"context"

	"github.com/shadowflee/fluxer/internal/domain/entity"
)

// GrantRepository persists the platform grants the user approved or refused
// through the permission dialog.
type GrantRepository interface {
	// Get retrieves the record for a grant.
	// Returns nil if the user was never asked.
	Get(ctx context.Context, grant entity.Grant) (*entity.GrantRecord, error)

	// Set saves or updates a grant record.
	Set(ctx context.Context, record *entity.GrantRecord) error

	// Delete forgets a grant so the user is asked again.
	Delete(ctx context.Context, grant entity.Grant) error

	// GetAll retrieves all grant records.
	GetAll(ctx context.Context) ([]*entity.GrantRecord, error)
}
