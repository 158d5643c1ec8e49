package repository

import (
	"context"

	"github.com/shadowflee/fluxer/internal/domain/entity"
)

// ChannelRepository persists notification channels.
type ChannelRepository interface {
	// Get retrieves a channel by id. Returns nil if it does not exist.
	Get(ctx context.Context, id string) (*entity.NotificationChannel, error)

	// Save inserts a channel. Saving an existing id keeps the stored sound.
	Save(ctx context.Context, channel *entity.NotificationChannel) error

	// Delete removes a channel by id.
	Delete(ctx context.Context, id string) error

	// List returns all channels ordered by creation time.
	List(ctx context.Context) ([]*entity.NotificationChannel, error)
}
