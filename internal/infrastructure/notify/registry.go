package notify

import (
	"context"
	"fmt"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/domain/entity"
	"github.com/shadowflee/fluxer/internal/domain/repository"
)

var _ port.ChannelRegistry = (*Registry)(nil)

// Registry keeps notification channels in the preference database. Desktop
// notification servers have no channel concept, so the registry is where a
// channel's sound binding lives.
type Registry struct {
	repo repository.ChannelRepository
}

// NewRegistry creates a registry over repo.
func NewRegistry(repo repository.ChannelRepository) *Registry {
	return &Registry{repo: repo}
}

func (r *Registry) Exists(ctx context.Context, id string) (bool, error) {
	ch, err := r.repo.Get(ctx, id)
	if err != nil {
		return false, fmt.Errorf("look up channel %s: %w", id, err)
	}
	return ch != nil, nil
}

func (r *Registry) Create(ctx context.Context, channel entity.NotificationChannel) error {
	if channel.ID == "" {
		return fmt.Errorf("channel id is empty")
	}
	return r.repo.Save(ctx, &channel)
}

func (r *Registry) Delete(ctx context.Context, id string) error {
	return r.repo.Delete(ctx, id)
}

func (r *Registry) List(ctx context.Context) ([]entity.NotificationChannel, error) {
	stored, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.NotificationChannel, 0, len(stored))
	for _, ch := range stored {
		out = append(out, *ch)
	}
	return out, nil
}

// Lookup returns the stored channel with id.
func (r *Registry) Lookup(ctx context.Context, id string) (entity.NotificationChannel, bool, error) {
	ch, err := r.repo.Get(ctx, id)
	if err != nil || ch == nil {
		return entity.NotificationChannel{}, false, err
	}
	return *ch, true, nil
}
