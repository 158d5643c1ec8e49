// Package grants keeps the platform grants (microphone, camera) the user
// approved in the permission dialog.
package grants

import (
	"context"
	"time"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/domain/entity"
	"github.com/shadowflee/fluxer/internal/domain/repository"
	"github.com/shadowflee/fluxer/internal/logging"
)

var (
	_ port.GrantChecker     = (*Store)(nil)
	_ port.PermissionDialog = (*RecordingDialog)(nil)
)

// Store answers grant checks from the grant repository. A read error counts
// as not granted.
type Store struct {
	repo repository.GrantRepository
}

// NewStore creates a grant store.
func NewStore(repo repository.GrantRepository) *Store {
	return &Store{repo: repo}
}

func (s *Store) IsGranted(ctx context.Context, grant entity.Grant) bool {
	record, err := s.repo.Get(ctx, grant)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("grant", string(grant)).Msg("grant lookup failed")
		return false
	}
	return record.IsGranted()
}

// Set records the user's answer for grant.
func (s *Store) Set(ctx context.Context, grant entity.Grant, granted bool) error {
	return s.repo.Set(ctx, &entity.GrantRecord{
		Grant:     grant,
		Granted:   granted,
		UpdatedAt: time.Now().Unix(),
	})
}

// Revoke forgets grant so the dialog asks again.
func (s *Store) Revoke(ctx context.Context, grant entity.Grant) error {
	return s.repo.Delete(ctx, grant)
}

// All lists every recorded grant.
func (s *Store) All(ctx context.Context) ([]*entity.GrantRecord, error) {
	return s.repo.GetAll(ctx)
}

// RecordingDialog wraps a dialog and stores each answer before passing it on.
// An answer arriving after ctx is done belongs to a torn-down session and is
// passed on without being stored.
type RecordingDialog struct {
	inner port.PermissionDialog
	store *Store
}

// NewRecordingDialog wraps inner.
func NewRecordingDialog(inner port.PermissionDialog, store *Store) *RecordingDialog {
	return &RecordingDialog{inner: inner, store: store}
}

func (d *RecordingDialog) RequestGrants(
	ctx context.Context,
	grants []entity.Grant,
	callback func(results map[entity.Grant]bool),
) {
	d.inner.RequestGrants(ctx, grants, func(results map[entity.Grant]bool) {
		if ctx.Err() != nil {
			logging.FromContext(ctx).Debug().Msg("dialog answered after teardown, not recorded")
			if callback != nil {
				callback(results)
			}
			return
		}
		for _, g := range grants {
			if err := d.store.Set(ctx, g, results[g]); err != nil {
				logging.FromContext(ctx).Warn().Err(err).Str("grant", string(g)).Msg("failed to record grant")
			}
		}
		if callback != nil {
			callback(results)
		}
	})
}
