package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/shadowflee/fluxer/internal/domain/repository"
	"github.com/shadowflee/fluxer/internal/domain/url"
	"github.com/shadowflee/fluxer/internal/domain/validation"
	"github.com/shadowflee/fluxer/internal/logging"
)

// ErrInvalidServerURL is returned when a stored server address cannot be used.
var ErrInvalidServerURL = errors.New("invalid server url")

// ConfigureServerUseCase validates and stores the server address.
type ConfigureServerUseCase struct {
	prefs repository.PreferenceRepository
}

// NewConfigureServerUseCase creates a new ConfigureServerUseCase.
func NewConfigureServerUseCase(prefs repository.PreferenceRepository) *ConfigureServerUseCase {
	return &ConfigureServerUseCase{prefs: prefs}
}

// Save validates raw and persists it. Validation failures are returned as
// *entity.ServerURLError carrying the message to show the user.
func (uc *ConfigureServerUseCase) Save(ctx context.Context, raw string) (string, error) {
	value, err := validation.ValidateServerURL(raw)
	if err != nil {
		return "", err
	}
	if err := uc.prefs.Set(ctx, repository.KeyServerURL, value); err != nil {
		return "", fmt.Errorf("save server url: %w", err)
	}

	logging.FromContext(ctx).Info().
		Str("component", "configure-server").
		Str("host", url.ExtractDomain(value)).
		Msg("server configured")
	return value, nil
}

// Load returns the stored server address, or "" when none is stored or the
// stored value is not a usable http(s) address.
func (uc *ConfigureServerUseCase) Load(ctx context.Context) (string, error) {
	value, ok, err := uc.prefs.Get(ctx, repository.KeyServerURL)
	if err != nil {
		return "", fmt.Errorf("load server url: %w", err)
	}
	if !ok || !validation.IsUsableServerURL(value) {
		return "", nil
	}
	return value, nil
}

// Clear forgets the stored server address.
func (uc *ConfigureServerUseCase) Clear(ctx context.Context) error {
	if err := uc.prefs.Delete(ctx, repository.KeyServerURL); err != nil {
		return fmt.Errorf("clear server url: %w", err)
	}
	return nil
}
