package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync/atomic"
	"time"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/domain/entity"
	"github.com/shadowflee/fluxer/internal/domain/repository"
	"github.com/shadowflee/fluxer/internal/logging"
)

const (
	// DefaultChannelDisplayName is the channel name shown in system settings.
	DefaultChannelDisplayName = "Fluxer"
	// ChannelDescription describes the message channel in system settings.
	ChannelDescription = "Messages and alerts from Fluxer"

	backgroundChannelName        = "Fluxer Background"
	backgroundChannelDescription = "Keeps Fluxer connected in the background"
)

// SoundLabel returns a short human name for a sound reference.
func SoundLabel(ref string) string {
	if ref == "" {
		return "Silent"
	}
	base := path.Base(strings.TrimRight(ref, "/"))
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	base = strings.TrimSuffix(base, path.Ext(base))
	if base == "" || base == "." || base == "/" {
		return "Custom"
	}
	return base
}

// ChannelIdentity keeps exactly one notification channel active, derived from
// the user's sound preference. Channels bind their sound at creation, so a
// new sound moves notifications to a new channel and retires the old one.
type ChannelIdentity struct {
	registry    port.ChannelRegistry
	prefs       repository.PreferenceRepository
	toaster     port.Toaster
	displayName string

	active atomic.Value // string
}

// NewChannelIdentity creates the identity manager. An empty displayName uses
// DefaultChannelDisplayName.
func NewChannelIdentity(
	registry port.ChannelRegistry,
	prefs repository.PreferenceRepository,
	toaster port.Toaster,
	displayName string,
) *ChannelIdentity {
	if displayName == "" {
		displayName = DefaultChannelDisplayName
	}
	c := &ChannelIdentity{
		registry:    registry,
		prefs:       prefs,
		toaster:     toaster,
		displayName: displayName,
	}
	c.active.Store(entity.DefaultChannelID)
	return c
}

// ActiveID returns the channel new notifications are posted to.
// Safe to call from any goroutine.
func (c *ChannelIdentity) ActiveID() string {
	return c.active.Load().(string)
}

// SoundRef returns the stored sound preference, "" when none is set.
func (c *ChannelIdentity) SoundRef(ctx context.Context) string {
	ref, ok, err := c.prefs.Get(ctx, repository.KeyNotificationSound)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to read notification sound")
		return ""
	}
	if !ok {
		return ""
	}
	return ref
}

// ResolveChannel returns the channel for soundRef, creating it when the
// registry does not know it yet. Calling it again with the same reference
// returns the same id without creating anything.
func (c *ChannelIdentity) ResolveChannel(ctx context.Context, soundRef string) (string, error) {
	id := entity.ChannelIDForSound(soundRef)

	exists, err := c.registry.Exists(ctx, id)
	if err != nil {
		return "", fmt.Errorf("check channel %s: %w", id, err)
	}
	if exists {
		return id, nil
	}

	channel := entity.NotificationChannel{
		ID:          id,
		DisplayName: c.displayName,
		Description: ChannelDescription,
		SoundRef:    soundRef,
		CreatedAt:   time.Now().Unix(),
	}
	if err := c.registry.Create(ctx, channel); err != nil {
		return "", fmt.Errorf("create channel %s: %w", id, err)
	}

	logging.FromContext(ctx).Info().
		Str("component", "channel-identity").
		Str("channel_id", id).
		Msg("notification channel created")
	return id, nil
}

// Activate resolves the channel for the stored preference and makes it active.
func (c *ChannelIdentity) Activate(ctx context.Context) (string, error) {
	id, err := c.ResolveChannel(ctx, c.SoundRef(ctx))
	if err != nil {
		return c.ActiveID(), err
	}
	c.active.Store(id)
	return id, nil
}

// ChangeSound stores a new sound preference, switches to its channel and
// deletes the previous channel when it differs. An empty ref clears the
// preference.
func (c *ChannelIdentity) ChangeSound(ctx context.Context, newRef string) error {
	log := logging.FromContext(ctx).With().Str("component", "channel-identity").Logger()

	var err error
	if newRef == "" {
		err = c.prefs.Delete(ctx, repository.KeyNotificationSound)
	} else {
		err = c.prefs.Set(ctx, repository.KeyNotificationSound, newRef)
	}
	if err != nil {
		return fmt.Errorf("save notification sound: %w", err)
	}

	oldID := c.ActiveID()
	newID, err := c.Activate(ctx)
	if err != nil {
		return err
	}
	if oldID != newID {
		if err := c.registry.Delete(ctx, oldID); err != nil {
			log.Warn().Err(err).Str("channel_id", oldID).Msg("failed to retire old channel")
		} else {
			log.Info().Str("old", oldID).Str("new", newID).Msg("notification channel switched")
		}
	}

	if c.toaster != nil {
		c.toaster.Show(ctx, "Notification sound: "+SoundLabel(newRef))
	}
	return nil
}

// EnsureBackgroundChannel creates the silent channel used by the keep-alive
// notification if it is missing.
func (c *ChannelIdentity) EnsureBackgroundChannel(ctx context.Context) error {
	exists, err := c.registry.Exists(ctx, entity.BackgroundChannelID)
	if err != nil {
		return fmt.Errorf("check background channel: %w", err)
	}
	if exists {
		return nil
	}
	err = c.registry.Create(ctx, entity.NotificationChannel{
		ID:          entity.BackgroundChannelID,
		DisplayName: backgroundChannelName,
		Description: backgroundChannelDescription,
		Silent:      true,
		CreatedAt:   time.Now().Unix(),
	})
	if err != nil {
		return fmt.Errorf("create background channel: %w", err)
	}
	return nil
}
