package port

import (
	"context"
	"errors"

	"github.com/shadowflee/fluxer/internal/domain/entity"
)

// ErrNotificationPermission is returned when the platform refuses to post a
// notification because the user revoked the permission.
var ErrNotificationPermission = errors.New("notification permission revoked")

// SystemNotification is a notification posted to the OS tray.
type SystemNotification struct {
	ID        int32
	ChannelID string
	Title     string
	Body      string
	// SoundRef overrides the channel sound when set.
	SoundRef string
	Silent   bool
}

// SystemNotifier posts OS notifications.
type SystemNotifier interface {
	Post(ctx context.Context, n SystemNotification) error
}

// ChannelRegistry tracks notification channels known to the platform.
type ChannelRegistry interface {
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, channel entity.NotificationChannel) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entity.NotificationChannel, error)
}

// Toaster shows short transient messages to the user.
type Toaster interface {
	Show(ctx context.Context, message string)
}
