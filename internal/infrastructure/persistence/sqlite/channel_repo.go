package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shadowflee/fluxer/internal/domain/entity"
	"github.com/shadowflee/fluxer/internal/domain/repository"
	"github.com/shadowflee/fluxer/internal/logging"
)

type channelRepo struct {
	db *sql.DB
}

// NewChannelRepository creates a new SQLite-backed notification channel repository.
func NewChannelRepository(db *sql.DB) repository.ChannelRepository {
	return &channelRepo{db: db}
}

const channelColumns = `id, display_name, description, sound_ref, silent, created_at`

func (r *channelRepo) Get(ctx context.Context, id string) (*entity.NotificationChannel, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+channelColumns+` FROM notification_channels WHERE id = ?`, id)
	ch, err := scanChannel(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return ch, nil
}

// Save inserts the channel. A channel's sound is fixed at creation, so an
// existing row only has its display texts refreshed.
func (r *channelRepo) Save(ctx context.Context, channel *entity.NotificationChannel) error {
	if channel == nil {
		return errors.New("cannot save nil channel")
	}
	logging.FromContext(ctx).Debug().Str("channel_id", channel.ID).Msg("saving notification channel")

	createdAt := channel.CreatedAt
	if createdAt == 0 {
		createdAt = time.Now().Unix()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notification_channels (`+channelColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			display_name = excluded.display_name,
			description = excluded.description`,
		channel.ID, channel.DisplayName, channel.Description, channel.SoundRef, channel.Silent, createdAt,
	)
	return err
}

func (r *channelRepo) Delete(ctx context.Context, id string) error {
	logging.FromContext(ctx).Debug().Str("channel_id", id).Msg("deleting notification channel")

	_, err := r.db.ExecContext(ctx, `DELETE FROM notification_channels WHERE id = ?`, id)
	return err
}

func (r *channelRepo) List(ctx context.Context) ([]*entity.NotificationChannel, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+channelColumns+` FROM notification_channels ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var channels []*entity.NotificationChannel
	for rows.Next() {
		ch, err := scanChannel(rows)
		if err != nil {
			return nil, err
		}
		channels = append(channels, ch)
	}
	return channels, rows.Err()
}

func scanChannel(row rowScanner) (*entity.NotificationChannel, error) {
	var ch entity.NotificationChannel
	if err := row.Scan(&ch.ID, &ch.DisplayName, &ch.Description, &ch.SoundRef, &ch.Silent, &ch.CreatedAt); err != nil {
		return nil, err
	}
	return &ch, nil
}
