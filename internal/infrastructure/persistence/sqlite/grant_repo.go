package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shadowflee/fluxer/internal/domain/entity"
	"github.com/shadowflee/fluxer/internal/domain/repository"
	"github.com/shadowflee/fluxer/internal/logging"
)

type grantRepo struct {
	db *sql.DB
}

// NewGrantRepository creates a new SQLite-backed grant repository.
func NewGrantRepository(db *sql.DB) repository.GrantRepository {
	return &grantRepo{db: db}
}

func (r *grantRepo) Get(ctx context.Context, grant entity.Grant) (*entity.GrantRecord, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("grant", string(grant)).Msg("getting grant")

	row := r.db.QueryRowContext(ctx,
		`SELECT grant_name, granted, updated_at FROM grants WHERE grant_name = ?`, string(grant))
	record, err := scanGrant(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

func (r *grantRepo) Set(ctx context.Context, record *entity.GrantRecord) error {
	log := logging.FromContext(ctx)

	if record == nil {
		log.Error().Msg("cannot set nil grant record")
		return errors.New("cannot set nil grant record")
	}

	log.Debug().
		Str("grant", string(record.Grant)).
		Bool("granted", record.Granted).
		Msg("setting grant")

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO grants (grant_name, granted, updated_at)
		VALUES (?, ?, unixepoch())
		ON CONFLICT(grant_name) DO UPDATE SET granted = excluded.granted, updated_at = excluded.updated_at`,
		string(record.Grant), record.Granted,
	)
	return err
}

func (r *grantRepo) Delete(ctx context.Context, grant entity.Grant) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("grant", string(grant)).Msg("deleting grant")

	_, err := r.db.ExecContext(ctx, `DELETE FROM grants WHERE grant_name = ?`, string(grant))
	return err
}

func (r *grantRepo) GetAll(ctx context.Context) ([]*entity.GrantRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT grant_name, granted, updated_at FROM grants ORDER BY grant_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*entity.GrantRecord
	for rows.Next() {
		record, err := scanGrant(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGrant(row rowScanner) (*entity.GrantRecord, error) {
	var (
		name      string
		granted   bool
		updatedAt sql.NullInt64
	)
	if err := row.Scan(&name, &granted, &updatedAt); err != nil {
		return nil, err
	}
	record := &entity.GrantRecord{
		Grant:   entity.Grant(name),
		Granted: granted,
	}
	if updatedAt.Valid {
		record.UpdatedAt = updatedAt.Int64
	}
	return record, nil
}
