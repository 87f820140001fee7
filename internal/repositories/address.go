package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-navigation/internal/logger"
	"github.com/sbilibin2017/gw-navigation/internal/models"
)

// AddressReadRepository handles address history read operations.
type AddressReadRepository struct {
	db *sqlx.DB
}

func NewAddressReadRepository(db *sqlx.DB) *AddressReadRepository {
	return &AddressReadRepository{db: db}
}

// ListByUserID returns all saved addresses for a user, most recently
// touched first.
func (r *AddressReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.AddressDB, error) {
	const query = `
		SELECT address_id, user_id, address, lat, lng, created_at, updated_at
		FROM addresses
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`

	var addresses []models.AddressDB
	err := r.db.SelectContext(ctx, &addresses, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result_count", len(addresses),
		"error", err,
	)

	return addresses, err
}

// AddressWriteRepository handles address history write operations.
type AddressWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAddressWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AddressWriteRepository {
	return &AddressWriteRepository{db: db, txGetter: txGetter}
}

// addressUpsertRow carries the returned address together with the
// inserted flag derived from xmax.
type addressUpsertRow struct {
	models.AddressDB
	Inserted bool `db:"inserted"`
}

// Upsert performs a single-statement insert-or-update keyed on the
// user and the exact coordinate pair. Coordinates are matched as stored,
// with no tolerance: values differing in any decimal produce separate
// rows. A conflict refreshes the label and the updated_at timestamp.
// The second return value reports whether a new row was created.
func (r *AddressWriteRepository) Upsert(ctx context.Context, userID uuid.UUID, address string, lat, lng float64) (*models.AddressDB, bool, error) {
	const query = `
		INSERT INTO addresses (address_id, user_id, address, lat, lng, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (user_id, lat, lng)
		DO UPDATE SET address = EXCLUDED.address, updated_at = NOW()
		RETURNING address_id, user_id, address, lat, lng, created_at, updated_at, (xmax = 0) AS inserted
	`
	args := []any{uuid.New(), userID, address, lat, lng}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var row addressUpsertRow
	err := sqlx.GetContext(ctx, executor, &row, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, address, lat, lng},
		"inserted", row.Inserted,
		"error", err,
	)

	if err != nil {
		return nil, false, err
	}

	return &row.AddressDB, row.Inserted, nil
}

// Delete removes an address owned by the given user. A missing row and a
// row owned by someone else are indistinguishable: both return
// sql.ErrNoRows.
func (r *AddressWriteRepository) Delete(ctx context.Context, userID, addressID uuid.UUID) error {
	const query = `
		DELETE FROM addresses
		WHERE address_id = $1 AND user_id = $2
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, addressID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{addressID, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
