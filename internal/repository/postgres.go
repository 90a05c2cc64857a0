package repository

import (
	"context"
	"errors"
	"fmt"

	"moving-estimate-api/internal/models"
	"moving-estimate-api/internal/obs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the subset of pgx shared by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Repository implements the reference data store and order persistence on PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// ListPrefectures returns every prefecture ordered by id.
func (r *Repository) ListPrefectures(ctx context.Context) ([]models.Prefecture, error) {
	rows, err := r.db.Query(ctx, `SELECT prefecture_id, prefecture_name FROM prefecture ORDER BY prefecture_id`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list prefectures: %w", err)
	}

	prefectures, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Prefecture, error) {
		var p models.Prefecture
		err := row.Scan(&p.ID, &p.Name)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("repository: failed to scan prefectures: %w", err)
	}
	return prefectures, nil
}

// GetPrefectureName returns the display name of a prefecture. Anything other than
// exactly one matching row is a models.ErrDataIntegrity.
func (r *Repository) GetPrefectureName(ctx context.Context, prefectureID string) (_ string, err error) {
	defer obs.Time(ctx, "repository.GetPrefectureName")(&err)

	rows, err := r.db.Query(ctx, `SELECT prefecture_name FROM prefecture WHERE prefecture_id = $1`, prefectureID)
	if err != nil {
		return "", fmt.Errorf("repository: failed to query prefecture %q: %w", prefectureID, err)
	}

	name, err := pgx.CollectExactlyOneRow(rows, pgx.RowTo[string])
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return "", fmt.Errorf("%w: repository: no prefecture with id %q", models.ErrDataIntegrity, prefectureID)
	case errors.Is(err, pgx.ErrTooManyRows):
		return "", fmt.Errorf("%w: repository: several prefectures with id %q", models.ErrDataIntegrity, prefectureID)
	case err != nil:
		return "", fmt.Errorf("repository: failed to scan prefecture %q: %w", prefectureID, err)
	}
	return name, nil
}

// FindPrefectureDistance looks up the straight-line distance between two prefectures in
// either stored order. found is false when no record exists.
func (r *Repository) FindPrefectureDistance(ctx context.Context, fromID, toID string) (distance float64, found bool, err error) {
	sql := `
		SELECT distance
		FROM prefecture_distance
		WHERE (prefecture_id_from = $1 AND prefecture_id_to = $2)
		   OR (prefecture_id_from = $2 AND prefecture_id_to = $1)
		LIMIT 1
	`

	err = r.db.QueryRow(ctx, sql, fromID, toID).Scan(&distance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("repository: failed to query distance %q-%q: %w", fromID, toID, err)
	}
	return distance, true, nil
}

// GetBoxPerPackage returns how many boxes one unit of a package type needs.
func (r *Repository) GetBoxPerPackage(ctx context.Context, packageID int) (int, error) {
	var box int
	err := r.db.QueryRow(ctx, `SELECT box FROM package_box WHERE package_id = $1`, packageID).Scan(&box)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("%w: repository: unknown package %d", models.ErrPricingLookup, packageID)
	}
	if err != nil {
		return 0, fmt.Errorf("repository: failed to query package %d: %w", packageID, err)
	}
	return box, nil
}

// ListTruckCapacities returns all truck tiers ordered by capacity then price.
func (r *Repository) ListTruckCapacities(ctx context.Context) ([]models.TruckCapacity, error) {
	rows, err := r.db.Query(ctx, `SELECT truck_id, max_box, price FROM truck_capacity ORDER BY max_box, price`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list truck capacities: %w", err)
	}

	tiers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.TruckCapacity, error) {
		var t models.TruckCapacity
		err := row.Scan(&t.ID, &t.MaxBox, &t.Price)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("repository: failed to scan truck capacities: %w", err)
	}
	return tiers, nil
}

// GetPricePerOptionalService returns the price of an optional service.
func (r *Repository) GetPricePerOptionalService(ctx context.Context, serviceID int) (int, error) {
	var price int
	err := r.db.QueryRow(ctx, `SELECT price FROM optional_service WHERE service_id = $1`, serviceID).Scan(&price)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("%w: repository: unknown optional service %d", models.ErrPricingLookup, serviceID)
	}
	if err != nil {
		return 0, fmt.Errorf("repository: failed to query optional service %d: %w", serviceID, err)
	}
	return price, nil
}
