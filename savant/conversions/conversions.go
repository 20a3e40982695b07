package conversions

import (
	"context"
	"time"

	"codeberg.org/savant/server/internal/auth"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new conversion audit repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// writes one audit record; the id is assigned here when missing
func (r *Repository) Insert(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	_, err := r.db.Exec(
		ctx,
		queryInsert,
		rec.ID,
		rec.ConversionType,
		rec.FromFormat,
		rec.ToFormat,
		rec.FileName,
		rec.FileSize,
		rec.Status,
		nullable(rec.ErrorMessage),
		rec.DurationMillis,
		nullable(rec.UserID),
		rec.IPAddress,
		rec.UserAgent,
	)

	return err
}

// counts successful conversions for an identity inside [from, to);
// authenticated identities count by user id, anonymous ones by IP
func (r *Repository) CountSuccessesBetween(
	ctx context.Context,
	id auth.Identity,
	from, to time.Time,
) (int64, error) {
	var count int64

	query := queryCountIPSuccessesBetween
	key := id.IPAddress

	if id.Authenticated() {
		query = queryCountUserSuccessesBetween
		key = id.UserID
	}

	if err := r.db.QueryRow(ctx, query, key, from, to).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// returns a user's most recent conversions, newest first
func (r *Repository) RecentForUser(ctx context.Context, userID string, limit int) ([]Record, error) {
	rows, err := r.db.Query(ctx, queryRecentForUser, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []Record{}

	for rows.Next() {
		var rec Record

		err := rows.Scan(
			&rec.ID,
			&rec.ConversionType,
			&rec.FromFormat,
			&rec.ToFormat,
			&rec.FileName,
			&rec.FileSize,
			&rec.Status,
			&rec.ErrorMessage,
			&rec.DurationMillis,
			&rec.UserID,
			&rec.IPAddress,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		records = append(records, rec)
	}

	return records, rows.Err()
}

// aggregates totals and per-type counts for records created since the
// given time
func (r *Repository) StatsSince(ctx context.Context, since time.Time) (*Stats, error) {
	stats := Stats{ByType: map[string]int64{}}

	err := r.db.QueryRow(ctx, queryStatsSince, since).Scan(
		&stats.Total,
		&stats.Succeeded,
		&stats.Failed,
	)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, queryCountByTypeSince, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			conversionType string
			count          int64
		)

		if err := rows.Scan(&conversionType, &count); err != nil {
			return nil, err
		}

		stats.ByType[conversionType] = count
	}

	return &stats, rows.Err()
}

// maps empty strings onto SQL NULL
func nullable(s string) any {
	if s == "" {
		return nil
	}

	return s
}
