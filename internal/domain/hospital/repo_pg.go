package hospital

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bedboard/bedboard/internal/platform/apperr"
	"github.com/bedboard/bedboard/internal/platform/db"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func (r *repoPG) conn(ctx context.Context) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

// Summaries runs two grouped queries and stitches the ward breakdown onto
// each hospital in Go, avoiding a json_agg round-trip through the driver.
func (r *repoPG) Summaries(ctx context.Context) ([]*Summary, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT h.id, h.name, h.location, h.lat, h.lng,
		       COUNT(b.bed_id) AS total_capacity,
		       COUNT(b.bed_id) FILTER (WHERE b.current_status = 'AVAILABLE') AS available_beds
		FROM hospitals h
		LEFT JOIN beds b ON h.id = b.hospital_id
		GROUP BY h.id
		ORDER BY h.name ASC`)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "hospital summaries", err)
	}
	defer rows.Close()

	var (
		out  []*Summary
		byID = make(map[int]*Summary)
	)
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.Name, &s.Location, &s.Lat, &s.Lng,
			&s.TotalCapacity, &s.AvailableBeds); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "scan hospital summary", err)
		}
		s.Wards = []WardAvailability{}
		out = append(out, &s)
		byID[s.ID] = &s
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "hospital summaries", err)
	}

	wardRows, err := r.conn(ctx).Query(ctx, `
		SELECT hospital_id, ward_name,
		       COUNT(bed_id) FILTER (WHERE current_status = 'AVAILABLE') AS available_beds,
		       COUNT(bed_id) AS total_beds
		FROM beds
		WHERE hospital_id IS NOT NULL
		GROUP BY hospital_id, ward_name`)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "ward breakdown", err)
	}
	defer wardRows.Close()

	for wardRows.Next() {
		var (
			hospitalID int
			w          WardAvailability
		)
		if err := wardRows.Scan(&hospitalID, &w.WardName, &w.AvailableBeds, &w.TotalBeds); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "scan ward breakdown", err)
		}
		if s, ok := byID[hospitalID]; ok {
			s.Wards = append(s.Wards, w)
		}
	}
	return out, wardRows.Err()
}

func (r *repoPG) WardAvailability(ctx context.Context, hospitalID int) ([]*WardAvailability, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT ward_name,
		       COUNT(*) FILTER (WHERE current_status = 'AVAILABLE') AS available_beds,
		       COUNT(*) AS total_beds
		FROM beds
		WHERE hospital_id = $1
		GROUP BY ward_name`,
		hospitalID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "ward availability", err)
	}
	defer rows.Close()

	var out []*WardAvailability
	for rows.Next() {
		var w WardAvailability
		if err := rows.Scan(&w.WardName, &w.AvailableBeds, &w.TotalBeds); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "scan ward availability", err)
		}
		out = append(out, &w)
	}
	return out, rows.Err()
}

func (r *repoPG) Counts(ctx context.Context) ([]*BedCounts, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT h.name,
		       COUNT(b.bed_id) AS total,
		       COUNT(b.bed_id) FILTER (WHERE b.current_status = 'AVAILABLE') AS available
		FROM hospitals h
		LEFT JOIN beds b ON h.id = b.hospital_id
		GROUP BY h.id
		ORDER BY h.name`)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "bed counts", err)
	}
	defer rows.Close()

	var out []*BedCounts
	for rows.Next() {
		var c BedCounts
		if err := rows.Scan(&c.Name, &c.Total, &c.Available); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "scan bed counts", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
