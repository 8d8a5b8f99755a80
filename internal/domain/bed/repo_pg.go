package bed

import (
	"context"
	"errors"

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

const bedCols = `bed_id, hospital_id, ward_name, specialty_type, current_status, last_updated_at`

func (r *repoPG) Create(ctx context.Context, b *Bed) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO beds (hospital_id, ward_name, specialty_type, current_status)
		VALUES ($1, $2, $3, $4)
		RETURNING `+bedCols,
		b.HospitalID, b.WardName, b.SpecialtyType, b.CurrentStatus,
	).Scan(&b.BedID, &b.HospitalID, &b.WardName, &b.SpecialtyType, &b.CurrentStatus, &b.LastUpdatedAt)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "create bed", err)
	}
	return nil
}

func (r *repoPG) List(ctx context.Context, specialty string) ([]*Bed, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT b.bed_id, b.hospital_id, b.ward_name, b.specialty_type, b.current_status,
		       b.last_updated_at, a.patient_name
		FROM beds b
		LEFT JOIN admissions a ON b.bed_id = a.bed_id AND a.discharged_at IS NULL
		WHERE ($1 = '' OR $1 = 'All' OR b.specialty_type = $1)
		ORDER BY b.bed_id ASC`,
		specialty)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "list beds", err)
	}
	defer rows.Close()

	var beds []*Bed
	for rows.Next() {
		var b Bed
		if err := rows.Scan(&b.BedID, &b.HospitalID, &b.WardName, &b.SpecialtyType,
			&b.CurrentStatus, &b.LastUpdatedAt, &b.PatientName); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "scan bed", err)
		}
		beds = append(beds, &b)
	}
	return beds, rows.Err()
}

func (r *repoPG) UpdateStatus(ctx context.Context, bedID int, status string) (*Bed, error) {
	var b Bed
	err := r.conn(ctx).QueryRow(ctx, `
		UPDATE beds SET current_status = $2, last_updated_at = NOW()
		WHERE bed_id = $1
		RETURNING `+bedCols,
		bedID, status,
	).Scan(&b.BedID, &b.HospitalID, &b.WardName, &b.SpecialtyType, &b.CurrentStatus, &b.LastUpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.Errorf(apperr.KindNotFound, "bed %d not found", bedID)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "update bed status", err)
	}
	return &b, nil
}

func (r *repoPG) Delete(ctx context.Context, bedID int) error {
	if _, err := r.conn(ctx).Exec(ctx, `DELETE FROM beds WHERE bed_id = $1`, bedID); err != nil {
		return apperr.Wrap(apperr.KindInternal, "delete bed", err)
	}
	return nil
}
