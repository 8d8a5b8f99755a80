package admission

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

const admissionCols = `admission_id, bed_id, patient_name, admitted_at, discharged_at`

func (r *repoPG) Open(ctx context.Context, bedID int, patientName string) (*Admission, error) {
	// The NOT EXISTS guard plus the partial unique index on
	// admissions(bed_id) WHERE discharged_at IS NULL keeps a bed at one
	// open stay even under concurrent writers.
	var a Admission
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO admissions (bed_id, patient_name)
		SELECT $1, $2
		WHERE NOT EXISTS (
			SELECT 1 FROM admissions WHERE bed_id = $1 AND discharged_at IS NULL
		)
		RETURNING `+admissionCols,
		bedID, patientName,
	).Scan(&a.AdmissionID, &a.BedID, &a.PatientName, &a.AdmittedAt, &a.DischargedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.Errorf(apperr.KindConflict, "bed %d already has an open admission", bedID)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return nil, apperr.Errorf(apperr.KindConflict, "bed %d already has an open admission", bedID)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "open admission", err)
	}
	return &a, nil
}

func (r *repoPG) CloseOpen(ctx context.Context, bedID int) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE admissions SET discharged_at = NOW()
		WHERE bed_id = $1 AND discharged_at IS NULL`,
		bedID)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "close admission", err)
	}
	return nil
}

func (r *repoPG) Current(ctx context.Context, bedID int) (*Admission, error) {
	var a Admission
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT `+admissionCols+` FROM admissions WHERE bed_id = $1 AND discharged_at IS NULL`,
		bedID,
	).Scan(&a.AdmissionID, &a.BedID, &a.PatientName, &a.AdmittedAt, &a.DischargedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "current admission", err)
	}
	return &a, nil
}

func (r *repoPG) HistoryByBed(ctx context.Context, bedID int) ([]*Admission, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+admissionCols+` FROM admissions WHERE bed_id = $1 ORDER BY admitted_at DESC`,
		bedID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "admission history", err)
	}
	defer rows.Close()

	var out []*Admission
	for rows.Next() {
		var a Admission
		if err := rows.Scan(&a.AdmissionID, &a.BedID, &a.PatientName, &a.AdmittedAt, &a.DischargedAt); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "scan admission", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
