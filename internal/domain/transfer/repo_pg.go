package transfer

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

const requestCols = `request_id, patient_name, from_ward, required_specialty, priority, clinical_notes, status, created_at`

func (r *repoPG) scanRow(row pgx.Row, req *Request) error {
	return row.Scan(&req.RequestID, &req.PatientName, &req.FromWard, &req.RequiredSpecialty,
		&req.Priority, &req.ClinicalNotes, &req.Status, &req.CreatedAt)
}

func (r *repoPG) Create(ctx context.Context, req *Request) error {
	row := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO transfer_requests (patient_name, from_ward, required_specialty, priority, clinical_notes, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+requestCols,
		req.PatientName, req.FromWard, req.RequiredSpecialty, req.Priority, req.ClinicalNotes, req.Status)
	if err := r.scanRow(row, req); err != nil {
		return apperr.Wrap(apperr.KindInternal, "create transfer request", err)
	}
	return nil
}

func (r *repoPG) List(ctx context.Context, status string) ([]*Request, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+requestCols+`
		FROM transfer_requests
		WHERE ($1 = '' OR status = $1)
		ORDER BY CASE priority
			WHEN 'Emergency' THEN 1
			WHEN 'High' THEN 2
			WHEN 'Medium' THEN 3
			ELSE 4
		END ASC, created_at DESC`,
		status)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "list transfer requests", err)
	}
	defer rows.Close()

	var out []*Request
	for rows.Next() {
		var req Request
		if err := rows.Scan(&req.RequestID, &req.PatientName, &req.FromWard, &req.RequiredSpecialty,
			&req.Priority, &req.ClinicalNotes, &req.Status, &req.CreatedAt); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "scan transfer request", err)
		}
		out = append(out, &req)
	}
	return out, rows.Err()
}

func (r *repoPG) GetByID(ctx context.Context, requestID int) (*Request, error) {
	var req Request
	err := r.scanRow(r.conn(ctx).QueryRow(ctx,
		`SELECT `+requestCols+` FROM transfer_requests WHERE request_id = $1`, requestID), &req)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.Errorf(apperr.KindNotFound, "transfer request %d not found", requestID)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "get transfer request", err)
	}
	return &req, nil
}

func (r *repoPG) UpdateStatus(ctx context.Context, requestID int, status string) (*Request, error) {
	var req Request
	err := r.scanRow(r.conn(ctx).QueryRow(ctx, `
		UPDATE transfer_requests SET status = $2
		WHERE request_id = $1
		RETURNING `+requestCols,
		requestID, status), &req)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.Errorf(apperr.KindNotFound, "transfer request %d not found", requestID)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "update transfer request", err)
	}
	return &req, nil
}
