package user

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

func (r *repoPG) Create(ctx context.Context, u *User) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO users (username, password_hash, user_role)
		VALUES ($1, $2, $3)
		RETURNING user_id`,
		u.Username, u.PasswordHash, u.Role,
	).Scan(&u.UserID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apperr.E(apperr.KindConflict, "Username is already taken.")
	}
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "create user", err)
	}
	return nil
}

func (r *repoPG) GetByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT user_id, username, password_hash, user_role FROM users WHERE username = $1`,
		username,
	).Scan(&u.UserID, &u.Username, &u.PasswordHash, &u.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.Errorf(apperr.KindNotFound, "user %s not found", username)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "get user", err)
	}
	return &u, nil
}

func (r *repoPG) UpdatePasswordHash(ctx context.Context, username, hash string) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE users SET password_hash = $1 WHERE username = $2`, hash, username)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "update password", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.E(apperr.KindNotFound, "User not found.")
	}
	return nil
}
