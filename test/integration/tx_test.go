package integration

import (
	"context"
	"testing"

	"github.com/bedboard/bedboard/internal/platform/apperr"
	"github.com/bedboard/bedboard/internal/platform/db"
)

func TestRunnerCommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	resetTables(t, ctx)

	runner := db.NewRunner(globalDB.Pool)
	err := runner.RunInTx(ctx, func(ctx context.Context) error {
		tx := db.TxFromContext(ctx)
		if tx == nil {
			t.Fatal("no transaction in context")
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO beds (ward_name, specialty_type) VALUES ('ER', 'General')`)
		return err
	})
	if err != nil {
		t.Fatalf("RunInTx: %v", err)
	}

	var n int
	if err := globalDB.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM beds`).Scan(&n); err != nil {
		t.Fatalf("count beds: %v", err)
	}
	if n != 1 {
		t.Errorf("beds = %d, want 1 committed row", n)
	}
}

func TestRunnerRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	resetTables(t, ctx)

	runner := db.NewRunner(globalDB.Pool)
	boom := apperr.E(apperr.KindConflict, "no room")
	err := runner.RunInTx(ctx, func(ctx context.Context) error {
		tx := db.TxFromContext(ctx)
		if _, err := tx.Exec(ctx,
			`INSERT INTO beds (ward_name, specialty_type) VALUES ('ER', 'General')`); err != nil {
			return err
		}
		return boom
	})
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("RunInTx kind = %v, want the callback's conflict", apperr.KindOf(err))
	}

	var n int
	if err := globalDB.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM beds`).Scan(&n); err != nil {
		t.Fatalf("count beds: %v", err)
	}
	if n != 0 {
		t.Errorf("beds = %d, want 0 after rollback", n)
	}
}
