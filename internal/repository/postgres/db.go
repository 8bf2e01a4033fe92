package postgres

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/BizSuite_BackEnd/internal/repository/ports"
)

func New(dsn string) (*sqlx.DB, error) {
	return sqlx.Connect("pgx", dsn)
}

// NewStore wires every tenant-scoped repository the import pipeline needs.
func NewStore(db *sqlx.DB) ports.Store {
	return ports.Store{
		Clients:      NewClientRepo(db),
		Services:     NewServiceRepo(db),
		Products:     NewProductRepo(db),
		Appointments: NewAppointmentRepo(db),
		Formations:   NewFormationRepo(db),
		GiftCards:    NewGiftCardRepo(db),
		Packages:     NewPackageRepo(db),
		PromoCodes:   NewPromoCodeRepo(db),
		Reviews:      NewReviewRepo(db),
		Newsletter:   NewNewsletterRepo(db),
		Users:        NewUserRepo(db),
	}
}

// insertReturning runs a named INSERT ... RETURNING and scans the single
// returned row into T.
func insertReturning[T any](ctx context.Context, db *sqlx.DB, query string, arg any) (*T, error) {
	rows, err := db.NamedQueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		var stored T
		if err := rows.StructScan(&stored); err != nil {
			return nil, err
		}
		return &stored, nil
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return nil, sql.ErrNoRows
}

func getOne[T any](ctx context.Context, db *sqlx.DB, query string, args ...any) (*T, error) {
	var out T
	if err := db.GetContext(ctx, &out, query, args...); err != nil {
		return nil, err
	}
	return &out, nil
}
