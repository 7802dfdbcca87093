package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"tuition.app/billing/repository/billingrecords"
	"tuition.app/billing/repository/catalog"
	"tuition.app/billing/repository/schools"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// Repository combines all domain-specific repositories
type Repository struct {
	BillingRecords billingrecords.Querier
	Catalog        catalog.Querier
	Schools        schools.Querier
}

// NewRepository creates a new Repository with all domain queriers bound to db
func NewRepository(db DBTX) *Repository {
	return &Repository{
		BillingRecords: billingrecords.New(db),
		Catalog:        catalog.New(db),
		Schools:        schools.New(db),
	}
}
