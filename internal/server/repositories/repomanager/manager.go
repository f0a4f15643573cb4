package repomanager

import (
	"context"
	"database/sql"

	"github.com/resumecore/api/internal/dbx"
	"github.com/resumecore/api/internal/server/repositories/payments"
	"github.com/resumecore/api/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a database
// handle (either *sql.DB or a transaction) and exposes a schema migration
// hook.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Payments(db dbx.DBTX) payments.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
