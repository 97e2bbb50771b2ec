package booking

import (
	"context"
	"database/sql"

	"github.com/Lingges29/mypark/pkg/dbmetrics"
)

// Database interfaces shared with dbmetrics, so the repository works both
// with the plain handle and the measured wrapper
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions (satisfied by *sql.DB and *dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
