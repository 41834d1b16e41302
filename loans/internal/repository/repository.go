package repository

import (
	"context"
	"database/sql"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/errs"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type NotebookRepository interface {
	ListNotebooks(ctx context.Context, q model.NotebookQuery) ([]model.Notebook, error)
	GetNotebook(ctx context.Context, id string) (model.Notebook, error)
	CreateNotebook(ctx context.Context, n model.Notebook) (model.Notebook, error)
	UpdateNotebook(ctx context.Context, n model.Notebook) (model.Notebook, error)
	SetNotebookState(ctx context.Context, id string, state model.NotebookState, holder string) error
	// ClaimNotebook sets an AVAILABLE notebook LOANED to holder in one statement.
	ClaimNotebook(ctx context.Context, id, holder string) error
	DeleteNotebook(ctx context.Context, id string) error
}

type LoanRepository interface {
	ListLoans(ctx context.Context, q model.LoanQuery) ([]model.Loan, error)
	GetLoan(ctx context.Context, id string) (model.Loan, error)
	CreateLoan(ctx context.Context, l model.Loan) (model.Loan, error)
	UpdateLoan(ctx context.Context, l model.Loan) (model.Loan, error)
	DeleteLoan(ctx context.Context, id string) error
}

type UserRepository interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	CreateUser(ctx context.Context, u model.User) (model.User, error)
	UpdateUser(ctx context.Context, u model.User) (model.User, error)
}

type Repository interface {
	NotebookRepository
	LoanRepository
	UserRepository
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) *repository {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}
}

const (
	notebooksTableName     = `notebooks`
	loansTableName         = `loans`
	loanNotebooksTableName = `loan_notebooks`
	usersTableName         = `users`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// translate maps driver errors onto errs sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return errors.Wrap(errs.ErrConflict, pgErr.ConstraintName)
		case pgerrcode.InvalidTextRepresentation:
			// malformed uuid, no row can match
			return errs.ErrNotFound
		}
	}
	return err
}

// orderBy renders s as an ORDER BY clause; columns maps API field names to columns.
func orderBy(s model.Sort, columns map[string]string, def string) string {
	col, ok := columns[s.Field]
	if !ok {
		return def
	}
	if s.Desc {
		return col + " DESC"
	}
	return col + " ASC"
}

func affected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
