package repository

import (
	"database/sql"
	"testing"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/errs"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func Test_translate(t *testing.T) {
	t.Parallel()
	require.NoError(t, translate(nil))
	require.ErrorIs(t, translate(errors.Wrap(sql.ErrNoRows, "get")), errs.ErrNotFound)

	unique := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "notebooks_asset_tag_key"}
	err := translate(errors.Wrap(unique, "insert"))
	require.ErrorIs(t, err, errs.ErrConflict)
	require.Contains(t, err.Error(), "notebooks_asset_tag_key")

	badID := &pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation, Message: `invalid input syntax for type uuid: "abc"`}
	require.ErrorIs(t, translate(errors.Wrap(badID, "get loan")), errs.ErrNotFound)

	other := errors.New("boom")
	require.Equal(t, other, translate(other))
}

func Test_orderBy(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		sort model.Sort
		want string
	}{
		{name: "asc", sort: model.Sort{Field: "pickupDate"}, want: "pickup_date ASC"},
		{name: "desc", sort: model.Sort{Field: "dueDate", Desc: true}, want: "due_date DESC"},
		{name: "unknown falls back", sort: model.Sort{Field: "id; drop table"}, want: "created_at DESC"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, orderBy(tt.sort, LoanSortFields, "created_at DESC"))
		})
	}
}

func TestListQueries(t *testing.T) {
	t.Parallel()
	st := model.StateAvailable
	query, args, err := qb.Select(notebookColumns...).
		From(notebooksTableName).
		Where(map[string]interface{}{"state": st}).
		ToSql()
	require.NoError(t, err)
	require.Contains(t, query, "WHERE state = $1")
	require.Equal(t, []interface{}{st}, args)
}
