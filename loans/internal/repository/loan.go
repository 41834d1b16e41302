package repository

import (
	"context"
	"time"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var loanColumns = []string{
	"id", "notebook_id", "kind", "requester_name", "department", "event_description",
	"pickup_date", "due_date", "technician", "status",
	"return_date", "return_condition", "return_notes", "term_url", "created_at", "updated_at",
}

var LoanSortFields = map[string]string{
	"createdAt":     "created_at",
	"pickupDate":    "pickup_date",
	"dueDate":       "due_date",
	"requesterName": "requester_name",
	"department":    "department",
}

type loanNotebook struct {
	LoanID string `db:"loan_id"`
	model.NotebookRef
}

func (r *repository) ListLoans(ctx context.Context, q model.LoanQuery) ([]model.Loan, error) {
	b := qb.Select(loanColumns...).
		From(loansTableName).
		OrderBy(orderBy(q.Sort, LoanSortFields, "created_at DESC"))
	if q.Status != nil {
		b = b.Where(sq.Eq{"status": *q.Status})
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListLoans", zap.String("query", query), zap.Any("args", args))

	loans := make([]model.Loan, 0)
	if err := r.db.SelectContext(ctx, &loans, query, args...); err != nil {
		return nil, translate(err)
	}
	if err := r.attachNotebooks(ctx, loans); err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *repository) GetLoan(ctx context.Context, id string) (model.Loan, error) {
	query, args, err := qb.Select(loanColumns...).
		From(loansTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}

	var l model.Loan
	if err := r.db.GetContext(ctx, &l, query, args...); err != nil {
		return model.Loan{}, translate(err)
	}
	loans := []model.Loan{l}
	if err := r.attachNotebooks(ctx, loans); err != nil {
		return model.Loan{}, err
	}
	return loans[0], nil
}

func (r *repository) attachNotebooks(ctx context.Context, loans []model.Loan) error {
	if len(loans) == 0 {
		return nil
	}
	ids := make([]string, 0, len(loans))
	pos := make(map[string]int, len(loans))
	for i, l := range loans {
		ids = append(ids, l.ID)
		pos[l.ID] = i
	}
	query, args, err := qb.Select("loan_id", "notebook_id", "asset_tag", "model").
		From(loanNotebooksTableName).
		Where(sq.Eq{"loan_id": ids}).
		OrderBy("loan_id", "position").
		ToSql()
	if err != nil {
		return err
	}

	var rows []loanNotebook
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return translate(err)
	}
	for _, row := range rows {
		i := pos[row.LoanID]
		loans[i].Notebooks = append(loans[i].Notebooks, row.NotebookRef)
	}
	for i := range loans {
		if loans[i].Notebooks == nil {
			loans[i].Notebooks = []model.NotebookRef{}
		}
	}
	return nil
}

func (r *repository) CreateLoan(ctx context.Context, l model.Loan) (model.Loan, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	l.CreatedAt, l.UpdatedAt = now, now

	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		query, args, err := qb.Insert(loansTableName).
			Columns(loanColumns...).
			Values(l.ID, l.LegacyNotebookID, l.Kind, l.RequesterName, l.Department, l.EventDescription,
				l.PickupDate, l.DueDate, l.Technician, l.Status,
				l.ReturnDate, l.ReturnCondition, l.ReturnNotes, l.TermURL, l.CreatedAt, l.UpdatedAt).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
		return insertNotebookRefs(ctx, tx, l.ID, l.Notebooks)
	})
	if err != nil {
		r.log.Error("CreateLoan", zap.String("requester", l.RequesterName), zap.Error(err))
		return model.Loan{}, translate(err)
	}
	return l, nil
}

func (r *repository) UpdateLoan(ctx context.Context, l model.Loan) (model.Loan, error) {
	l.UpdatedAt = time.Now().UTC()
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		query, args, err := qb.Update(loansTableName).
			SetMap(map[string]interface{}{
				"notebook_id":       l.LegacyNotebookID,
				"kind":              l.Kind,
				"requester_name":    l.RequesterName,
				"department":        l.Department,
				"event_description": l.EventDescription,
				"pickup_date":       l.PickupDate,
				"due_date":          l.DueDate,
				"technician":        l.Technician,
				"status":            l.Status,
				"return_date":       l.ReturnDate,
				"return_condition":  l.ReturnCondition,
				"return_notes":      l.ReturnNotes,
				"term_url":          l.TermURL,
				"updated_at":        l.UpdatedAt,
			}).
			Where(sq.Eq{"id": l.ID}).
			Suffix("RETURNING created_at").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.QueryRowxContext(ctx, query, args...).Scan(&l.CreatedAt); err != nil {
			return err
		}

		query, args, err = qb.Delete(loanNotebooksTableName).Where(sq.Eq{"loan_id": l.ID}).ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
		return insertNotebookRefs(ctx, tx, l.ID, l.Notebooks)
	})
	if err != nil {
		return model.Loan{}, translate(err)
	}
	return l, nil
}

func insertNotebookRefs(ctx context.Context, tx *sqlx.Tx, loanID string, refs []model.NotebookRef) error {
	if len(refs) == 0 {
		return nil
	}
	b := qb.Insert(loanNotebooksTableName).Columns("loan_id", "notebook_id", "asset_tag", "model", "position")
	for i, ref := range refs {
		b = b.Values(loanID, ref.ID, ref.AssetTag, ref.Model, i)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

func (r *repository) DeleteLoan(ctx context.Context, id string) error {
	query, args, err := qb.Delete(loansTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return translate(err)
	}
	return affected(res)
}

func (r *repository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.log.Warn("rollback", zap.Error(rbErr))
		}
		return err
	}
	return tx.Commit()
}
