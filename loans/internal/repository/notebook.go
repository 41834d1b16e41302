package repository

import (
	"context"
	"time"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/errs"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var notebookColumns = []string{
	"id", "asset_tag", "model", "serial_number", "holder", "state", "notes", "created_at", "updated_at",
}

var NotebookSortFields = map[string]string{
	"assetTag":  "asset_tag",
	"model":     "model",
	"state":     "state",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

func (r *repository) ListNotebooks(ctx context.Context, q model.NotebookQuery) ([]model.Notebook, error) {
	b := qb.Select(notebookColumns...).
		From(notebooksTableName).
		OrderBy(orderBy(q.Sort, NotebookSortFields, "asset_tag ASC"))
	if q.State != nil {
		b = b.Where(sq.Eq{"state": *q.State})
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListNotebooks", zap.String("query", query), zap.Any("args", args))

	notebooks := make([]model.Notebook, 0)
	if err := r.db.SelectContext(ctx, &notebooks, query, args...); err != nil {
		return nil, translate(err)
	}
	return notebooks, nil
}

func (r *repository) GetNotebook(ctx context.Context, id string) (model.Notebook, error) {
	query, args, err := qb.Select(notebookColumns...).
		From(notebooksTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Notebook{}, err
	}

	var n model.Notebook
	if err := r.db.GetContext(ctx, &n, query, args...); err != nil {
		return model.Notebook{}, translate(err)
	}
	return n, nil
}

func (r *repository) CreateNotebook(ctx context.Context, n model.Notebook) (model.Notebook, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	n.CreatedAt, n.UpdatedAt = now, now

	query, args, err := qb.Insert(notebooksTableName).
		Columns(notebookColumns...).
		Values(n.ID, n.AssetTag, n.Model, n.SerialNumber, n.Holder, n.State, n.Notes, n.CreatedAt, n.UpdatedAt).
		ToSql()
	if err != nil {
		return model.Notebook{}, err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.log.Error("CreateNotebook", zap.String("assetTag", n.AssetTag), zap.Error(err))
		return model.Notebook{}, translate(err)
	}
	return n, nil
}

func (r *repository) UpdateNotebook(ctx context.Context, n model.Notebook) (model.Notebook, error) {
	n.UpdatedAt = time.Now().UTC()
	query, args, err := qb.Update(notebooksTableName).
		SetMap(map[string]interface{}{
			"asset_tag":     n.AssetTag,
			"model":         n.Model,
			"serial_number": n.SerialNumber,
			"holder":        n.Holder,
			"state":         n.State,
			"notes":         n.Notes,
			"updated_at":    n.UpdatedAt,
		}).
		Where(sq.Eq{"id": n.ID}).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return model.Notebook{}, err
	}
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&n.CreatedAt); err != nil {
		return model.Notebook{}, translate(err)
	}
	return n, nil
}

func (r *repository) SetNotebookState(ctx context.Context, id string, state model.NotebookState, holder string) error {
	query, args, err := qb.Update(notebooksTableName).
		Set("state", state).
		Set("holder", holder).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Error("SetNotebookState", zap.String("id", id), zap.String("state", string(state)), zap.Error(err))
		return translate(err)
	}
	return affected(res)
}

func (r *repository) ClaimNotebook(ctx context.Context, id, holder string) error {
	query, args, err := qb.Update(notebooksTableName).
		Set("state", model.StateLoaned).
		Set("holder", holder).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id, "state": model.StateAvailable}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Error("ClaimNotebook", zap.String("id", id), zap.Error(err))
		return translate(err)
	}
	if err := affected(res); !errors.Is(err, errs.ErrNotFound) {
		return err
	}
	n, err := r.GetNotebook(ctx, id)
	if err != nil {
		return err
	}
	return errors.Wrapf(errs.ErrNotebookUnavailable, "notebook %s is %s", n.AssetTag, n.State)
}

func (r *repository) DeleteNotebook(ctx context.Context, id string) error {
	query, args, err := qb.Delete(notebooksTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return translate(err)
	}
	return affected(res)
}
