package service

import (
	"context"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/errs"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/filter"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
	"github.com/pkg/errors"
)

func (s *Service) ListNotebooks(ctx context.Context, q model.NotebookQuery, search string) ([]model.Notebook, error) {
	notebooks, err := s.repo.ListNotebooks(ctx, q)
	if err != nil {
		return nil, errs.Backend("list notebooks", err)
	}
	return filter.Notebooks(notebooks, filter.NotebookCriteria{Search: search}), nil
}

func (s *Service) GetNotebook(ctx context.Context, id string) (model.Notebook, error) {
	n, err := s.repo.GetNotebook(ctx, id)
	if err != nil {
		return model.Notebook{}, lookupErr("get notebook", err)
	}
	return n, nil
}

// CreateNotebook registers a notebook. LOANED is only reachable through a loan.
func (s *Service) CreateNotebook(ctx context.Context, req model.NotebookRequest) (model.Notebook, error) {
	state := req.State
	if state == "" {
		state = model.StateAvailable
	}
	if state == model.StateLoaned {
		return model.Notebook{}, errs.Validation("state", "a notebook becomes LOANED through a loan")
	}
	n, err := s.repo.CreateNotebook(ctx, model.Notebook{
		AssetTag:     req.AssetTag,
		Model:        req.Model,
		SerialNumber: req.SerialNumber,
		State:        state,
		Notes:        req.Notes,
	})
	if err != nil {
		return model.Notebook{}, conflictErr("create notebook", err)
	}
	return n, nil
}

// UpdateNotebook edits metadata. Moving into or out of LOANED is left to loans.
func (s *Service) UpdateNotebook(ctx context.Context, id string, req model.NotebookRequest) (model.Notebook, error) {
	old, err := s.repo.GetNotebook(ctx, id)
	if err != nil {
		return model.Notebook{}, lookupErr("get notebook", err)
	}
	state := req.State
	if state == "" {
		state = old.State
	}
	if state != old.State && (state == model.StateLoaned || old.State == model.StateLoaned) {
		return model.Notebook{}, errors.Wrapf(errs.ErrInvalidTransition, "notebook %s %s -> %s", old.AssetTag, old.State, state)
	}
	upd := old
	upd.AssetTag = req.AssetTag
	upd.Model = req.Model
	upd.SerialNumber = req.SerialNumber
	upd.State = state
	upd.Notes = req.Notes

	n, err := s.repo.UpdateNotebook(ctx, upd)
	if err != nil {
		return model.Notebook{}, conflictErr("update notebook", err)
	}
	return n, nil
}

func (s *Service) DeleteNotebook(ctx context.Context, id string) error {
	n, err := s.repo.GetNotebook(ctx, id)
	if err != nil {
		return lookupErr("get notebook", err)
	}
	if n.State == model.StateLoaned {
		return errors.Wrapf(errs.ErrConflict, "notebook %s is on loan to %s", n.AssetTag, n.Holder)
	}
	if err := s.repo.DeleteNotebook(ctx, id); err != nil {
		return lookupErr("delete notebook", err)
	}
	return nil
}

func conflictErr(op string, err error) error {
	if errors.Is(err, errs.ErrConflict) || errors.Is(err, errs.ErrNotFound) {
		return errors.Wrap(err, op)
	}
	return errs.Backend(op, err)
}
