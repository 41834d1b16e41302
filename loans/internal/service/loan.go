package service

import (
	"context"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/errs"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/filter"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/report"
	"github.com/pkg/errors"
)

type LoanList struct {
	Items []model.Loan     `json:"items"`
	Stats report.LoanStats `json:"stats"`
}

func (s *Service) ListLoans(ctx context.Context, q model.LoanQuery, c filter.LoanCriteria) (LoanList, error) {
	loans, err := s.repo.ListLoans(ctx, q)
	if err != nil {
		return LoanList{}, errs.Backend("list loans", err)
	}
	return LoanList{
		Items: filter.Loans(loans, c),
		Stats: report.NewLoanStats(loans),
	}, nil
}

func (s *Service) ListDepartments(ctx context.Context) ([]string, error) {
	loans, err := s.repo.ListLoans(ctx, model.LoanQuery{})
	if err != nil {
		return nil, errs.Backend("list loans", err)
	}
	return filter.Departments(loans), nil
}

func (s *Service) GetLoan(ctx context.Context, id string) (model.Loan, error) {
	l, err := s.repo.GetLoan(ctx, id)
	if err != nil {
		return model.Loan{}, lookupErr("get loan", err)
	}
	return l, nil
}

// lookupErr keeps ErrNotFound as is and wraps everything else as a backend failure.
func lookupErr(op string, err error) error {
	if errors.Is(err, errs.ErrNotFound) {
		return errors.Wrap(err, op)
	}
	return errs.Backend(op, err)
}

// availableNotebook returns the stored notebook if it can join a loan.
func (s *Service) availableNotebook(ctx context.Context, id string) (model.Notebook, error) {
	n, err := s.repo.GetNotebook(ctx, id)
	if errors.Is(err, errs.ErrNotFound) {
		return model.Notebook{}, errors.Wrapf(errs.ErrNotebookUnavailable, "notebook %s does not exist", id)
	}
	if err != nil {
		return model.Notebook{}, errs.Backend("get notebook", err)
	}
	if n.State != model.StateAvailable {
		return model.Notebook{}, errors.Wrapf(errs.ErrNotebookUnavailable, "notebook %s is %s", n.AssetTag, n.State)
	}
	return n, nil
}

// CreateLoan writes an ACTIVE loan and marks every referenced notebook LOANED
// to the requester. technician is the display name of the current user.
func (s *Service) CreateLoan(ctx context.Context, technician string, req model.LoanRequest) (model.Loan, error) {
	if err := req.Check(); err != nil {
		return model.Loan{}, err
	}
	refs := make([]model.NotebookRef, 0, len(req.NotebookIDs))
	for _, id := range req.NotebookIDs {
		n, err := s.availableNotebook(ctx, id)
		if err != nil {
			return model.Loan{}, err
		}
		refs = append(refs, model.RefOf(n))
	}

	loan, err := s.repo.CreateLoan(ctx, model.Loan{
		Notebooks:        refs,
		Kind:             req.Kind,
		RequesterName:    req.RequesterName,
		Department:       req.Department,
		EventDescription: req.EventDescription,
		PickupDate:       req.PickupDate,
		DueDate:          req.DueDate,
		Technician:       technician,
		Status:           model.StatusActive,
	})
	if err != nil {
		return model.Loan{}, errs.Backend(opCreate, err)
	}
	s.publishEvent(EventLoanCreated, loan)

	steps := claim(stepsFor(opCreate, loan, loan.NotebookIDs(), model.StateLoaned, loan.RequesterName))
	if err := s.runSteps(ctx, opCreate, loan.ID, steps); err != nil {
		return loan, err
	}
	return loan, nil
}

// UpdateLoan edits an existing loan. Notebook drift is reconciled by diffing the
// stored and requested notebook sets. Status and return fields are kept.
func (s *Service) UpdateLoan(ctx context.Context, id string, req model.LoanRequest) (model.Loan, error) {
	if err := req.Check(); err != nil {
		return model.Loan{}, err
	}
	old, err := s.repo.GetLoan(ctx, id)
	if err != nil {
		return model.Loan{}, lookupErr("get loan", err)
	}

	oldIDs := old.NotebookIDs()
	added, removed, kept := diff(oldIDs, req.NotebookIDs)
	if !old.Active() && (len(added) > 0 || len(removed) > 0) {
		return model.Loan{}, errors.Wrap(errs.ErrInvalidTransition, "notebooks of a returned loan cannot change")
	}

	known := make(map[string]model.NotebookRef, len(old.Notebooks))
	for _, ref := range old.Notebooks {
		known[ref.ID] = ref
	}
	isAdded := make(map[string]bool, len(added))
	for _, a := range added {
		isAdded[a] = true
	}
	refs := make([]model.NotebookRef, 0, len(req.NotebookIDs))
	for _, nid := range req.NotebookIDs {
		if ref, ok := known[nid]; ok {
			refs = append(refs, ref)
			continue
		}
		if isAdded[nid] {
			n, err := s.availableNotebook(ctx, nid)
			if err != nil {
				return model.Loan{}, err
			}
			refs = append(refs, model.RefOf(n))
			continue
		}
		// kept legacy reference without a snapshot
		ref := model.NotebookRef{ID: nid}
		if n, err := s.repo.GetNotebook(ctx, nid); err == nil {
			ref = model.RefOf(n)
		}
		refs = append(refs, ref)
	}

	upd := old
	upd.Notebooks = refs
	upd.Kind = req.Kind
	upd.RequesterName = req.RequesterName
	upd.Department = req.Department
	upd.EventDescription = req.EventDescription
	upd.PickupDate = req.PickupDate
	upd.DueDate = req.DueDate

	loan, err := s.repo.UpdateLoan(ctx, upd)
	if err != nil {
		return model.Loan{}, lookupErr(opUpdate, err)
	}
	if !loan.Active() {
		return loan, nil
	}

	steps := stepsFor(opUpdate, old, removed, model.StateAvailable, "")
	steps = append(steps, stepsFor(opUpdate, loan, kept, model.StateLoaned, loan.RequesterName)...)
	steps = append(steps, claim(stepsFor(opUpdate, loan, added, model.StateLoaned, loan.RequesterName))...)
	if err := s.runSteps(ctx, opUpdate, loan.ID, steps); err != nil {
		return loan, err
	}
	return loan, nil
}

// ReturnLoan closes an ACTIVE loan and releases its notebooks.
func (s *Service) ReturnLoan(ctx context.Context, id string, req model.ReturnRequest) (model.Loan, error) {
	if err := req.Check(); err != nil {
		return model.Loan{}, err
	}
	old, err := s.repo.GetLoan(ctx, id)
	if err != nil {
		return model.Loan{}, lookupErr("get loan", err)
	}
	if !old.Active() {
		return model.Loan{}, errors.Wrapf(errs.ErrInvalidTransition, "loan %s is %s", old.ID, old.Status)
	}

	upd := old
	upd.Status = model.StatusReturned
	upd.ReturnDate = req.ReturnDate
	upd.ReturnCondition = req.Condition
	upd.ReturnNotes = req.Notes
	upd.TermURL = req.TermURL

	loan, err := s.repo.UpdateLoan(ctx, upd)
	if err != nil {
		return model.Loan{}, lookupErr(opReturn, err)
	}
	s.publishEvent(EventLoanReturned, loan)

	steps := stepsFor(opReturn, loan, loan.NotebookIDs(), req.Condition.NotebookState(), "")
	if err := s.runSteps(ctx, opReturn, loan.ID, steps); err != nil {
		return loan, err
	}
	return loan, nil
}

// DeleteLoan removes the loan; an ACTIVE loan releases its notebooks first.
func (s *Service) DeleteLoan(ctx context.Context, id string) error {
	old, err := s.repo.GetLoan(ctx, id)
	if err != nil {
		return lookupErr("get loan", err)
	}
	if err := s.repo.DeleteLoan(ctx, id); err != nil {
		return lookupErr(opDelete, err)
	}
	s.publishEvent(EventLoanDeleted, old)
	if !old.Active() {
		return nil
	}
	steps := stepsFor(opDelete, old, old.NotebookIDs(), model.StateAvailable, "")
	return s.runSteps(ctx, opDelete, old.ID, steps)
}

// diff splits the notebook ids into added and removed relative to old, and kept
// in the order of next.
func diff(old, next []string) (added, removed, kept []string) {
	inOld := make(map[string]bool, len(old))
	for _, id := range old {
		inOld[id] = true
	}
	inNext := make(map[string]bool, len(next))
	for _, id := range next {
		inNext[id] = true
		if inOld[id] {
			kept = append(kept, id)
		} else {
			added = append(added, id)
		}
	}
	for _, id := range old {
		if !inNext[id] {
			removed = append(removed, id)
		}
	}
	return added, removed, kept
}
