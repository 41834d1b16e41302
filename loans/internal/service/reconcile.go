package service

import (
	"context"
	"slices"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/duedate"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/errs"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Reconciler applies notebook steps that a loan operation could not complete.
type Reconciler struct {
	notebooks repository.NotebookRepository
	loans     repository.LoanRepository
	log       *zap.Logger
}

func NewReconciler(notebooks repository.NotebookRepository, loans repository.LoanRepository, log *zap.Logger) *Reconciler {
	return &Reconciler{notebooks: notebooks, loans: loans, log: log.Named("reconciler")}
}

// Apply is idempotent. Steps overtaken by later loan actions are dropped:
// a LOANED step needs its loan ACTIVE, still listing the notebook, and no
// other active loan holding it; a release step needs no active loan holding it.
func (r *Reconciler) Apply(ctx context.Context, st NotebookStep) error {
	if st.NotebookID == "" || !st.State.Valid() {
		return errs.Validation("step", "malformed reconcile step")
	}
	holders, err := r.activeHolders(ctx, st.NotebookID)
	if err != nil {
		return err
	}

	holder := ""
	if st.State == model.StateLoaned {
		loan, err := r.loans.GetLoan(ctx, st.LoanID)
		if errors.Is(err, errs.ErrNotFound) {
			return r.drop(st, "loan gone")
		}
		if err != nil {
			return errs.Backend("get loan", err)
		}
		if !loan.Active() {
			return r.drop(st, "loan "+string(loan.Status))
		}
		if !slices.Contains(loan.NotebookIDs(), st.NotebookID) {
			return r.drop(st, "notebook no longer on the loan")
		}
		for _, id := range holders {
			if id != loan.ID {
				return r.drop(st, "notebook held by loan "+id)
			}
		}
		holder = loan.RequesterName
	} else if len(holders) > 0 {
		return r.drop(st, "notebook held by loan "+holders[0])
	}

	err = r.notebooks.SetNotebookState(ctx, st.NotebookID, st.State, holder)
	if errors.Is(err, errs.ErrNotFound) {
		return r.drop(st, "notebook gone")
	}
	if err != nil {
		return errs.Backend("reconcile "+st.Name(), err)
	}
	r.log.Info("step reconciled", zap.String("step", st.Name()), zap.String("loanId", st.LoanID))
	return nil
}

func (r *Reconciler) drop(st NotebookStep, reason string) error {
	r.log.Warn("stale step dropped", zap.String("step", st.Name()), zap.String("loanId", st.LoanID), zap.String("reason", reason))
	return nil
}

// activeHolders lists the ids of active loans referencing the notebook.
func (r *Reconciler) activeHolders(ctx context.Context, notebookID string) ([]string, error) {
	status := model.StatusActive
	loans, err := r.loans.ListLoans(ctx, model.LoanQuery{Status: &status})
	if err != nil {
		return nil, errs.Backend("list loans", err)
	}
	var ids []string
	for _, l := range loans {
		if slices.Contains(l.NotebookIDs(), notebookID) {
			ids = append(ids, l.ID)
		}
	}
	return ids, nil
}

// ScanOverdue publishes a loan.overdue event for every overdue active loan.
func (s *Service) ScanOverdue(ctx context.Context) (int, error) {
	status := model.StatusActive
	loans, err := s.repo.ListLoans(ctx, model.LoanQuery{Status: &status})
	if err != nil {
		return 0, errs.Backend("list loans", err)
	}
	now := s.now()
	n := 0
	for _, l := range loans {
		c, ok := duedate.ClassifyLoan(l, now)
		if !ok || !c.Overdue() {
			continue
		}
		ev := s.newEvent(EventLoanOverdue, l)
		ev.DaysOverdue = c.Days
		s.send(ev)
		n++
	}
	return n, nil
}
