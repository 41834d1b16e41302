package service

import (
	"context"
	"fmt"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/errs"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/repository"
	"github.com/Astemirdum/notebook-loan-service/pkg/kafka"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// NotebookStep sets one notebook's state and holder on behalf of a loan
// operation. It is also the reconcile message body.
type NotebookStep struct {
	LoanID     string              `json:"loanId"`
	Op         string              `json:"op"`
	NotebookID string              `json:"notebookId"`
	AssetTag   string              `json:"assetTag"`
	State      model.NotebookState `json:"state"`
	Holder     string              `json:"holder"`
	// Claim takes the notebook only if it is still AVAILABLE.
	Claim bool `json:"claim,omitempty"`
}

func (st NotebookStep) Name() string {
	tag := st.AssetTag
	if tag == "" {
		tag = st.NotebookID
	}
	return fmt.Sprintf("set notebook %s %s", tag, st.State)
}

const (
	opCreate = "create loan"
	opUpdate = "update loan"
	opReturn = "return loan"
	opDelete = "delete loan"
)

// runSteps applies every notebook step after the loan write succeeded.
// Failed steps do not stop the rest; they are published for reconciliation
// and reported in a PartialFailureError.
func (s *Service) runSteps(ctx context.Context, op, loanID string, steps []NotebookStep) error {
	completed := []errs.Step{{Name: op}}
	var pending []errs.Step
	for _, st := range steps {
		err := applyStep(ctx, s.repo, st)
		if err == nil {
			completed = append(completed, errs.Step{Name: st.Name(), NotebookID: st.NotebookID})
			continue
		}
		s.log.Error("notebook step failed",
			zap.String("op", op),
			zap.String("loanId", loanID),
			zap.String("step", st.Name()),
			zap.Error(err))
		pending = append(pending, errs.Step{Name: st.Name(), NotebookID: st.NotebookID, Error: err.Error()})
		if errors.Is(err, errs.ErrNotebookUnavailable) {
			// taken by another loan meanwhile, retrying cannot help
			continue
		}
		if pubErr := s.pub.Publish(kafka.ReconcileTopic, st.NotebookID, st); pubErr != nil {
			s.log.Error("publish reconcile step", zap.String("step", st.Name()), zap.Error(pubErr))
		}
	}
	if len(pending) == 0 {
		return nil
	}
	return &errs.PartialFailureError{Op: op, LoanID: loanID, Completed: completed, Pending: pending}
}

func applyStep(ctx context.Context, repo repository.NotebookRepository, st NotebookStep) error {
	if st.Claim {
		return repo.ClaimNotebook(ctx, st.NotebookID, st.Holder)
	}
	return repo.SetNotebookState(ctx, st.NotebookID, st.State, st.Holder)
}

// claim marks steps that take notebooks checked AVAILABLE before the loan write.
func claim(steps []NotebookStep) []NotebookStep {
	for i := range steps {
		steps[i].Claim = true
	}
	return steps
}

func stepsFor(op string, l model.Loan, ids []string, state model.NotebookState, holder string) []NotebookStep {
	tags := make(map[string]string, len(l.Notebooks))
	for _, n := range l.Notebooks {
		tags[n.ID] = n.AssetTag
	}
	steps := make([]NotebookStep, 0, len(ids))
	for _, id := range ids {
		steps = append(steps, NotebookStep{
			LoanID:     l.ID,
			Op:         op,
			NotebookID: id,
			AssetTag:   tags[id],
			State:      state,
			Holder:     holder,
		})
	}
	return steps
}
