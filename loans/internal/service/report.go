package service

import (
	"context"
	"strings"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/errs"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/filter"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/report"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// snapshot loads notebooks and loans concurrently; either failure fails both.
func (s *Service) snapshot(ctx context.Context, lq model.LoanQuery) ([]model.Notebook, []model.Loan, error) {
	var (
		notebooks []model.Notebook
		loans     []model.Loan
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		notebooks, err = s.repo.ListNotebooks(gctx, model.NotebookQuery{})
		return errs.Backend("list notebooks", err)
	})
	g.Go(func() error {
		var err error
		loans, err = s.repo.ListLoans(gctx, lq)
		return errs.Backend("list loans", err)
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return notebooks, loans, nil
}

// Report returns the rows of a report view. assetTag selects the notebook of
// the history view.
func (s *Service) Report(ctx context.Context, view report.View, assetTag string) (any, error) {
	if view == report.ViewHistory && strings.TrimSpace(assetTag) == "" {
		return nil, errs.Validation("assetTag", "select a notebook")
	}
	notebooks, loans, err := s.snapshot(ctx, model.LoanQuery{})
	if err != nil {
		return nil, err
	}
	now := s.now()
	switch view {
	case report.ViewAvailable:
		return report.Available(notebooks), nil
	case report.ViewLoaned:
		return report.Loaned(loans, report.Index(notebooks)), nil
	case report.ViewOverdue:
		return report.Overdue(loans, now), nil
	case report.ViewHistory:
		for _, n := range notebooks {
			if strings.EqualFold(n.AssetTag, assetTag) {
				return report.History(loans, n), nil
			}
		}
		return nil, errors.Wrapf(errs.ErrNotFound, "notebook %s", assetTag)
	}
	return nil, errs.Validation("view", "unknown report "+string(view))
}

// ExportReport builds the export table of view; an empty view is ErrNothingToExport.
func (s *Service) ExportReport(ctx context.Context, view report.View) (*report.Table, error) {
	if !view.Exportable() {
		return nil, errs.Validation("view", "report "+string(view)+" cannot be exported")
	}
	notebooks, loans, err := s.snapshot(ctx, model.LoanQuery{})
	if err != nil {
		return nil, err
	}
	t, err := report.ExportTable(view, notebooks, loans, s.now())
	if err != nil {
		return nil, err
	}
	if t.Len() == 0 {
		return nil, errs.ErrNothingToExport
	}
	return t, nil
}

func (s *Service) Dashboard(ctx context.Context) (report.Dashboard, error) {
	notebooks, loans, err := s.snapshot(ctx, model.LoanQuery{Sort: model.Sort{Field: "createdAt", Desc: true}})
	if err != nil {
		return report.Dashboard{}, err
	}
	return report.NewDashboard(notebooks, loans, s.now()), nil
}

type ReturnList struct {
	Items []report.ActiveReturn `json:"items"`
	Stats report.ReturnStats    `json:"stats"`
}

// Returns lists the active loans awaiting return with their classification.
func (s *Service) Returns(ctx context.Context, search string) (ReturnList, error) {
	loans, err := s.repo.ListLoans(ctx, model.LoanQuery{Sort: model.Sort{Field: "dueDate"}})
	if err != nil {
		return ReturnList{}, errs.Backend("list loans", err)
	}
	now := s.now()
	active := filter.Loans(loans, filter.LoanCriteria{Tab: filter.TabActive, Search: search})
	return ReturnList{
		Items: report.ActiveReturns(active, now),
		Stats: report.NewReturnStats(loans, now),
	}, nil
}
