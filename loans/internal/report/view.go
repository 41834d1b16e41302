// Package report builds the fixed report views, their export tables and page statistics.
package report

import (
	"sort"
	"strings"
	"time"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/duedate"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/errs"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/filter"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
)

type View string

const (
	ViewAvailable View = "available"
	ViewLoaned    View = "loaned"
	ViewOverdue   View = "overdue"
	ViewHistory   View = "history"
)

func ParseView(s string) (View, error) {
	switch v := View(s); v {
	case ViewAvailable, ViewLoaned, ViewOverdue, ViewHistory:
		return v, nil
	}
	return "", errs.Validation("view", "unknown report "+s)
}

// Exportable reports whether the view can be exported; history is interactive only.
func (v View) Exportable() bool {
	switch v {
	case ViewAvailable, ViewLoaned, ViewOverdue:
		return true
	case ViewHistory:
		return false
	}
	return false
}

// Refs resolves the notebooks a loan references. Legacy loans carry only an id,
// which is looked up in index for tag and model.
func Refs(l model.Loan, index map[string]model.Notebook) []model.NotebookRef {
	if len(l.Notebooks) > 0 {
		return l.Notebooks
	}
	ids := l.NotebookIDs()
	refs := make([]model.NotebookRef, 0, len(ids))
	for _, id := range ids {
		ref := model.NotebookRef{ID: id}
		if n, ok := index[id]; ok {
			ref = model.RefOf(n)
		}
		refs = append(refs, ref)
	}
	return refs
}

func Index(notebooks []model.Notebook) map[string]model.Notebook {
	idx := make(map[string]model.Notebook, len(notebooks))
	for _, n := range notebooks {
		idx[n.ID] = n
	}
	return idx
}

func Available(notebooks []model.Notebook) []model.Notebook {
	st := model.StateAvailable
	return filter.Notebooks(notebooks, filter.NotebookCriteria{State: &st})
}

type LoanedRow struct {
	LoanID        string     `json:"loanId"`
	NotebookID    string     `json:"notebookId"`
	AssetTag      string     `json:"assetTag"`
	Model         string     `json:"model"`
	RequesterName string     `json:"requesterName"`
	Department    string     `json:"department"`
	PickupDate    model.Date `json:"pickupDate"`
	DueDate       model.Date `json:"dueDate"`
}

// Loaned lists one row per notebook of every active loan.
func Loaned(loans []model.Loan, index map[string]model.Notebook) []LoanedRow {
	rows := make([]LoanedRow, 0, len(loans))
	for _, l := range filter.Loans(loans, filter.LoanCriteria{Tab: filter.TabActive}) {
		for _, ref := range Refs(l, index) {
			rows = append(rows, LoanedRow{
				LoanID:        l.ID,
				NotebookID:    ref.ID,
				AssetTag:      ref.AssetTag,
				Model:         ref.Model,
				RequesterName: l.RequesterName,
				Department:    l.Department,
				PickupDate:    l.PickupDate,
				DueDate:       l.DueDate,
			})
		}
	}
	return rows
}

type OverdueRow struct {
	model.Loan
	DaysOverdue int `json:"daysOverdue"`
}

// Overdue lists active loans past their due date, in source order.
func Overdue(loans []model.Loan, now time.Time) []OverdueRow {
	rows := make([]OverdueRow, 0)
	for _, l := range loans {
		if c, ok := duedate.ClassifyLoan(l, now); ok && c.Overdue() {
			rows = append(rows, OverdueRow{Loan: l, DaysOverdue: c.Days})
		}
	}
	return rows
}

// History lists every loan referencing the notebook, newest pickup first.
func History(loans []model.Loan, notebook model.Notebook) []model.Loan {
	out := filter.Apply(loans, func(l model.Loan) bool {
		if len(l.Notebooks) > 0 {
			return l.References(notebook.AssetTag)
		}
		ids := l.NotebookIDs()
		return len(ids) == 1 && ids[0] == notebook.ID
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PickupDate.After(out[j].PickupDate.Time)
	})
	return out
}

func AvailableTable(notebooks []model.Notebook) *Table {
	t := NewTable("asset_tag", "model", "serial_number", "state", "notes")
	for _, n := range notebooks {
		t.Add(n.AssetTag, n.Model, n.SerialNumber, string(n.State), n.Notes)
	}
	return t
}

func LoanedTable(rows []LoanedRow) *Table {
	t := NewTable("asset_tag", "model", "requester", "department", "pickup_date", "due_date")
	for _, r := range rows {
		t.Add(r.AssetTag, r.Model, r.RequesterName, r.Department, r.PickupDate, r.DueDate)
	}
	return t
}

func OverdueTable(rows []OverdueRow, index map[string]model.Notebook) *Table {
	t := NewTable("asset_tag", "requester", "department", "due_date", "days_overdue")
	for _, r := range rows {
		tags := make([]string, 0, 1)
		for _, ref := range Refs(r.Loan, index) {
			tags = append(tags, ref.AssetTag)
		}
		t.Add(strings.Join(tags, ", "), r.RequesterName, r.Department, r.DueDate, r.DaysOverdue)
	}
	return t
}

// ExportTable builds the export table of an exportable view.
func ExportTable(v View, notebooks []model.Notebook, loans []model.Loan, now time.Time) (*Table, error) {
	idx := Index(notebooks)
	switch v {
	case ViewAvailable:
		return AvailableTable(Available(notebooks)), nil
	case ViewLoaned:
		return LoanedTable(Loaned(loans, idx)), nil
	case ViewOverdue:
		return OverdueTable(Overdue(loans, now), idx), nil
	case ViewHistory:
	}
	return nil, errs.Validation("view", "report "+string(v)+" cannot be exported")
}
