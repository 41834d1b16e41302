package filter

import (
	"sort"
	"strings"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/errs"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
)

type Tab string

const (
	TabAll      Tab = "all"
	TabActive   Tab = "active"
	TabReturned Tab = "returned"
)

func ParseTab(s string) (Tab, error) {
	switch t := Tab(strings.ToLower(s)); t {
	case "":
		return TabAll, nil
	case TabAll, TabActive, TabReturned:
		return t, nil
	}
	return "", errs.Validation("tab", "unknown tab "+s)
}

type LoanCriteria struct {
	Tab        Tab
	Status     *model.LoanStatus
	Department string
	Search     string
}

func loanFields(l model.Loan) []string {
	fields := make([]string, 0, len(l.Notebooks)+2)
	fields = append(fields, l.RequesterName, l.Department)
	return append(fields, l.AssetTags()...)
}

func Loans(loans []model.Loan, c LoanCriteria) []model.Loan {
	var tab Predicate[model.Loan]
	switch c.Tab {
	case TabActive:
		tab = func(l model.Loan) bool { return l.Status == model.StatusActive }
	case TabReturned:
		tab = func(l model.Loan) bool { return l.Status == model.StatusReturned }
	case TabAll, "":
	}
	var dept Predicate[model.Loan]
	if d := strings.TrimSpace(c.Department); d != "" {
		dept = func(l model.Loan) bool { return strings.EqualFold(l.Department, d) }
	}
	return Apply(loans,
		tab,
		Equal(func(l model.Loan) model.LoanStatus { return l.Status }, c.Status),
		dept,
		Contains(loanFields, c.Search),
	)
}

type NotebookCriteria struct {
	State  *model.NotebookState
	Search string
}

func notebookFields(n model.Notebook) []string {
	return []string{n.AssetTag, n.Model, n.SerialNumber, n.Holder}
}

func Notebooks(notebooks []model.Notebook, c NotebookCriteria) []model.Notebook {
	return Apply(notebooks,
		Equal(func(n model.Notebook) model.NotebookState { return n.State }, c.State),
		Contains(notebookFields, c.Search),
	)
}

type UserCriteria struct {
	Role   *model.Role
	Search string
}

func userFields(u model.User) []string {
	return []string{u.Name, u.Email}
}

func Users(users []model.User, c UserCriteria) []model.User {
	return Apply(users,
		Equal(func(u model.User) model.Role { return u.Role }, c.Role),
		Contains(userFields, c.Search),
	)
}

// Departments lists the distinct non-empty departments of loans, sorted.
func Departments(loans []model.Loan) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, l := range loans {
		d := strings.TrimSpace(l.Department)
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
