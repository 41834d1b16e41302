package report

import (
	"sort"
	"time"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/duedate"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
)

// RecentLimit is how many loans the dashboard shows as recent activity.
const RecentLimit = 5

type Dashboard struct {
	TotalNotebooks int          `json:"totalNotebooks"`
	Available      int          `json:"available"`
	Loaned         int          `json:"loaned"`
	Maintenance    int          `json:"maintenance"`
	Overdue        []OverdueRow `json:"overdue"`
	Recent         []model.Loan `json:"recent"`
}

func NewDashboard(notebooks []model.Notebook, loans []model.Loan, now time.Time) Dashboard {
	d := Dashboard{TotalNotebooks: len(notebooks)}
	for _, n := range notebooks {
		switch n.State {
		case model.StateAvailable:
			d.Available++
		case model.StateLoaned:
			d.Loaned++
		case model.StateMaintenance:
			d.Maintenance++
		}
	}
	d.Overdue = Overdue(loans, now)
	d.Recent = Recent(loans, RecentLimit)
	return d
}

// Recent returns up to n loans, most recently created first.
func Recent(loans []model.Loan, n int) []model.Loan {
	out := append([]model.Loan(nil), loans...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > n {
		out = out[:n]
	}
	if out == nil {
		out = []model.Loan{}
	}
	return out
}

type LoanStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Returned int `json:"returned"`
}

func NewLoanStats(loans []model.Loan) LoanStats {
	s := LoanStats{Total: len(loans)}
	for _, l := range loans {
		switch l.Status {
		case model.StatusActive:
			s.Active++
		case model.StatusReturned:
			s.Returned++
		}
	}
	return s
}

type ReturnStats struct {
	Active  int `json:"active"`
	Overdue int `json:"overdue"`
	DueSoon int `json:"dueSoon"`
	// MissingTerm counts active loans with no signed term uploaded yet.
	MissingTerm int `json:"missingTerm"`
}

func NewReturnStats(loans []model.Loan, now time.Time) ReturnStats {
	var s ReturnStats
	for _, l := range loans {
		if !l.Active() {
			continue
		}
		s.Active++
		if l.TermURL == "" {
			s.MissingTerm++
		}
		c, _ := duedate.ClassifyLoan(l, now)
		switch c.Level {
		case duedate.Overdue:
			s.Overdue++
		case duedate.DueSoon:
			s.DueSoon++
		case duedate.Current:
		}
	}
	return s
}

type UserStats struct {
	Total       int `json:"total"`
	Admins      int `json:"admins"`
	Technicians int `json:"technicians"`
}

func NewUserStats(users []model.User) UserStats {
	s := UserStats{Total: len(users)}
	for _, u := range users {
		switch u.Role {
		case model.RoleAdmin:
			s.Admins++
		case model.RoleTechnician:
			s.Technicians++
		}
	}
	return s
}

// ActiveReturn is one row of the returns page.
type ActiveReturn struct {
	model.Loan
	Classification duedate.Classification `json:"classification"`
	Label          string                 `json:"label"`
}

func ActiveReturns(loans []model.Loan, now time.Time) []ActiveReturn {
	out := make([]ActiveReturn, 0)
	for _, l := range loans {
		c, ok := duedate.ClassifyLoan(l, now)
		if !ok {
			continue
		}
		out = append(out, ActiveReturn{Loan: l, Classification: c, Label: c.String()})
	}
	return out
}
