package report_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/errs"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/report"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	t.Parallel()

	t.Run("empty table writes nothing", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		err := report.Export(&buf, report.NewTable("a", "b"))
		require.ErrorIs(t, err, errs.ErrNothingToExport)
		require.Zero(t, buf.Len())
	})

	t.Run("delimiter inside value stays quoted", func(t *testing.T) {
		t.Parallel()
		tbl := report.NewTable("a", "b")
		tbl.Add(1, "x;y")

		var buf bytes.Buffer
		require.NoError(t, report.Export(&buf, tbl))

		out := buf.String()
		require.True(t, strings.HasPrefix(out, "\uFEFF"))
		lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(out, "\uFEFF"), "\n"), "\n")
		require.Equal(t, []string{"a;b", `"1";"x;y"`}, lines)
	})

	t.Run("embedded quotes doubled", func(t *testing.T) {
		t.Parallel()
		tbl := report.NewTable("notes")
		tbl.Add(`say "hi"`)

		var buf bytes.Buffer
		require.NoError(t, report.Export(&buf, tbl))
		require.Equal(t, "\uFEFFnotes\n\"say \"\"hi\"\"\"\n", buf.String())
	})
}

func TestFormatValue(t *testing.T) {
	t.Parallel()
	d := model.NewDate(2024, time.March, 5)
	require.Equal(t, "05/03/2024", report.FormatValue(d))
	require.Equal(t, "05/03/2024", report.FormatValue(&d))
	require.Equal(t, "", report.FormatValue((*model.Date)(nil)))
	require.Equal(t, "", report.FormatValue(model.Date{}))
	require.Equal(t, "7", report.FormatValue(7))
	require.Equal(t, "LOANED", report.FormatValue(model.StateLoaned))
}

var now = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.Local)

func fixtures() ([]model.Notebook, []model.Loan) {
	notebooks := []model.Notebook{
		{ID: "n1", AssetTag: "PMT-001", Model: "Dell", State: model.StateLoaned},
		{ID: "n2", AssetTag: "PMT-002", Model: "Lenovo", State: model.StateAvailable},
		{ID: "n3", AssetTag: "PMT-003", Model: "HP", State: model.StateLoaned},
		{ID: "n4", AssetTag: "PMT-004", Model: "Acer", State: model.StateMaintenance},
	}
	legacy := "n3"
	loans := []model.Loan{
		{
			ID: "l1", Status: model.StatusActive, RequesterName: "Ana", Department: "Saúde",
			Notebooks:  []model.NotebookRef{{ID: "n1", AssetTag: "PMT-001", Model: "Dell"}},
			PickupDate: model.NewDate(2024, time.March, 1), DueDate: model.NewDate(2024, time.March, 8),
			CreatedAt: now.Add(-3 * time.Hour),
		},
		{
			ID: "l2", Status: model.StatusActive, RequesterName: "Bruno", Department: "Educação",
			LegacyNotebookID: &legacy,
			PickupDate:       model.NewDate(2024, time.March, 5), DueDate: model.NewDate(2024, time.March, 12),
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID: "l3", Status: model.StatusReturned, RequesterName: "Carla", Department: "Saúde",
			Notebooks:  []model.NotebookRef{{ID: "n1", AssetTag: "PMT-001", Model: "Dell"}},
			PickupDate: model.NewDate(2024, time.February, 1), DueDate: model.NewDate(2024, time.February, 3),
			CreatedAt: now.Add(-time.Hour), TermURL: "",
		},
	}
	return notebooks, loans
}

func TestViews(t *testing.T) {
	t.Parallel()
	notebooks, loans := fixtures()
	idx := report.Index(notebooks)

	avail := report.Available(notebooks)
	require.Len(t, avail, 1)
	require.Equal(t, "n2", avail[0].ID)

	loaned := report.Loaned(loans, idx)
	require.Len(t, loaned, 2)
	require.Equal(t, "PMT-001", loaned[0].AssetTag)
	require.Equal(t, "PMT-003", loaned[1].AssetTag)
	require.Equal(t, "HP", loaned[1].Model)

	overdue := report.Overdue(loans, now)
	require.Len(t, overdue, 1)
	require.Equal(t, "l1", overdue[0].ID)
	require.Equal(t, 2, overdue[0].DaysOverdue)

	history := report.History(loans, notebooks[0])
	require.Len(t, history, 2)
	require.Equal(t, "l1", history[0].ID)
	require.Equal(t, "l3", history[1].ID)

	legacyHistory := report.History(loans, notebooks[2])
	require.Len(t, legacyHistory, 1)
	require.Equal(t, "l2", legacyHistory[0].ID)
}

func TestExportTable(t *testing.T) {
	t.Parallel()
	notebooks, loans := fixtures()

	tbl, err := report.ExportTable(report.ViewOverdue, notebooks, loans, now)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"PMT-001", "Ana", "Saúde", "08/03/2024", "2"}}, tbl.Rows)

	tbl, err = report.ExportTable(report.ViewLoaned, notebooks, loans, now)
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())
	require.Equal(t, []string{"PMT-003", "HP", "Bruno", "Educação", "05/03/2024", "12/03/2024"}, tbl.Rows[1])

	_, err = report.ExportTable(report.ViewHistory, notebooks, loans, now)
	require.True(t, errs.IsValidation(err))
	require.False(t, report.ViewHistory.Exportable())
}

func TestStats(t *testing.T) {
	t.Parallel()
	notebooks, loans := fixtures()

	d := report.NewDashboard(notebooks, loans, now)
	require.Equal(t, 4, d.TotalNotebooks)
	require.Equal(t, 1, d.Available)
	require.Equal(t, 2, d.Loaned)
	require.Equal(t, 1, d.Maintenance)
	require.Len(t, d.Overdue, 1)
	require.Equal(t, []string{"l3", "l2", "l1"}, []string{d.Recent[0].ID, d.Recent[1].ID, d.Recent[2].ID})

	require.Equal(t, report.LoanStats{Total: 3, Active: 2, Returned: 1}, report.NewLoanStats(loans))
	require.Equal(t, report.ReturnStats{Active: 2, Overdue: 1, DueSoon: 1, MissingTerm: 2}, report.NewReturnStats(loans, now))
	loans[0].TermURL = "https://files.example/term.pdf"
	require.Equal(t, 1, report.NewReturnStats(loans, now).MissingTerm)

	users := []model.User{{Role: model.RoleAdmin}, {Role: model.RoleTechnician}, {Role: model.RoleTechnician}}
	require.Equal(t, report.UserStats{Total: 3, Admins: 1, Technicians: 2}, report.NewUserStats(users))

	active := report.ActiveReturns(loans, now)
	require.Len(t, active, 2)
	require.Equal(t, "overdue by 2 days", active[0].Label)
	require.Equal(t, "2 days remaining", active[1].Label)
}

func TestRecent_Limit(t *testing.T) {
	t.Parallel()
	loans := make([]model.Loan, 8)
	for i := range loans {
		loans[i] = model.Loan{ID: string(rune('a' + i)), CreatedAt: now.Add(time.Duration(i) * time.Minute)}
	}
	got := report.Recent(loans, report.RecentLimit)
	require.Len(t, got, 5)
	require.Equal(t, "h", got[0].ID)
	require.Equal(t, "a", loans[0].ID)
	require.Empty(t, report.Recent(nil, 5))
}
