package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/errs"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/filter"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/report"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/service"
	"github.com/Astemirdum/notebook-loan-service/pkg/auth"
	"github.com/Astemirdum/notebook-loan-service/pkg/kafka"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNotebooks(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	svc := newService(store, &recordingPublisher{})
	ctx := context.Background()

	_, err := svc.CreateNotebook(ctx, model.NotebookRequest{AssetTag: "PMT-1", Model: "Dell", SerialNumber: "S1", State: model.StateLoaned})
	require.True(t, errs.IsValidation(err))

	n, err := svc.CreateNotebook(ctx, model.NotebookRequest{AssetTag: "PMT-1", Model: "Dell", SerialNumber: "S1"})
	require.NoError(t, err)
	require.Equal(t, model.StateAvailable, n.State)

	_, err = svc.CreateNotebook(ctx, model.NotebookRequest{AssetTag: "PMT-1", Model: "HP", SerialNumber: "S2"})
	require.ErrorIs(t, err, errs.ErrConflict)

	n, err = svc.UpdateNotebook(ctx, n.ID, model.NotebookRequest{
		AssetTag: "PMT-1", Model: "Dell Latitude", SerialNumber: "S1", State: model.StateMaintenance,
	})
	require.NoError(t, err)
	require.Equal(t, model.StateMaintenance, n.State)

	_, err = svc.UpdateNotebook(ctx, n.ID, model.NotebookRequest{
		AssetTag: "PMT-1", Model: "Dell", SerialNumber: "S1", State: model.StateLoaned,
	})
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	list, err := svc.ListNotebooks(ctx, model.NotebookQuery{}, "latitude")
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.DeleteNotebook(ctx, n.ID))
	_, err = svc.GetNotebook(ctx, n.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDeleteNotebook_OnLoan(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	svc := newService(store, &recordingPublisher{})
	n := store.addNotebook("PMT-1", model.StateAvailable)
	_, err := svc.CreateLoan(context.Background(), "tech", loanRequest(n.ID))
	require.NoError(t, err)

	require.ErrorIs(t, svc.DeleteNotebook(context.Background(), n.ID), errs.ErrConflict)
	_, err = svc.UpdateNotebook(context.Background(), n.ID, model.NotebookRequest{
		AssetTag: "PMT-1", Model: "m", SerialNumber: "s", State: model.StateAvailable,
	})
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestMe(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	svc := newService(store, &recordingPublisher{})
	ctx := context.Background()
	sess := auth.Session{Profile: auth.Profile{Name: "Ana", Email: "ana@city.gov", Role: "admin"}}

	u, err := svc.Me(ctx, sess)
	require.NoError(t, err)
	require.Equal(t, model.RoleAdmin, u.Role)
	require.NotEmpty(t, u.ID)

	again, err := svc.Me(ctx, sess)
	require.NoError(t, err)
	require.Equal(t, u.ID, again.ID)

	phone := " 555-0100 "
	u, err = svc.UpdateMe(ctx, sess, model.ProfileUpdate{Phone: &phone})
	require.NoError(t, err)
	require.Equal(t, "555-0100", u.Phone)
	require.Equal(t, "ana@city.gov", u.Email)

	other, err := svc.Me(ctx, auth.Session{Profile: auth.Profile{Name: "Bruno", Email: "bruno@city.gov", Role: "guest"}})
	require.NoError(t, err)
	require.Equal(t, model.RoleTechnician, other.Role)

	_, err = svc.Me(ctx, auth.Session{})
	require.ErrorIs(t, err, errs.ErrUnauthenticated)

	users, err := svc.ListUsers(ctx, filter.UserCriteria{Search: "bruno"})
	require.NoError(t, err)
	require.Len(t, users.Items, 1)
	require.Equal(t, report.UserStats{Total: 2, Admins: 1, Technicians: 1}, users.Stats)
}

func TestReports(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	svc := newService(store, &recordingPublisher{})
	ctx := context.Background()

	_, err := svc.ExportReport(ctx, report.ViewLoaned)
	require.ErrorIs(t, err, errs.ErrNothingToExport)

	n1 := store.addNotebook("PMT-001", model.StateAvailable)
	store.addNotebook("PMT-002", model.StateAvailable)
	req := loanRequest(n1.ID)
	req.PickupDate = model.NewDate(2024, time.March, 1)
	req.DueDate = model.NewDate(2024, time.March, 5)
	_, err = svc.CreateLoan(ctx, "tech", req)
	require.NoError(t, err)

	rows, err := svc.Report(ctx, report.ViewOverdue, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	tbl, err := svc.ExportReport(ctx, report.ViewAvailable)
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())

	_, err = svc.ExportReport(ctx, report.ViewHistory)
	require.True(t, errs.IsValidation(err))

	_, err = svc.Report(ctx, report.ViewHistory, "")
	require.True(t, errs.IsValidation(err))
	_, err = svc.Report(ctx, report.ViewHistory, "PMT-999")
	require.ErrorIs(t, err, errs.ErrNotFound)
	history, err := svc.Report(ctx, report.ViewHistory, "pmt-001")
	require.NoError(t, err)
	require.Len(t, history, 1)

	dash, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, dash.TotalNotebooks)
	require.Equal(t, 1, dash.Loaned)
	require.Len(t, dash.Overdue, 1)
	require.Equal(t, 5, dash.Overdue[0].DaysOverdue)

	returns, err := svc.Returns(ctx, "")
	require.NoError(t, err)
	require.Len(t, returns.Items, 1)
	require.Equal(t, "overdue by 5 days", returns.Items[0].Label)
	require.Equal(t, 1, returns.Stats.Overdue)

	store.failList = true
	_, err = svc.Dashboard(ctx)
	var be *errs.BackendError
	require.ErrorAs(t, err, &be)
}

func TestScanOverdue(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	pub := &recordingPublisher{}
	svc := newService(store, pub)
	n1 := store.addNotebook("PMT-001", model.StateAvailable)
	n2 := store.addNotebook("PMT-002", model.StateAvailable)

	late := loanRequest(n1.ID)
	late.PickupDate = model.NewDate(2024, time.March, 1)
	late.DueDate = model.NewDate(2024, time.March, 8)
	_, err := svc.CreateLoan(context.Background(), "tech", late)
	require.NoError(t, err)
	_, err = svc.CreateLoan(context.Background(), "tech", loanRequest(n2.ID))
	require.NoError(t, err)

	n, err := svc.ScanOverdue(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n)

	var overdue []service.LoanEvent
	for _, m := range pub.on(kafka.LoanEventsTopic) {
		if ev := m.Value.(service.LoanEvent); ev.Type == service.EventLoanOverdue {
			overdue = append(overdue, ev)
		}
	}
	require.Len(t, overdue, 1)
	require.Equal(t, 2, overdue[0].DaysOverdue)
}

func TestReconciler_Apply(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	rec := service.NewReconciler(store, store, zap.NewNop())
	n := store.addNotebook("PMT-001", model.StateLoaned)

	step := service.NotebookStep{NotebookID: n.ID, AssetTag: n.AssetTag, State: model.StateAvailable}
	require.NoError(t, rec.Apply(context.Background(), step))
	require.NoError(t, rec.Apply(context.Background(), step))
	require.Equal(t, model.StateAvailable, store.notebook(n.ID).State)

	require.NoError(t, rec.Apply(context.Background(), service.NotebookStep{NotebookID: "gone", State: model.StateAvailable}))
	require.True(t, errs.IsValidation(rec.Apply(context.Background(), service.NotebookStep{NotebookID: n.ID, State: "BROKEN"})))

	store.failState[n.ID] = true
	var be *errs.BackendError
	require.ErrorAs(t, rec.Apply(context.Background(), step), &be)
}
