package handler

import (
	"context"
	"io"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/filter"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/report"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/service"
	"github.com/Astemirdum/notebook-loan-service/pkg/auth"
	"github.com/Astemirdum/notebook-loan-service/pkg/upload"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LoanService interface {
	ListLoans(ctx context.Context, q model.LoanQuery, c filter.LoanCriteria) (service.LoanList, error)
	ListDepartments(ctx context.Context) ([]string, error)
	GetLoan(ctx context.Context, id string) (model.Loan, error)
	CreateLoan(ctx context.Context, technician string, req model.LoanRequest) (model.Loan, error)
	UpdateLoan(ctx context.Context, id string, req model.LoanRequest) (model.Loan, error)
	ReturnLoan(ctx context.Context, id string, req model.ReturnRequest) (model.Loan, error)
	DeleteLoan(ctx context.Context, id string) error
}

type NotebookService interface {
	ListNotebooks(ctx context.Context, q model.NotebookQuery, search string) ([]model.Notebook, error)
	GetNotebook(ctx context.Context, id string) (model.Notebook, error)
	CreateNotebook(ctx context.Context, req model.NotebookRequest) (model.Notebook, error)
	UpdateNotebook(ctx context.Context, id string, req model.NotebookRequest) (model.Notebook, error)
	DeleteNotebook(ctx context.Context, id string) error
}

type UserService interface {
	Me(ctx context.Context, sess auth.Session) (model.User, error)
	UpdateMe(ctx context.Context, sess auth.Session, upd model.ProfileUpdate) (model.User, error)
	ListUsers(ctx context.Context, c filter.UserCriteria) (service.UserList, error)
}

type ReportService interface {
	Report(ctx context.Context, view report.View, assetTag string) (any, error)
	ExportReport(ctx context.Context, view report.View) (*report.Table, error)
	Dashboard(ctx context.Context) (report.Dashboard, error)
	Returns(ctx context.Context, search string) (service.ReturnList, error)
}

type Service interface {
	LoanService
	NotebookService
	UserService
	ReportService
}

type Uploader interface {
	Read(name string, r io.Reader) (upload.File, error)
	Upload(ctx context.Context, f upload.File) (upload.Result, error)
}

var (
	_ Service  = (*service.Service)(nil)
	_ Uploader = (*upload.Client)(nil)
)
