package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/errs"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/filter"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/handler"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/report"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/service"
	"github.com/Astemirdum/notebook-loan-service/pkg/auth"
	"github.com/Astemirdum/notebook-loan-service/pkg/upload"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/notebook-loan-service/loans/internal/handler/mocks"
)

var authCfg = auth.Config{
	Secret:   "test-secret",
	Issuer:   "identity-provider",
	LoginURL: "https://idp.example/login",
	TokenTTL: time.Hour,
}

type memRevoker struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func (r *memRevoker) Revoke(_ context.Context, id string, _ time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revoked[id] = true
	return nil
}

func (r *memRevoker) IsRevoked(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.revoked[id], nil
}

type env struct {
	e        *echo.Echo
	svc      *service_mocks.MockService
	uploader *service_mocks.MockUploader
}

func newEnv(t *testing.T) env {
	c := gomock.NewController(t)
	svc := service_mocks.NewMockService(c)
	up := service_mocks.NewMockUploader(c)
	log := zap.NewExample().Named("test")
	h := handler.New(svc, up, &memRevoker{revoked: map[string]bool{}}, authCfg, log)
	return env{e: h.NewRouter(), svc: svc, uploader: up}
}

func token(t *testing.T, role string) string {
	tok, err := auth.IssueToken(authCfg, auth.Profile{Name: "Tech Tom", Email: "tom@city.gov", Role: role}, time.Now())
	require.NoError(t, err)
	return tok
}

func (v env) do(method, target, body, tok string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, http.NoBody)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if tok != "" {
		r.Header.Set(echo.HeaderAuthorization, "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	v.e.ServeHTTP(w, r)
	return w
}

func body(w *httptest.ResponseRecorder) string {
	return strings.Trim(w.Body.String(), "\n")
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	v := newEnv(t)
	w := v.do(http.MethodGet, "/manage/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}

func TestHandler_Authentication(t *testing.T) {
	t.Parallel()
	v := newEnv(t)

	w := v.do(http.MethodGet, "/api/v1/loans", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, `{"loginUrl":"https://idp.example/login?returnUrl=%2Fapi%2Fv1%2Floans","message":"No Authorization Header"}`, body(w))

	w = v.do(http.MethodGet, "/api/v1/loans", "", "garbage")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = v.do(http.MethodGet, "/api/v1/login?returnUrl=/dashboard", "", "")
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "https://idp.example/login?returnUrl=%2Fdashboard", w.Header().Get(echo.HeaderLocation))
}

func TestHandler_Logout(t *testing.T) {
	t.Parallel()
	v := newEnv(t)
	tok := token(t, "TECHNICIAN")

	v.svc.EXPECT().Me(gomock.Any(), gomock.Any()).Return(model.User{ID: "u1", Email: "tom@city.gov"}, nil)
	w := v.do(http.MethodGet, "/api/v1/me", "", tok)
	require.Equal(t, http.StatusOK, w.Code)

	w = v.do(http.MethodPost, "/api/v1/logout", "", tok)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = v.do(http.MethodGet, "/api/v1/me", "", tok)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, body(w), "TokenRevoked")
}

func TestHandler_ListLoans(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockService)

	tests := []struct {
		name         string
		target       string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name:   "ok",
			target: "/api/v1/loans?tab=active&q=ana",
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().
					ListLoans(gomock.Any(),
						model.LoanQuery{Sort: model.Sort{Field: "createdAt", Desc: true}},
						filter.LoanCriteria{Tab: filter.TabActive, Search: "ana"}).
					Return(service.LoanList{Items: []model.Loan{}, Stats: report.LoanStats{Total: 2, Active: 1, Returned: 1}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"items":[],"stats":{"total":2,"active":1,"returned":1}}`,
		},
		{
			name:   "status and sort",
			target: "/api/v1/loans?status=returned&sort=-dueDate&department=Sa%C3%BAde",
			mockBehavior: func(r *service_mocks.MockService) {
				st := model.StatusReturned
				r.EXPECT().
					ListLoans(gomock.Any(),
						model.LoanQuery{Sort: model.Sort{Field: "dueDate", Desc: true}},
						filter.LoanCriteria{Tab: filter.TabAll, Status: &st, Department: "Saúde"}).
					Return(service.LoanList{Items: []model.Loan{}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"items":[],"stats":{"total":0,"active":0,"returned":0}}`,
		},
		{
			name:         "err. unknown tab",
			target:       "/api/v1/loans?tab=archived",
			mockBehavior: func(r *service_mocks.MockService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"tab: unknown tab archived"}`,
		},
		{
			name:         "err. unknown status",
			target:       "/api/v1/loans?status=lost",
			mockBehavior: func(r *service_mocks.MockService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"status: unknown loan status LOST"}`,
		},
		{
			name:   "err. internal",
			target: "/api/v1/loans",
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().ListLoans(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(service.LoanList{}, errs.Backend("list loans", errors.New("db internal")))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"list loans: db internal"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := newEnv(t)
			tt.mockBehavior(v.svc)

			w := v.do(http.MethodGet, tt.target, "", token(t, "TECHNICIAN"))
			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, body(w))
		})
	}
}

func TestHandler_CreateLoan(t *testing.T) {
	t.Parallel()
	const payload = `{"notebookIds":["n1","n2"],"requesterName":"Ana","department":"Saúde","pickupDate":"2024-03-10","dueDate":"2024-03-17"}`
	req := model.LoanRequest{
		NotebookIDs:   []string{"n1", "n2"},
		RequesterName: "Ana",
		Department:    "Saúde",
		PickupDate:    model.NewDate(2024, time.March, 10),
		DueDate:       model.NewDate(2024, time.March, 17),
	}
	loan := model.Loan{ID: "l1", RequesterName: "Ana", Status: model.StatusActive, Technician: "Tech Tom"}

	tests := []struct {
		name         string
		payload      string
		mockBehavior func(r *service_mocks.MockService)
		expectedCode int
		contains     string
	}{
		{
			name:    "created",
			payload: payload,
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().CreateLoan(gomock.Any(), "Tech Tom", req).Return(loan, nil)
			},
			expectedCode: http.StatusCreated,
			contains:     `"technician":"Tech Tom"`,
		},
		{
			name:    "partial failure",
			payload: payload,
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().CreateLoan(gomock.Any(), "Tech Tom", req).Return(loan, &errs.PartialFailureError{
					Op: "create loan", LoanID: "l1",
					Completed: []errs.Step{{Name: "create loan"}, {Name: "set notebook PMT-001 LOANED", NotebookID: "n1"}},
					Pending:   []errs.Step{{Name: "set notebook PMT-002 LOANED", NotebookID: "n2", Error: "timeout"}},
				})
			},
			expectedCode: http.StatusMultiStatus,
			contains:     `"pending":[{"name":"set notebook PMT-002 LOANED","notebookId":"n2","error":"timeout"}]`,
		},
		{
			name:    "notebook unavailable",
			payload: payload,
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().CreateLoan(gomock.Any(), "Tech Tom", req).
					Return(model.Loan{}, errors.Wrapf(errs.ErrNotebookUnavailable, "notebook %s is %s", "PMT-002", model.StateLoaned))
			},
			expectedCode: http.StatusConflict,
			contains:     `{"message":"notebook PMT-002 is LOANED: notebook is not available"}`,
		},
		{
			name:    "no notebooks",
			payload: `{"notebookIds":[],"requesterName":"Ana","department":"Saúde","pickupDate":"2024-03-10","dueDate":"2024-03-17"}`,
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().CreateLoan(gomock.Any(), "Tech Tom", gomock.Any()).
					Return(model.Loan{}, errs.Validation("notebookIds", "select at least one notebook"))
			},
			expectedCode: http.StatusBadRequest,
			contains:     `{"message":"notebookIds: select at least one notebook"}`,
		},
		{
			name:         "bad date",
			payload:      `{"notebookIds":["n1"],"requesterName":"Ana","department":"Saúde","pickupDate":"10/03/2024"}`,
			mockBehavior: func(r *service_mocks.MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing requester",
			payload:      `{"notebookIds":["n1"],"department":"Saúde"}`,
			mockBehavior: func(r *service_mocks.MockService) {},
			expectedCode: http.StatusBadRequest,
			contains:     "RequesterName",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := newEnv(t)
			tt.mockBehavior(v.svc)

			w := v.do(http.MethodPost, "/api/v1/loans", tt.payload, token(t, "TECHNICIAN"))
			require.Equal(t, tt.expectedCode, w.Code)
			require.Contains(t, body(w), tt.contains)
		})
	}
}

func TestHandler_LoanErrors(t *testing.T) {
	t.Parallel()
	v := newEnv(t)
	tok := token(t, "TECHNICIAN")

	v.svc.EXPECT().GetLoan(gomock.Any(), "missing").Return(model.Loan{}, errors.Wrap(errs.ErrNotFound, "get loan"))
	w := v.do(http.MethodGet, "/api/v1/loans/missing", "", tok)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, `{"message":"get loan: not found"}`, body(w))

	// ids that are not uuids never match a row
	v.svc.EXPECT().GetLoan(gomock.Any(), "not-a-uuid").Return(model.Loan{}, errors.Wrap(errs.ErrNotFound, "get loan"))
	w = v.do(http.MethodGet, "/api/v1/loans/not-a-uuid", "", tok)
	require.Equal(t, http.StatusNotFound, w.Code)

	v.svc.EXPECT().ReturnLoan(gomock.Any(), "l1", gomock.Any()).
		Return(model.Loan{}, errors.Wrap(errs.ErrInvalidTransition, "loan l1 is RETURNED"))
	w = v.do(http.MethodPost, "/api/v1/loans/l1/return", `{"returnDate":"2024-03-12"}`, tok)
	require.Equal(t, http.StatusConflict, w.Code)

	v.svc.EXPECT().DeleteLoan(gomock.Any(), "l2").Return(nil)
	w = v.do(http.MethodDelete, "/api/v1/loans/l2", "", tok)
	require.Equal(t, http.StatusNoContent, w.Code)

	v.svc.EXPECT().ListDepartments(gomock.Any()).Return([]string{"Educação", "Saúde"}, nil)
	w = v.do(http.MethodGet, "/api/v1/loans/departments", "", tok)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `["Educação","Saúde"]`, body(w))
}

func TestHandler_Reports(t *testing.T) {
	t.Parallel()
	v := newEnv(t)
	tok := token(t, "TECHNICIAN")

	v.svc.EXPECT().ExportReport(gomock.Any(), report.ViewOverdue).Return(nil, errs.ErrNothingToExport)
	w := v.do(http.MethodGet, "/api/v1/reports/overdue/export", "", tok)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, `{"message":"nothing to export"}`, body(w))

	tbl := report.NewTable("a", "b")
	tbl.Add(1, "x;y")
	v.svc.EXPECT().ExportReport(gomock.Any(), report.ViewAvailable).Return(tbl, nil)
	w = v.do(http.MethodGet, "/api/v1/reports/available/export", "", tok)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "\uFEFFa;b\n\"1\";\"x;y\"\n", w.Body.String())
	require.Contains(t, w.Header().Get(echo.HeaderContentDisposition), "available.csv")

	w = v.do(http.MethodGet, "/api/v1/reports/unknown", "", tok)
	require.Equal(t, http.StatusBadRequest, w.Code)

	v.svc.EXPECT().Report(gomock.Any(), report.ViewHistory, "PMT-001").Return([]model.Loan{}, nil)
	w = v.do(http.MethodGet, "/api/v1/reports/history?assetTag=PMT-001", "", tok)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `[]`, body(w))
}

func TestHandler_Users(t *testing.T) {
	t.Parallel()
	v := newEnv(t)

	gomock.InOrder(
		v.svc.EXPECT().Me(gomock.Any(), gomock.Any()).Return(model.User{Role: model.RoleTechnician}, nil),
		v.svc.EXPECT().Me(gomock.Any(), gomock.Any()).Return(model.User{}, errs.ErrUnauthenticated),
		v.svc.EXPECT().Me(gomock.Any(), gomock.Any()).Return(model.User{Role: model.RoleAdmin}, nil),
	)

	// demoted after the token was issued
	w := v.do(http.MethodGet, "/api/v1/users", "", token(t, "ADMIN"))
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, `{"message":"forbidden"}`, body(w))

	w = v.do(http.MethodGet, "/api/v1/users", "", token(t, "ADMIN"))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	role := model.RoleAdmin
	v.svc.EXPECT().ListUsers(gomock.Any(), filter.UserCriteria{Role: &role, Search: "ana"}).
		Return(service.UserList{Items: []model.User{}, Stats: report.UserStats{Total: 1, Admins: 1}}, nil)
	w = v.do(http.MethodGet, "/api/v1/users?role=admin&q=ana", "", token(t, "TECHNICIAN"))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"items":[],"stats":{"total":1,"admins":1,"technicians":0}}`, body(w))
}

func TestHandler_UpdateMe(t *testing.T) {
	t.Parallel()
	v := newEnv(t)
	phone := "555-0100"
	v.svc.EXPECT().UpdateMe(gomock.Any(), gomock.Any(), model.ProfileUpdate{Phone: &phone}).
		Return(model.User{ID: "u1", Email: "tom@city.gov", Phone: phone}, nil)

	w := v.do(http.MethodPatch, "/api/v1/me", `{"phone":"555-0100","email":"other@city.gov"}`, token(t, "TECHNICIAN"))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, body(w), `"email":"tom@city.gov"`)
}

func TestHandler_Upload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		mockBehavior func(u *service_mocks.MockUploader)
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			mockBehavior: func(u *service_mocks.MockUploader) {
				f := upload.File{Name: "term.pdf", Data: []byte("%PDF-1.4"), MIME: "application/pdf"}
				u.EXPECT().Read("term.pdf", gomock.Any()).Return(f, nil)
				u.EXPECT().Upload(gomock.Any(), f).Return(upload.Result{URL: "https://files.example/term.pdf"}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"url":"https://files.example/term.pdf"}`,
		},
		{
			name: "rejected type",
			mockBehavior: func(u *service_mocks.MockUploader) {
				u.EXPECT().Read("term.pdf", gomock.Any()).Return(upload.File{}, upload.ErrUnsupportedType)
			},
			expectedCode: http.StatusUnsupportedMediaType,
			expectedBody: `{"message":"only PDF, JPG or PNG files are accepted"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := newEnv(t)
			tt.mockBehavior(v.uploader)

			r := multipartRequest(t, "/api/v1/uploads", "file", "term.pdf", []byte("%PDF-1.4"))
			r.Header.Set(echo.HeaderAuthorization, "Bearer "+token(t, "TECHNICIAN"))
			w := httptest.NewRecorder()
			v.e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, body(w))
		})
	}
}
