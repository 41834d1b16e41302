package service_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/errs"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
	"github.com/pkg/errors"
)

var errInjected = errors.New("injected failure")

// memStore is an in-memory repository.Repository with failure injection.
type memStore struct {
	mu        sync.Mutex
	seq       int
	notebooks map[string]model.Notebook
	nbOrder   []string
	loans     map[string]model.Loan
	loanOrder []string
	users     map[string]model.User

	failState      map[string]bool
	failCreateLoan bool
	failUpdateLoan bool
	failList       bool
}

func newMemStore() *memStore {
	return &memStore{
		notebooks: make(map[string]model.Notebook),
		loans:     make(map[string]model.Loan),
		users:     make(map[string]model.User),
		failState: make(map[string]bool),
	}
}

func (m *memStore) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s%d", prefix, m.seq)
}

func (m *memStore) addNotebook(tag string, state model.NotebookState) model.Notebook {
	n, _ := m.CreateNotebook(context.Background(), model.Notebook{
		AssetTag: tag, Model: "model " + tag, SerialNumber: "SN-" + tag, State: state,
	})
	return n
}

func (m *memStore) notebook(id string) model.Notebook {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notebooks[id]
}

func cloneLoan(l model.Loan) model.Loan {
	l.Notebooks = append([]model.NotebookRef{}, l.Notebooks...)
	return l
}

func (m *memStore) ListNotebooks(_ context.Context, q model.NotebookQuery) ([]model.Notebook, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failList {
		return nil, errInjected
	}
	out := make([]model.Notebook, 0, len(m.nbOrder))
	for _, id := range m.nbOrder {
		n, ok := m.notebooks[id]
		if !ok || (q.State != nil && n.State != *q.State) {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (m *memStore) GetNotebook(_ context.Context, id string) (model.Notebook, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notebooks[id]
	if !ok {
		return model.Notebook{}, errs.ErrNotFound
	}
	return n, nil
}

func (m *memStore) CreateNotebook(_ context.Context, n model.Notebook) (model.Notebook, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.notebooks {
		if o.AssetTag == n.AssetTag {
			return model.Notebook{}, errs.ErrConflict
		}
	}
	n.ID = m.nextID("nb")
	n.CreatedAt = time.Now()
	m.notebooks[n.ID] = n
	m.nbOrder = append(m.nbOrder, n.ID)
	return n, nil
}

func (m *memStore) UpdateNotebook(_ context.Context, n model.Notebook) (model.Notebook, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.notebooks[n.ID]; !ok {
		return model.Notebook{}, errs.ErrNotFound
	}
	m.notebooks[n.ID] = n
	return n, nil
}

func (m *memStore) SetNotebookState(_ context.Context, id string, state model.NotebookState, holder string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failState[id] {
		return errInjected
	}
	n, ok := m.notebooks[id]
	if !ok {
		return errs.ErrNotFound
	}
	n.State, n.Holder = state, holder
	m.notebooks[id] = n
	return nil
}

func (m *memStore) ClaimNotebook(_ context.Context, id, holder string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failState[id] {
		return errInjected
	}
	n, ok := m.notebooks[id]
	if !ok {
		return errs.ErrNotFound
	}
	if n.State != model.StateAvailable {
		return errors.Wrapf(errs.ErrNotebookUnavailable, "notebook %s is %s", n.AssetTag, n.State)
	}
	n.State, n.Holder = model.StateLoaned, holder
	m.notebooks[id] = n
	return nil
}

func (m *memStore) DeleteNotebook(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.notebooks[id]; !ok {
		return errs.ErrNotFound
	}
	delete(m.notebooks, id)
	return nil
}

func (m *memStore) ListLoans(_ context.Context, q model.LoanQuery) ([]model.Loan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failList {
		return nil, errInjected
	}
	out := make([]model.Loan, 0, len(m.loanOrder))
	for _, id := range m.loanOrder {
		l, ok := m.loans[id]
		if !ok || (q.Status != nil && l.Status != *q.Status) {
			continue
		}
		out = append(out, cloneLoan(l))
	}
	return out, nil
}

func (m *memStore) GetLoan(_ context.Context, id string) (model.Loan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.loans[id]
	if !ok {
		return model.Loan{}, errs.ErrNotFound
	}
	return cloneLoan(l), nil
}

func (m *memStore) CreateLoan(_ context.Context, l model.Loan) (model.Loan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCreateLoan {
		return model.Loan{}, errInjected
	}
	if l.ID == "" {
		l.ID = m.nextID("loan")
	}
	l.CreatedAt = time.Now()
	m.loans[l.ID] = cloneLoan(l)
	m.loanOrder = append(m.loanOrder, l.ID)
	return l, nil
}

// putLoan stores a loan as is, bypassing the service.
func (m *memStore) putLoan(l model.Loan) {
	_, _ = m.CreateLoan(context.Background(), l)
}

func (m *memStore) UpdateLoan(_ context.Context, l model.Loan) (model.Loan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failUpdateLoan {
		return model.Loan{}, errInjected
	}
	if _, ok := m.loans[l.ID]; !ok {
		return model.Loan{}, errs.ErrNotFound
	}
	m.loans[l.ID] = cloneLoan(l)
	return l, nil
}

func (m *memStore) DeleteLoan(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.loans[id]; !ok {
		return errs.ErrNotFound
	}
	delete(m.loans, id)
	return nil
}

func (m *memStore) ListUsers(_ context.Context) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return model.User{}, errs.ErrNotFound
	}
	return u, nil
}

func (m *memStore) CreateUser(_ context.Context, u model.User) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.Email]; ok {
		return model.User{}, errs.ErrConflict
	}
	u.ID = m.nextID("user")
	m.users[u.Email] = u
	return u, nil
}

func (m *memStore) UpdateUser(_ context.Context, u model.User) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for email, o := range m.users {
		if o.ID == u.ID {
			u.Email = email
			m.users[email] = u
			return u, nil
		}
	}
	return model.User{}, errs.ErrNotFound
}

type message struct {
	Topic string
	Key   string
	Value any
}

type recordingPublisher struct {
	mu   sync.Mutex
	msgs []message
}

func (p *recordingPublisher) Publish(topic, key string, v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, message{Topic: topic, Key: key, Value: v})
	return nil
}

func (p *recordingPublisher) on(topic string) []message {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []message
	for _, m := range p.msgs {
		if m.Topic == topic {
			out = append(out, m)
		}
	}
	return out
}
