package model

import (
	"github.com/Astemirdum/notebook-loan-service/loans/internal/errs"
)

type NotebookState string

const (
	StateAvailable   NotebookState = "AVAILABLE"
	StateLoaned      NotebookState = "LOANED"
	StateMaintenance NotebookState = "MAINTENANCE"
)

func (s NotebookState) Valid() bool {
	switch s {
	case StateAvailable, StateLoaned, StateMaintenance:
		return true
	}
	return false
}

func ParseNotebookState(s string) (NotebookState, error) {
	st := NotebookState(s)
	if !st.Valid() {
		return "", errs.Validation("state", "unknown notebook state "+s)
	}
	return st, nil
}

type LoanKind string

const (
	KindIndividual LoanKind = "INDIVIDUAL"
	KindEvent      LoanKind = "EVENT"
)

func (k LoanKind) Valid() bool {
	switch k {
	case KindIndividual, KindEvent:
		return true
	}
	return false
}

type LoanStatus string

const (
	StatusActive   LoanStatus = "ACTIVE"
	StatusReturned LoanStatus = "RETURNED"
)

func (s LoanStatus) Valid() bool {
	switch s {
	case StatusActive, StatusReturned:
		return true
	}
	return false
}

func ParseLoanStatus(s string) (LoanStatus, error) {
	st := LoanStatus(s)
	if !st.Valid() {
		return "", errs.Validation("status", "unknown loan status "+s)
	}
	return st, nil
}

type ReturnCondition string

const (
	ConditionGood             ReturnCondition = "GOOD"
	ConditionDamaged          ReturnCondition = "DAMAGED"
	ConditionNeedsMaintenance ReturnCondition = "NEEDS_MAINTENANCE"
)

func (c ReturnCondition) Valid() bool {
	switch c {
	case ConditionGood, ConditionDamaged, ConditionNeedsMaintenance:
		return true
	}
	return false
}

// NotebookState is where a returned notebook goes.
func (c ReturnCondition) NotebookState() NotebookState {
	switch c {
	case ConditionNeedsMaintenance:
		return StateMaintenance
	case ConditionGood, ConditionDamaged:
		return StateAvailable
	}
	return StateAvailable
}

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleTechnician Role = "TECHNICIAN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTechnician:
		return true
	}
	return false
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", errs.Validation("role", "unknown role "+s)
	}
	return r, nil
}
