package model

import (
	"strings"
	"time"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/errs"
)

type Notebook struct {
	ID           string        `json:"id" db:"id"`
	AssetTag     string        `json:"assetTag" db:"asset_tag"`
	Model        string        `json:"model" db:"model"`
	SerialNumber string        `json:"serialNumber" db:"serial_number"`
	Holder       string        `json:"holder" db:"holder"`
	State        NotebookState `json:"state" db:"state"`
	Notes        string        `json:"notes" db:"notes"`
	CreatedAt    time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time     `json:"updatedAt" db:"updated_at"`
}

type NotebookRequest struct {
	AssetTag     string        `json:"assetTag" validate:"required,max=32"`
	Model        string        `json:"model" validate:"required,max=128"`
	SerialNumber string        `json:"serialNumber" validate:"required,max=64"`
	State        NotebookState `json:"state" validate:"omitempty,oneof=AVAILABLE LOANED MAINTENANCE"`
	Notes        string        `json:"notes"`
}

// NotebookRef is the snapshot of a notebook taken when the loan is made.
type NotebookRef struct {
	ID       string `json:"id" db:"notebook_id"`
	AssetTag string `json:"assetTag" db:"asset_tag"`
	Model    string `json:"model" db:"model"`
}

func RefOf(n Notebook) NotebookRef {
	return NotebookRef{ID: n.ID, AssetTag: n.AssetTag, Model: n.Model}
}

type Loan struct {
	ID        string        `json:"id" db:"id"`
	Notebooks []NotebookRef `json:"notebooks" db:"-"`
	// LegacyNotebookID is the single reference of loans created before multi-notebook loans.
	LegacyNotebookID *string `json:"notebookId,omitempty" db:"notebook_id"`

	Kind             LoanKind   `json:"kind" db:"kind"`
	RequesterName    string     `json:"requesterName" db:"requester_name"`
	Department       string     `json:"department" db:"department"`
	EventDescription string     `json:"eventDescription" db:"event_description"`
	PickupDate       Date       `json:"pickupDate" db:"pickup_date"`
	DueDate          Date       `json:"dueDate" db:"due_date"`
	Technician       string     `json:"technician" db:"technician"`
	Status           LoanStatus `json:"status" db:"status"`

	ReturnDate      *Date           `json:"returnDate,omitempty" db:"return_date"`
	ReturnCondition ReturnCondition `json:"returnCondition,omitempty" db:"return_condition"`
	ReturnNotes     string          `json:"returnNotes,omitempty" db:"return_notes"`
	TermURL         string          `json:"termUrl,omitempty" db:"term_url"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

func (l Loan) Active() bool { return l.Status == StatusActive }

// NotebookIDs resolves the referenced notebooks: the multi-notebook list wins,
// the legacy single reference is only read when the list is empty.
func (l Loan) NotebookIDs() []string {
	if len(l.Notebooks) > 0 {
		ids := make([]string, 0, len(l.Notebooks))
		for _, n := range l.Notebooks {
			ids = append(ids, n.ID)
		}
		return ids
	}
	if l.LegacyNotebookID != nil && *l.LegacyNotebookID != "" {
		return []string{*l.LegacyNotebookID}
	}
	return nil
}

func (l Loan) AssetTags() []string {
	tags := make([]string, 0, len(l.Notebooks))
	for _, n := range l.Notebooks {
		tags = append(tags, n.AssetTag)
	}
	return tags
}

func (l Loan) References(assetTag string) bool {
	for _, n := range l.Notebooks {
		if n.AssetTag == assetTag {
			return true
		}
	}
	return false
}

type LoanRequest struct {
	NotebookIDs      []string `json:"notebookIds"`
	Kind             LoanKind `json:"kind" validate:"omitempty,oneof=INDIVIDUAL EVENT"`
	RequesterName    string   `json:"requesterName" validate:"required,max=128"`
	Department       string   `json:"department" validate:"required,max=128"`
	EventDescription string   `json:"eventDescription" validate:"max=128"`
	PickupDate       Date     `json:"pickupDate"`
	DueDate          Date     `json:"dueDate"`
}

// Check covers what struct tags cannot: notebook list, dates and kind default.
func (r *LoanRequest) Check() error {
	if len(r.NotebookIDs) == 0 {
		return errs.Validation("notebookIds", "select at least one notebook")
	}
	seen := make(map[string]struct{}, len(r.NotebookIDs))
	for _, id := range r.NotebookIDs {
		if strings.TrimSpace(id) == "" {
			return errs.Validation("notebookIds", "empty notebook id")
		}
		if _, ok := seen[id]; ok {
			return errs.Validation("notebookIds", "notebook "+id+" selected twice")
		}
		seen[id] = struct{}{}
	}
	if strings.TrimSpace(r.RequesterName) == "" {
		return errs.Validation("requesterName", "requester is required")
	}
	if strings.TrimSpace(r.Department) == "" {
		return errs.Validation("department", "department is required")
	}
	if r.PickupDate.IsZero() {
		return errs.Validation("pickupDate", "pickup date is required")
	}
	if r.DueDate.IsZero() {
		return errs.Validation("dueDate", "due date is required")
	}
	if r.DueDate.Before(r.PickupDate.Time) {
		return errs.Validation("dueDate", "due date is before pickup date")
	}
	if r.Kind == "" {
		r.Kind = KindIndividual
	}
	if !r.Kind.Valid() {
		return errs.Validation("kind", "unknown loan kind "+string(r.Kind))
	}
	if r.Kind != KindEvent {
		r.EventDescription = ""
	}
	return nil
}

type ReturnRequest struct {
	ReturnDate *Date           `json:"returnDate"`
	Condition  ReturnCondition `json:"condition" validate:"omitempty,oneof=GOOD DAMAGED NEEDS_MAINTENANCE"`
	Notes      string          `json:"notes"`
	TermURL    string          `json:"termUrl" validate:"omitempty,url"`
}

func (r *ReturnRequest) Check() error {
	if r.ReturnDate == nil || r.ReturnDate.IsZero() {
		return errs.Validation("returnDate", "return date is required")
	}
	if r.Condition == "" {
		r.Condition = ConditionGood
	}
	if !r.Condition.Valid() {
		return errs.Validation("condition", "unknown return condition "+string(r.Condition))
	}
	return nil
}

type User struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Role       Role      `json:"role" db:"role"`
	Phone      string    `json:"phone" db:"phone"`
	JobTitle   string    `json:"jobTitle" db:"job_title"`
	Department string    `json:"department" db:"department"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// ProfileUpdate carries the only user fields editable by the user; name and
// email come from the identity provider.
type ProfileUpdate struct {
	Phone      *string `json:"phone" validate:"omitempty,max=32"`
	JobTitle   *string `json:"jobTitle" validate:"omitempty,max=128"`
	Department *string `json:"department" validate:"omitempty,max=128"`
}

type Sort struct {
	Field string
	Desc  bool
}

// ParseSort reads "field" or "-field"; fields outside allowed fall back to def.
func ParseSort(s string, allowed []string, def Sort) Sort {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	srt := Sort{Field: strings.TrimPrefix(s, "-"), Desc: strings.HasPrefix(s, "-")}
	for _, a := range allowed {
		if a == srt.Field {
			return srt
		}
	}
	return def
}

type NotebookQuery struct {
	State *NotebookState
	Sort  Sort
}

type LoanQuery struct {
	Status *LoanStatus
	Sort   Sort
}
