package service

import (
	"time"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
	"github.com/Astemirdum/notebook-loan-service/pkg/kafka"
	"go.uber.org/zap"
)

const (
	EventLoanCreated  = "loan.created"
	EventLoanReturned = "loan.returned"
	EventLoanDeleted  = "loan.deleted"
	EventLoanOverdue  = "loan.overdue"
)

type LoanEvent struct {
	Type          string     `json:"type"`
	LoanID        string     `json:"loanId"`
	RequesterName string     `json:"requesterName"`
	Department    string     `json:"department"`
	AssetTags     []string   `json:"assetTags"`
	DueDate       model.Date `json:"dueDate"`
	DaysOverdue   int        `json:"daysOverdue,omitempty"`
	At            time.Time  `json:"at"`
}

func (s *Service) newEvent(typ string, l model.Loan) LoanEvent {
	return LoanEvent{
		Type:          typ,
		LoanID:        l.ID,
		RequesterName: l.RequesterName,
		Department:    l.Department,
		AssetTags:     l.AssetTags(),
		DueDate:       l.DueDate,
		At:            s.now().UTC(),
	}
}

// publishEvent is best effort; loan operations never fail on it.
func (s *Service) publishEvent(typ string, l model.Loan) {
	s.send(s.newEvent(typ, l))
}

func (s *Service) send(ev LoanEvent) {
	if err := s.pub.Publish(kafka.LoanEventsTopic, ev.LoanID, ev); err != nil {
		s.log.Warn("publish loan event", zap.String("type", ev.Type), zap.String("loanId", ev.LoanID), zap.Error(err))
	}
}
