package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/errs"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/service"
	"github.com/IBM/sarama"
	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

type applyStep func(ctx context.Context, st service.NotebookStep) error

// Consumer applies reconcile steps published by incomplete loan operations.
type Consumer struct {
	apply      applyStep
	timeout    time.Duration
	newBackOff func() backoff.BackOff
	log        *zap.Logger
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 30 * time.Second
	return b
}

func NewConsumer(apply applyStep, log *zap.Logger) *Consumer {
	return &Consumer{
		apply:      apply,
		timeout:    10 * time.Second,
		newBackOff: defaultBackOff,
		log:        log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			if !consumer.handle(session.Context(), message) {
				// session is over; the partition resumes from this message
				return nil
			}
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// handle reports whether the message is done with. Malformed and invalid
// steps are dropped. Backend failures are retried with backoff until they
// succeed or ctx ends; later messages of the partition wait meanwhile.
func (consumer *Consumer) handle(ctx context.Context, message *sarama.ConsumerMessage) bool {
	var st service.NotebookStep
	if err := json.Unmarshal(message.Value, &st); err != nil {
		consumer.log.Error("unmarshal reconcile step", zap.Error(err))
		return true
	}
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		actx, cancel := context.WithTimeout(ctx, consumer.timeout)
		defer cancel()
		err := consumer.apply(actx, st)
		if errs.IsValidation(err) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	},
		backoff.WithBackOff(consumer.newBackOff()),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, next time.Duration) {
			consumer.log.Warn("consumer.apply, retrying", zap.String("step", st.Name()), zap.Duration("in", next), zap.Error(err))
		}),
	)
	switch {
	case err == nil:
	case errs.IsValidation(err):
		consumer.log.Error("consumer.apply, step dropped", zap.String("step", st.Name()), zap.Error(err))
	default:
		consumer.log.Error("consumer.apply, left for the next session", zap.String("step", st.Name()), zap.Error(err))
		return false
	}
	consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
	return true
}
