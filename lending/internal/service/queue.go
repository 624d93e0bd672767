package service

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/campuskit/lending-service/pkg/circuit_breaker"
)

//go:generate go run github.com/golang/mock/mockgen -source=queue.go -destination=mocks/queue_mock.go

// Enqueuer publishes request lifecycle events. Delivery is best effort:
// a failed publish is logged by the caller and never fails the operation
// that produced the event.
type Enqueuer interface {
	Enqueue(topic string, v any) error
}

func NewEnqueuer(producer sarama.SyncProducer) Enqueuer {
	return &enqueuerImpl{
		producer: producer,
		// a down broker must not stall request handling: shed publishes fast
		cb: circuit_breaker.New(20, 30*time.Second, 0.5, 3),
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
}

func (q *enqueuerImpl) Enqueue(topic string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return q.cb.Call(func() error {
		msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.StringEncoder(data)}
		_, _, err := q.producer.SendMessage(msg)
		return err
	})
}
