package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
	Topic string   `envconfig:"KAFKA_TOPIC" default:"lending.requests"`
	Group string   `envconfig:"KAFKA_GROUP" default:"stats"`
}

// EventType enumerates request lifecycle events published by the lending service.
type EventType string

const (
	EventRequestCreated   EventType = "request.created"
	EventRequestApproved  EventType = "request.approved"
	EventRequestDenied    EventType = "request.denied"
	EventRequestCancelled EventType = "request.cancelled"
	EventRequestReturned  EventType = "request.returned"
)

type EventRequest struct {
	Type         EventType `json:"type"`
	RequestUid   string    `json:"requestUid"`
	EquipmentUid string    `json:"equipmentUid"`
	Requester    string    `json:"requester"`
	Quantity     int       `json:"quantity"`
	Status       string    `json:"status"`
	At           time.Time `json:"at"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumerGroup(cfg Config) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(cfg.Addrs, cfg.Group, defaultCfg)
}

// Consume rejoins the group after every rebalance until ctx is cancelled
// or the group is closed.
func Consume(ctx context.Context, cg sarama.ConsumerGroup, h sarama.ConsumerGroupHandler, topic string) {
	for {
		if err := cg.Consume(ctx, []string{topic}, h); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return
			}
		}
		if ctx.Err() != nil {
			return
		}
	}
}
