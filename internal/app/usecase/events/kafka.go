// Package events publishes engagement status changes.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avGenie/flexihire/internal/app/entity"
	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/zap"
)

const (
	clientID       = "flexihire"
	produceTimeout = 10 * time.Second
)

type Kafka struct {
	client *kgo.Client
	topic  string
}

func NewKafka(brokers []string, topic string) (*Kafka, error) {
	opts := []kgo.Opt{
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProduceRequestTimeout(produceTimeout),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.AllowAutoTopicCreation(),
		kgo.ClientID(clientID),
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("error while creating kafka client: %w", err)
	}

	return &Kafka{
		client: client,
		topic:  topic,
	}, nil
}

func (k *Kafka) Publish(ctx context.Context, event entity.StatusEvent) error {
	record, err := createRecord(k.topic, event)
	if err != nil {
		return err
	}

	if err := k.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("error while producing status event: %w", err)
	}

	zap.L().Debug("status event published",
		zap.String("order_id", event.OrderID.String()),
		zap.String("status", string(event.To)),
	)

	return nil
}

func (k *Kafka) Close() {
	k.client.Close()
}

// createRecord keys the record by order id so that events of one order stay
// in one partition.
func createRecord(topic string, event entity.StatusEvent) (*kgo.Record, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("error while encoding status event: %w", err)
	}

	return &kgo.Record{
		Topic: topic,
		Key:   []byte(event.OrderID),
		Value: data,
	}, nil
}
