package service

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/IBM/sarama"

	"github.com/Astemirdum/reading-tracker/pkg/kafka"
)

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaPublisher sends events keyed by book id so one book's events stay ordered.
func NewKafkaPublisher(producer sarama.SyncProducer) Publisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    kafka.ReadingTopic,
	}
}

func (p *kafkaPublisher) Publish(_ context.Context, event kafka.EventReading) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.BookID, 10)),
		Value: sarama.ByteEncoder(data),
	}
	if _, _, err = p.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, kafka.EventReading) error {
	return nil
}
