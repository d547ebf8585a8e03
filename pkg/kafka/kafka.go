package kafka

import (
	"fmt"
	"time"

	"github.com/IBM/sarama"
)

const ReadingTopic = "reading-events"

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
}

func (cfg Config) Enabled() bool {
	return len(cfg.Addrs) > 0
}

type EventType string

const (
	EventBookAdded       EventType = "book_added"
	EventSessionRecorded EventType = "session_recorded"
	EventBookCompleted   EventType = "book_completed"
	EventBookDeleted     EventType = "book_deleted"
)

type EventReading struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	EventType EventType `json:"eventType"`
	BookID    int64     `json:"bookId"`
	Title     string    `json:"title,omitempty"`
	StartPage int       `json:"startPage,omitempty"`
	EndPage   int       `json:"endPage,omitempty"`
	Progress  int       `json:"progress"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

// CreateTopics creates the missing topics with a single partition.
func CreateTopics(cfg Config, topics ...string) error {
	admin, err := sarama.NewClusterAdmin(cfg.Addrs, sarama.NewConfig())
	if err != nil {
		return fmt.Errorf("cluster admin: %w", err)
	}
	defer admin.Close()

	existing, err := admin.ListTopics()
	if err != nil {
		return fmt.Errorf("list topics: %w", err)
	}
	for _, topic := range topics {
		if _, ok := existing[topic]; ok {
			continue
		}
		detail := &sarama.TopicDetail{NumPartitions: 1, ReplicationFactor: 1}
		if err = admin.CreateTopic(topic, detail, false); err != nil {
			return fmt.Errorf("create topic %s: %w", topic, err)
		}
	}
	return nil
}
