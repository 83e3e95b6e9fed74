package export

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/crashlens/crashlens/internal/models"
)

// KafkaDestination publishes export records to a Kafka topic through a
// synchronous Sarama producer.
type KafkaDestination struct {
	producer sarama.SyncProducer
}

func NewKafkaDestination(cfg *models.Config) (*KafkaDestination, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // required for SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	brokerList := strings.Split(cfg.KafkaBrokerList, ",")

	producer, err := sarama.NewSyncProducer(brokerList, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sarama producer: %w", err)
	}

	log.Printf("Sarama producer created with brokers %v", brokerList)
	return &KafkaDestination{producer: producer}, nil
}

func (k *KafkaDestination) WriteMessage(topic string, msg []byte) error {
	if k.producer == nil {
		return fmt.Errorf("Kafka producer is not initialized")
	}
	_, _, err := k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(msg),
	})
	if err != nil {
		return fmt.Errorf("send message to topic %s: %w", topic, err)
	}
	return nil
}

func (k *KafkaDestination) Close() error {
	if k.producer != nil {
		return k.producer.Close()
	}
	return nil
}
