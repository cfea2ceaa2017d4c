package kafka

import (
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"
)

// Заголовки, которые сопровождают каждое событие заказа.
const (
	HeaderEventType     = "event-type"
	HeaderAggregateType = "aggregate-type"
	HeaderOutboxID      = "outbox-id"
)

// Message — запись для отправки в Kafka. Key определяет партицию.
type Message struct {
	Topic   string
	Key     string
	Value   []byte
	Headers map[string]string
}

// Producer отправляет события заказов синхронно. Сообщения с одинаковым ключом
// (id заказа) попадают в одну партицию и читаются в порядке публикации.
type Producer struct {
	producer sarama.SyncProducer
	logger   *log.Entry
}

// OrderKey — ключ Kafka-сообщения для заказа.
func OrderKey(orderID int64) string {
	return strconv.FormatInt(orderID, 10)
}

func producerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.ClientID = "boutique-orders"
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Partitioner = sarama.NewHashPartitioner
	// Идемпотентность требует не более одного запроса в полёте.
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1
	return config
}

// NewProducer подключается к брокерам.
func NewProducer(brokers []string) (*Producer, error) {
	producer, err := sarama.NewSyncProducer(brokers, producerConfig())
	if err != nil {
		return nil, fmt.Errorf("connect kafka brokers %v: %w", brokers, err)
	}
	return NewProducerFromSync(producer), nil
}

// NewProducerFromSync оборачивает готовый sarama.SyncProducer (используется в тестах с sarama/mocks).
func NewProducerFromSync(producer sarama.SyncProducer) *Producer {
	return &Producer{
		producer: producer,
		logger:   log.WithField("component", "kafka-producer"),
	}
}

// Send отправляет сообщение и возвращает партицию и offset, присвоенные брокером.
func (p *Producer) Send(msg Message) (int32, int64, error) {
	record := &sarama.ProducerMessage{
		Topic:     msg.Topic,
		Value:     sarama.ByteEncoder(msg.Value),
		Timestamp: time.Now(),
	}
	if msg.Key != "" {
		record.Key = sarama.StringEncoder(msg.Key)
	}
	for name, value := range msg.Headers {
		record.Headers = append(record.Headers, sarama.RecordHeader{Key: []byte(name), Value: []byte(value)})
	}

	fields := log.Fields{"topic": msg.Topic, "order_key": msg.Key}
	partition, offset, err := p.producer.SendMessage(record)
	if err != nil {
		p.logger.WithError(err).WithFields(fields).Error("failed to send order event to kafka")
		return 0, 0, fmt.Errorf("send to %s: %w", msg.Topic, err)
	}

	p.logger.WithFields(fields).WithFields(log.Fields{
		"partition": partition,
		"offset":    offset,
	}).Debug("order event sent to kafka")
	return partition, offset, nil
}

// Close закрывает producer
func (p *Producer) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	return nil
}
