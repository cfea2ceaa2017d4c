package app

import (
	"encoding/json"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/boutique/internal/domain"
	"github.com/vladislavdragonenkov/boutique/internal/messaging/kafka"
)

func TestInitKafkaProducer_EmptyBrokers(t *testing.T) {
	logger := log.WithField("test", "kafka")

	for _, brokers := range []string{"", " ", " , ,"} {
		producer, err := initKafkaProducer(brokers, logger)
		require.NoError(t, err)
		require.Nil(t, producer)
	}
}

func TestInitKafkaProducer_InvalidBrokers(t *testing.T) {
	logger := log.WithField("test", "kafka")

	producer, err := initKafkaProducer("invalid-broker:9999", logger)
	require.ErrorContains(t, err, "init kafka producer")
	require.Nil(t, producer)
}

func TestSplitBrokers(t *testing.T) {
	require.Equal(t, []string{"broker1:9092", "broker2:9092", "broker3:9092"},
		splitBrokers("broker1:9092, broker2:9092 ,,broker3:9092"))
	require.Empty(t, splitBrokers(""))
}

func TestCloseKafka_NilProducer(_ *testing.T) {
	closeKafka(nil, log.WithField("test", "kafka"))
}

func TestOutboxPublishers_WithoutKafkaLogsEvents(t *testing.T) {
	publisher, dlq := outboxPublishers(nil, kafka.TopicOrderEvents, log.WithField("test", "kafka"))

	require.Nil(t, dlq)
	require.IsType(t, &logPublisher{}, publisher)
	require.NoError(t, publisher.Publish(domain.OutboxMessage{
		ID:          "evt-1",
		AggregateID: "1",
		EventType:   "order.created",
		Payload:     []byte(`{}`),
	}))
}

func TestOutboxPublishers_WithKafka(t *testing.T) {
	syncProducer := mocks.NewSyncProducer(t, sarama.NewConfig())
	var topics []string
	checker := func(msg *sarama.ProducerMessage) error {
		topics = append(topics, msg.Topic)
		return nil
	}
	syncProducer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(checker)
	syncProducer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(checker)

	producer := kafka.NewProducerFromSync(syncProducer)
	publisher, dlq := outboxPublishers(producer, "custom.orders", log.WithField("test", "kafka"))
	require.NotNil(t, dlq)

	payload, err := json.Marshal(map[string]any{"orderId": 1})
	require.NoError(t, err)
	event := domain.OutboxMessage{ID: "evt-1", AggregateID: "1", EventType: "order.created", Payload: payload}

	require.NoError(t, publisher.Publish(event))
	require.NoError(t, dlq.Publish(event))
	require.Equal(t, []string{"custom.orders", kafka.TopicDeadLetterQueue}, topics)

	closeKafka(producer, log.WithField("test", "kafka"))
}
