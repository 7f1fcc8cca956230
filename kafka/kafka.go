package kafka

import (
	"encoding/json"
	"os"

	"travel-concierge/api/logger"
	"travel-concierge/api/models"
	"travel-concierge/api/worker"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"go.uber.org/zap"
)

var (
	EventProducer *kafka.Producer
	QueryTopic    string = "user_query"
	EventTopic    string = "agent_events"
	GroupID       string = "agent-event-consumer"
)

func InitProducer() error {
	config := &kafka.ConfigMap{
		"bootstrap.servers": os.Getenv("KAFKA_BOOTSTRAP_SERVERS"),
		"sasl.username":     os.Getenv("KAFKA_API_KEY"),
		"sasl.password":     os.Getenv("KAFKA_API_SECRET"),
		"security.protocol": "SASL_SSL",
		"sasl.mechanism":    "PLAIN",
	}

	var err error
	EventProducer, err = kafka.NewProducer(config)
	if err != nil {
		logger.Get().Error("failed to initialize Kafka producer",
			zap.String("bootstrap_servers", os.Getenv("KAFKA_BOOTSTRAP_SERVERS")),
			zap.Error(err))
		return err
	}

	logger.Get().Info("Kafka producer initialized successfully",
		zap.String("bootstrap_servers", os.Getenv("KAFKA_BOOTSTRAP_SERVERS")))
	return nil
}

func ProduceMessage(topic string, message []byte) error {
	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Value:          message,
	}

	err := EventProducer.Produce(msg, nil)
	if err != nil {
		logger.Get().Error("failed to produce message",
			zap.String("topic", topic),
			zap.Error(err))
		return err
	}

	logger.Get().Debug("message produced successfully",
		zap.String("topic", topic))
	return nil
}

// StartEventConsumer subscribes to the agent event topic and hands each
// message to the worker pool keyed by its Kafka partition, so events for one
// session are delivered in order.
func StartEventConsumer(pool *worker.WorkerPool) error {
	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":  os.Getenv("KAFKA_BOOTSTRAP_SERVERS"),
		"security.protocol":  "SASL_SSL",
		"sasl.mechanisms":    "PLAIN",
		"sasl.username":      os.Getenv("KAFKA_API_KEY"),
		"sasl.password":      os.Getenv("KAFKA_API_SECRET"),
		"session.timeout.ms": "45000",
		"client.id":          "travel-concierge-api",
		"group.id":           GroupID,
		"auto.offset.reset":  "latest",
	})
	if err != nil {
		logger.Get().Error("failed to create consumer",
			zap.String("bootstrap_servers", os.Getenv("KAFKA_BOOTSTRAP_SERVERS")),
			zap.Error(err))
		return err
	}

	err = consumer.Subscribe(EventTopic, nil)
	if err != nil {
		logger.Get().Error("failed to subscribe to topic",
			zap.String("topic", EventTopic),
			zap.Error(err))
		return err
	}

	logger.Get().Info("Kafka consumer started successfully",
		zap.String("topic", EventTopic),
		zap.String("group_id", GroupID))

	go func() {
		for {
			msg, err := consumer.ReadMessage(-1)
			if err != nil {
				logger.Get().Error("consumer error",
					zap.String("topic", EventTopic),
					zap.Error(err))
				continue
			}

			var event models.AgentEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				logger.Get().Error("failed to unmarshal agent event",
					zap.String("topic", EventTopic),
					zap.Error(err))
				continue
			}

			logger.Get().Debug("dispatching agent event",
				zap.String("session_id", event.SessionID),
				zap.Int32("partition", msg.TopicPartition.Partition))
			pool.Submit(msg.Value, msg.TopicPartition.Partition)
		}
	}()
	return nil
}
