package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/AsadUllahBilal/TechThrive/config"
	"github.com/AsadUllahBilal/TechThrive/internal/dto"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

func CreateKafkaProducer(config *config.Config) *kafka.Conn {
	conn, err := kafka.DialLeader(context.Background(), "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.BrokerTopic, config.KafkaConfig.BrokerPartition)
	if err != nil {
		panic(err)
	}

	return conn
}

// Publisher wraps the raw producer conn so services can publish domain
// events without knowing about the broker.
type Publisher struct {
	conn *kafka.Conn
}

func CreatePublisher(conn *kafka.Conn) *Publisher {
	return &Publisher{conn: conn}
}

func (p *Publisher) Publish(ctx context.Context, key string, eventType string, data interface{}) error {
	kafkaMsg := dto.EventMessage{
		EventType: eventType,
		Data:      data,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		return err
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		_, err = p.conn.WriteMessages(kafka.Message{
			Key:   []byte(key),
			Value: jsonMsg,
		})
		if err == nil {
			break
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "Publish").Msg("")
		time.Sleep(time.Second * time.Duration(i+1))
	}

	return err
}
