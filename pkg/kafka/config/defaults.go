package kafka_config

import "time"

const (
	// Empty brokers disable event publishing.
	DefaultKafkaBrokers  = ""
	DefaultKafkaTopic    = "freezestore.events"
	DefaultKafkaDLQTopic = "freezestore.events.dlq"

	DefaultProducerMaxAttempts  = 3
	DefaultProducerBatchTimeout = 10 * time.Millisecond
	DefaultProducerRequireAcks  = -1
	DefaultProducerCompression  = "snappy"
	DefaultProducerAsync        = false
	DefaultPublishTimeout       = 5 * time.Second
)
