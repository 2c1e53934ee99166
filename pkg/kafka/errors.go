package kafka

import "errors"

var (
	ErrProducerClosed = errors.New("kafka producer is closed")
	ErrInvalidMessage = errors.New("invalid message")
	ErrEmptyKey       = errors.New("message key cannot be empty")
	ErrEmptyValue     = errors.New("message value cannot be empty")
	ErrNilConfig      = errors.New("kafka config cannot be nil")
	ErrNoBrokers      = errors.New("at least one broker is required")
	ErrEmptyTopic     = errors.New("topic cannot be empty")
)
