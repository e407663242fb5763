package messaging

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DriverNone selects the no-op backend.
	DriverNone = "none"
	// DriverNATS selects the NATS backend.
	DriverNATS = "nats"
	// DriverKafka selects the Kafka backend.
	DriverKafka = "kafka"
)

// ErrUnknownDriver indicates an unsupported messaging driver.
var ErrUnknownDriver = errors.New("messaging: unknown driver")

// FactoryOptions groups config for supported messaging backends.
type FactoryOptions struct {
	// Kafka provides configuration for the Kafka driver.
	Kafka KafkaConfig
	// NATS provides configuration for the NATS driver.
	NATS NATSConfig
}

// NewFromDriver constructs a Publisher by driver name. An empty driver
// selects the no-op backend.
func NewFromDriver(driver string, opts FactoryOptions) (Publisher, error) {
	switch strings.TrimSpace(driver) {
	case DriverNone, "":
		return NewNoop(), nil
	case DriverKafka:
		return NewKafka(opts.Kafka)
	case DriverNATS:
		return NewNATS(opts.NATS)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
}
