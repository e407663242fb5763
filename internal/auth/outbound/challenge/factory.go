package challenge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/gofolio/internal/pkg/clock"
)

const (
	// DriverMemory selects the in-process store.
	DriverMemory = "memory"
	// DriverRedis selects the redis-backed store.
	DriverRedis = "redis"
)

var (
	// ErrUnknownDriver indicates an unsupported challenge store driver.
	ErrUnknownDriver = errors.New("challenge: unknown driver")
	// ErrRedisClientRequired is returned when the redis driver is
	// selected without a client.
	ErrRedisClientRequired = errors.New("challenge: redis client is required")
)

// NewFromDriver constructs a Store by driver name. An empty driver
// selects the in-process store.
func NewFromDriver(driver string, client *redis.Client, clk clock.Clocker) (Store, error) {
	switch strings.TrimSpace(driver) {
	case DriverMemory, "":
		return NewMemory(clk), nil
	case DriverRedis:
		if client == nil {
			return nil, ErrRedisClientRequired
		}
		return NewRedis(client, clk), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
}
