package config

import "os"

const (
	amqpURLEnv        = "AMQP_URL"
	pushExchangeEnv   = "PUSH_EXCHANGE"
	pushRoutingKeyEnv = "PUSH_ROUTING_KEY"

	defaultPushExchange   = "notifications"
	defaultPushRoutingKey = "push.water_reminder"
)

type PushConfig struct {
	// AMQPURL enables the RabbitMQ push publisher; empty falls back to the
	// no-op sender.
	AMQPURL    string
	Exchange   string
	RoutingKey string
}

func LoadPushConfig() *PushConfig {
	exchange := os.Getenv(pushExchangeEnv)
	if exchange == "" {
		exchange = defaultPushExchange
	}

	routingKey := os.Getenv(pushRoutingKeyEnv)
	if routingKey == "" {
		routingKey = defaultPushRoutingKey
	}

	return &PushConfig{
		AMQPURL:    os.Getenv(amqpURLEnv),
		Exchange:   exchange,
		RoutingKey: routingKey,
	}
}
