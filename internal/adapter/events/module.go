package events

import (
	"context"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"

	"github.com/polkiloo/careerpath/internal/config"
)

// Module exposes the event publisher to fx graph.
var Module = fx.Provide(newPublisher)

var dial = amqp.Dial

type publisherParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newPublisher(p publisherParams) (Publisher, error) {
	if p.Config.AMQPURL == "" {
		p.Logger.Info("event broker not configured, logging events")
		return NewLogPublisher(p.Logger), nil
	}

	conn, err := dial(p.Config.AMQPURL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return conn.Close()
		},
	})

	return NewAMQPPublisher(conn, p.Config.EventsQueue), nil
}
