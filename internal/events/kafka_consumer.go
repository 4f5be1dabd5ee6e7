package events

import (
	"context"
	"strings"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/gunpla-hub/service-storefront/internal/platform/kafka"
	"github.com/gunpla-hub/service-storefront/internal/proto/events"
)

// ShipmentHandler reacts to fulfillment progress on orders.
type ShipmentHandler interface {
	HandleShipmentDispatched(ctx context.Context, event events.ShipmentDispatchedEvent) error
	HandleShipmentDelivered(ctx context.Context, event events.ShipmentDeliveredEvent) error
}

// FulfillmentEventConsumer listens to fulfillment events and advances orders.
type FulfillmentEventConsumer struct {
	consumer *kafka.Consumer
	handler  ShipmentHandler
	logger   *zap.Logger
}

// NewFulfillmentEventConsumer creates a new consumer for fulfillment events.
func NewFulfillmentEventConsumer(
	brokers []string,
	groupID string,
	handler ShipmentHandler,
	logger *zap.Logger,
) *FulfillmentEventConsumer {
	consumer := kafka.NewConsumer(brokers, groupID, events.TopicFulfillmentEvents, logger)
	return &FulfillmentEventConsumer{
		consumer: consumer,
		handler:  handler,
		logger:   logger,
	}
}

// Start begins consuming fulfillment events. It blocks until the context is cancelled.
func (c *FulfillmentEventConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// handleMessage routes incoming Kafka messages to the appropriate handler.
func (c *FulfillmentEventConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	return c.dispatch(ctx, msg.Value)
}

func (c *FulfillmentEventConsumer) dispatch(ctx context.Context, value []byte) error {
	cloudEvent, err := kafka.ParseCloudEvent(value)
	if err != nil {
		c.logger.Error("failed to parse cloud event from fulfillment topic",
			zap.Error(err),
			zap.String("raw", string(value)),
		)
		return err
	}

	c.logger.Info("received fulfillment event",
		zap.String("type", cloudEvent.Type),
		zap.String("id", cloudEvent.ID),
	)

	switch {
	case strings.EqualFold(cloudEvent.Type, events.FulfillmentShipmentDispatched):
		var event events.ShipmentDispatchedEvent
		if err := cloudEvent.ParseData(&event); err != nil {
			c.logger.Error("failed to parse ShipmentDispatchedEvent data", zap.Error(err))
			return err
		}
		return c.handler.HandleShipmentDispatched(ctx, event)

	case strings.EqualFold(cloudEvent.Type, events.FulfillmentShipmentDelivered):
		var event events.ShipmentDeliveredEvent
		if err := cloudEvent.ParseData(&event); err != nil {
			c.logger.Error("failed to parse ShipmentDeliveredEvent data", zap.Error(err))
			return err
		}
		return c.handler.HandleShipmentDelivered(ctx, event)

	default:
		c.logger.Debug("ignoring unhandled fulfillment event type",
			zap.String("type", cloudEvent.Type),
		)
		return nil
	}
}

// Close closes the underlying Kafka consumer.
func (c *FulfillmentEventConsumer) Close() error {
	return c.consumer.Close()
}
