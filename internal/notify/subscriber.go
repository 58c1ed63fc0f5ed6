package notify

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	"restaurant-deluxe/internal/common/logger"
	"restaurant-deluxe/internal/config"
	"restaurant-deluxe/internal/connections/rabbitmq"
	"restaurant-deluxe/internal/domain"
)

// Run consumes lifecycle events from the orders_events fanout and logs them
// for the kitchen/staff displays. Each subscriber gets its own exclusive
// queue, so every display sees every event.
func Run(ctx context.Context, cfg config.RabbitMQConfig) error {
	lg := logger.New("notification-subscriber")

	client, err := rabbitmq.Dial(cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	ch := client.Channel()
	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return err
	}
	if err := ch.QueueBind(q.Name, "", rabbitmq.EventsExchange, false, nil); err != nil {
		return err
	}

	msgs, err := ch.Consume(q.Name, "", false, true, false, false, nil)
	if err != nil {
		return err
	}
	lg.Info("subscribed", map[string]any{"queue": q.Name, "exchange": rabbitmq.EventsExchange})

	for {
		select {
		case <-ctx.Done():
			lg.Info("graceful_shutdown", nil)
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			handleDelivery(lg, d)
		}
	}
}

func handleDelivery(lg *logger.Logger, d amqp.Delivery) {
	var ev domain.OrderEvent
	if err := json.Unmarshal(d.Body, &ev); err != nil {
		lg.Error("event_decode_failed", err, nil)
		_ = d.Nack(false, false)
		return
	}
	lg.Info("order_event", map[string]any{
		"event":    ev.Event,
		"order_id": ev.OrderID,
		"table":    ev.Table,
		"status":   string(ev.Status),
	})
	_ = d.Ack(false)
}
