// publisher.go
package rabbit

import (
	"context"
	"encoding/json"
	"time"

	"toy-store-backend/internal/model"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const exchangeName = "order_events"

// OrderEvent es el mensaje que se publica en el exchange fanout order_events
// para los servicios que siguen el ciclo de vida de las órdenes
// (notificaciones, tracking de estados, etc.).
type OrderEvent struct {
	Event          string    `json:"event"`
	OrderID        string    `json:"orderId"`
	UserID         string    `json:"userId"`
	DeliveryStatus string    `json:"deliveryStatus"`
	IsPaid         bool      `json:"isPaid"`
	TotalPrice     float64   `json:"totalPrice"`
	Timestamp      time.Time `json:"timestamp"`
}

type Publisher struct {
	ch     *amqp091.Channel
	logger *zap.Logger
}

// NewPublisher declara el exchange fanout y deja el canal listo.
func NewPublisher(ch *amqp091.Channel, logger *zap.Logger) (*Publisher, error) {
	err := ch.ExchangeDeclare(
		exchangeName,
		"fanout",
		true,  // durable
		false, // auto-delete
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}
	return &Publisher{ch: ch, logger: logger}, nil
}

// PublishOrderEvent publica el evento en fire-and-forget. Si Rabbit falla
// se loguea y listo: los eventos no pueden voltear el request.
func (p *Publisher) PublishOrderEvent(event string, o *model.Order) {
	body, err := json.Marshal(OrderEvent{
		Event:          event,
		OrderID:        o.ID.Hex(),
		UserID:         o.User.Hex(),
		DeliveryStatus: string(o.DeliveryStatus),
		IsPaid:         o.IsPaid,
		TotalPrice:     o.TotalPrice,
		Timestamp:      time.Now().UTC(),
	})
	if err != nil {
		p.logger.Error("no se pudo serializar el evento", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = p.ch.PublishWithContext(ctx,
		exchangeName,
		"", // fanout ignora routing key
		false,
		false,
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		p.logger.Error("no se pudo publicar el evento",
			zap.String("event", event),
			zap.String("order_id", o.ID.Hex()),
			zap.Error(err))
		return
	}

	p.logger.Info("evento publicado",
		zap.String("event", event),
		zap.String("order_id", o.ID.Hex()))
}
