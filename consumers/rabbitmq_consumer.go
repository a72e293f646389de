package consumers

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"listing-app/domain"
)

// DefaultQueueName es la queue donde la API publica los cambios de propiedades
const DefaultQueueName = "properties_queue"

// PropertyMessage representa un mensaje sobre una propiedad
type PropertyMessage struct {
	Action     string            `json:"action"` // "create", "update", "delete"
	PropertyID domain.PropertyID `json:"property_id"`
}

// CatalogInvalidator es lo que el consumer necesita del catálogo
type CatalogInvalidator interface {
	InvalidateCatalog()
}

// RabbitMQConsumer consume los eventos de propiedades y limpia el caché del
// catálogo para que el próximo listado vaya a la API
type RabbitMQConsumer struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	queueName  string
	catalog    CatalogInvalidator
	logger     *zap.SugaredLogger
	started    bool
	done       chan struct{}
}

// NewRabbitMQConsumer conecta con RabbitMQ y declara la queue
func NewRabbitMQConsumer(rabbitURL, queueName string, catalog CatalogInvalidator, logger *zap.SugaredLogger) (*RabbitMQConsumer, error) {
	logger.Infof("Connecting to RabbitMQ")

	conn, err := amqp.Dial(rabbitURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if queueName == "" {
		queueName = DefaultQueueName
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	logger.Infof("Queue '%s' declared successfully", queueName)

	return newConsumer(conn, ch, queueName, catalog, logger), nil
}

func newConsumer(conn *amqp.Connection, ch *amqp.Channel, queueName string, catalog CatalogInvalidator, logger *zap.SugaredLogger) *RabbitMQConsumer {
	return &RabbitMQConsumer{
		connection: conn,
		channel:    ch,
		queueName:  queueName,
		catalog:    catalog,
		logger:     logger,
		done:       make(chan struct{}),
	}
}

// Start inicia el consumo de mensajes
func (c *RabbitMQConsumer) Start() error {
	// Un mensaje a la vez
	if err := c.channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	msgs, err := c.channel.Consume(
		c.queueName, // queue
		"",          // consumer
		false,       // auto-ack (manejamos manualmente)
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Infof("Consumer registered on queue '%s', waiting for messages...", c.queueName)

	c.run(msgs)
	return nil
}

func (c *RabbitMQConsumer) run(msgs <-chan amqp.Delivery) {
	c.started = true
	go c.consume(msgs)
}

func (c *RabbitMQConsumer) consume(msgs <-chan amqp.Delivery) {
	defer close(c.done)
	for msg := range msgs {
		c.processMessage(msg)
	}
}

// processMessage procesa un mensaje individual. Los mensajes inválidos se
// descartan sin requeue.
func (c *RabbitMQConsumer) processMessage(msg amqp.Delivery) {
	var propertyMsg PropertyMessage
	if err := json.Unmarshal(msg.Body, &propertyMsg); err != nil {
		c.logger.Warnw("Error unmarshaling message", "body", string(msg.Body), "error", err)
		c.nack(msg)
		return
	}

	if propertyMsg.PropertyID == "" {
		c.logger.Warnw("PropertyID is empty in message", "action", propertyMsg.Action)
		c.nack(msg)
		return
	}

	switch propertyMsg.Action {
	case "create", "update", "delete":
		c.catalog.InvalidateCatalog()
	default:
		c.logger.Warnw("Unknown action", "action", propertyMsg.Action, "property_id", propertyMsg.PropertyID)
		c.nack(msg)
		return
	}

	c.logger.Infof("Processed message: Action=%s, PropertyID=%s", propertyMsg.Action, propertyMsg.PropertyID)

	if err := msg.Ack(false); err != nil {
		c.logger.Errorw("Error acknowledging message", "error", err)
	}
}

func (c *RabbitMQConsumer) nack(msg amqp.Delivery) {
	if err := msg.Nack(false, false); err != nil {
		c.logger.Errorw("Error rejecting message", "error", err)
	}
}

// Close cierra el channel y la conexión. Si el consumo arrancó, espera a que
// termine el mensaje en curso.
func (c *RabbitMQConsumer) Close() error {
	var errs []error

	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing channel: %w", err))
		}
	}
	if c.connection != nil {
		if err := c.connection.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing connection: %w", err))
		}
	}

	// Al cerrar el channel se cierra msgs y el loop termina
	if c.started {
		<-c.done
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing RabbitMQ consumer: %v", errs)
	}

	c.logger.Infof("RabbitMQ consumer closed successfully")
	return nil
}

// Done se cierra cuando el loop de consumo termina. Si Start no se llamó
// nunca se cierra.
func (c *RabbitMQConsumer) Done() <-chan struct{} {
	return c.done
}
