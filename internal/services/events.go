package services

// EventPublisher publishes a storefront event with a JSON-marshalable
// payload. *rabbitmq.Client satisfies it; services accept nil to run
// without a broker.
type EventPublisher interface {
	Publish(eventType string, payload interface{}) error
}
