package domain

import "time"

type RestockEmail struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Body    string `json:"body" validate:"required"`
}

type DeliveryStatus string

const (
	DeliverySent  DeliveryStatus = "sent"
	DeliverySaved DeliveryStatus = "saved"
)

type EmailDelivery struct {
	Status DeliveryStatus `json:"status"`
	Path   string         `json:"path,omitempty"`
}

// OutboxRecord é o registro gravado no arquivo de saída quando o SMTP não está disponível
type OutboxRecord struct {
	ID        string    `json:"id"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
