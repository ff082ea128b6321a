package domain

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// layouts aceitos no campo timestamp; o gerador de dados grava ISO-8601 sem fuso
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

type Purchase struct {
	PurchaseID string    `json:"purchase_id"`
	CustomerID string    `json:"customer_id"`
	ProductID  string    `json:"product_id"`
	Quantity   int       `json:"quantity"`
	Price      float64   `json:"price"`
	Timestamp  time.Time `json:"timestamp"`
}

// Day normaliza o timestamp da compra para o dia em UTC, de modo que compras
// com offsets diferentes caiam no mesmo balde
func (p Purchase) Day() time.Time {
	y, m, d := p.Timestamp.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (p *Purchase) UnmarshalJSON(data []byte) error {
	type alias Purchase
	raw := struct {
		*alias
		Timestamp string `json:"timestamp"`
	}{alias: (*alias)(p)}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	ts, err := ParseTimestamp(raw.Timestamp)
	if err != nil {
		return fmt.Errorf("purchase %s: %w", p.PurchaseID, err)
	}
	p.Timestamp = ts

	return nil
}

// ParseTimestamp interpreta timestamps com ou sem fuso; sem fuso assume UTC
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}
