package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		places   int32
		expected float64
	}{
		{name: "zero", value: 0, places: 2, expected: 0},
		{name: "half up", value: 2.675, places: 2, expected: 2.68},
		{name: "three places", value: 1.23456, places: 3, expected: 1.235},
		{name: "negative", value: -3.14159, places: 2, expected: -3.14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Round(tt.value, tt.places))
		})
	}
}

func TestMoney(t *testing.T) {
	assert.Equal(t, 9.0, Money(decimal.NewFromInt(60).Mul(decimal.NewFromFloat(0.15))))
	assert.Equal(t, 47.99, RoundWithTwoDecimalPlace(47.99000001))
}

func TestPrettyJSON(t *testing.T) {
	out, ok := PrettyJSON(`{"a":1}`)
	assert.True(t, ok)
	assert.Equal(t, "{\n  \"a\": 1\n}", out)

	out, ok = PrettyJSON("plain text")
	assert.False(t, ok)
	assert.Equal(t, "plain text", out)
}
