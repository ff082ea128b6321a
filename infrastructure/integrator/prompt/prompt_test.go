package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine(t *testing.T) {
	text, err := Combine("You are a CA.", map[string]float64{"net_profit": 60})
	require.NoError(t, err)

	assert.Equal(t, "ROLE: You are a CA.\n\nDATA CONTEXT:\n{\n  \"net_profit\": 60\n}\n\n"+Task, text)
}

func TestDataContext_Unsupported(t *testing.T) {
	_, err := DataContext(make(chan int))
	assert.Error(t, err)
}
