package insighting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/commerce-insights-api/internal/usecases/insighting/mocks"
)

type panicGenerator struct{}

func (panicGenerator) Generate(context.Context, string, any) (string, error) {
	panic("provider exploded")
}

type slowGenerator struct{}

func (slowGenerator) Generate(ctx context.Context, _ string, _ any) (string, error) {
	<-ctx.Done()
	time.Sleep(10 * time.Millisecond)
	return "too late", nil
}

func TestNarrate(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := mocks.NewMockGenerator(ctrl)

	tests := []struct {
		name              string
		setup             func()
		expectedAvailable bool
		expectedText      string
	}{
		{
			name: "success",
			setup: func() {
				generator.EXPECT().Generate(gomock.Any(), RoleCASummary, "payload").Return("Healthy quarter.", nil)
			},
			expectedAvailable: true,
			expectedText:      "Healthy quarter.",
		},
		{
			name: "provider error",
			setup: func() {
				generator.EXPECT().Generate(gomock.Any(), RoleCASummary, "payload").Return("", errors.New("quota exceeded"))
			},
			expectedAvailable: false,
			expectedText:      "Insight unavailable: quota exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			narration := Narrate(context.Background(), generator, time.Second, RoleCASummary, "payload")

			assert.Equal(t, tt.expectedAvailable, narration.Available)
			assert.Equal(t, tt.expectedText, narration.Text)
		})
	}
}

func TestNarrateRecoversPanic(t *testing.T) {
	narration := Narrate(context.Background(), panicGenerator{}, time.Second, RoleGrowthAnalyst, nil)

	assert.False(t, narration.Available)
	assert.Contains(t, narration.Text, "Insight unavailable: generator panic: provider exploded")
}

func TestNarrateTimeout(t *testing.T) {
	narration := Narrate(context.Background(), slowGenerator{}, 20*time.Millisecond, RoleGrowthAnalyst, nil)

	assert.False(t, narration.Available)
	assert.Equal(t, context.DeadlineExceeded.Error(), narration.Error)
}

func TestNarrateWithoutGenerator(t *testing.T) {
	narration := Narrate(context.Background(), nil, time.Second, RoleGrowthAnalyst, nil)

	assert.False(t, narration.Available)
	assert.Equal(t, "Insight unavailable: no insight generator configured", narration.Text)
}
