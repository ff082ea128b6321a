package insighting

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/pkg/log"
)

const unavailablePrefix = "Insight unavailable: "

type generation struct {
	text string
	err  error
}

// Narrate chama o gerador com timeout. Erro, timeout ou panic viram uma narração
// indisponível; o chamador continua devolvendo o resultado numérico.
func Narrate(ctx context.Context, generator Generator, timeout time.Duration, role string, data any) domain.Narration {
	if generator == nil {
		return unavailable(fmt.Errorf("no insight generator configured"))
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan generation, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- generation{err: fmt.Errorf("generator panic: %v", r)}
			}
		}()

		text, err := generator.Generate(ctx, role, data)
		done <- generation{text: text, err: err}
	}()

	select {
	case result := <-done:
		if result.err != nil {
			log.ForContext(ctx).WithError(result.err).Warn("insights: generator failed")
			return unavailable(result.err)
		}
		return domain.Narration{Text: result.text, Available: true}
	case <-ctx.Done():
		log.ForContext(ctx).WithError(ctx.Err()).Warn("insights: generator timed out")
		return unavailable(ctx.Err())
	}
}

func unavailable(err error) domain.Narration {
	return domain.Narration{
		Text:      unavailablePrefix + err.Error(),
		Available: false,
		Error:     err.Error(),
	}
}
