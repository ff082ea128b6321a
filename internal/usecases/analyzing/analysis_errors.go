package analyzing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/commerce-insights-api/pkg/apiErrors"
)

// Erros específicos das análises
var (
	// Erros de dados
	ErrNoData           = errors.New("no purchase data available")
	ErrInsufficientData = errors.New("need more data for trend analysis")
	ErrNoCompetitors    = errors.New("no competitor records to compare against")
	ErrInvoiceReference = errors.New("product or customer data for this sale is missing")

	// Erros de recurso
	ErrProductNotFound  = errors.New("product not found")
	ErrPurchaseNotFound = errors.New("purchase not found")

	// Erros de validação
	ErrInvalidWindow = errors.New("days must be between 1 and 365")
)

// AnalysisError é um erro com contexto adicional para as análises
type AnalysisError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *AnalysisError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError cria um AnalysisError com o código de API correspondente ao erro base
func NewAnalysisError(err error, details string) *AnalysisError {
	return &AnalysisError{
		Err:     err,
		Code:    codeFor(err),
		Details: details,
	}
}

func codeFor(err error) string {
	switch {
	case errors.Is(err, ErrNoData), errors.Is(err, ErrInsufficientData):
		return apiErrors.ErrNoData
	case errors.Is(err, ErrNoCompetitors):
		return apiErrors.ErrNoCompetitorData
	case errors.Is(err, ErrInvoiceReference):
		return apiErrors.ErrDataInconsistency
	case errors.Is(err, ErrProductNotFound):
		return apiErrors.ErrProductNotFound
	case errors.Is(err, ErrPurchaseNotFound):
		return apiErrors.ErrPurchaseNotFound
	case errors.Is(err, ErrInvalidWindow):
		return apiErrors.ErrInvalidRequest
	default:
		return apiErrors.ErrInternalServer
	}
}
