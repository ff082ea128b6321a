package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de dados (1000-1999)
	ErrDataUnavailable   = "DATA_001" // Snapshot de dados não pôde ser carregado
	ErrNoData            = "DATA_002" // Nenhum dado de compra disponível
	ErrNoCompetitorData  = "DATA_003" // Dados de concorrentes ausentes
	ErrDataInconsistency = "DATA_004" // Referência quebrada entre entidades

	// Erros de recurso (3000-3999)
	ErrProductNotFound  = "RES_001" // Produto não encontrado
	ErrPurchaseNotFound = "RES_002" // Compra não encontrada
	ErrCustomerNotFound = "RES_003" // Cliente não encontrado
	ErrRouteNotFound    = "RES_004" // Rota inexistente

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrMethodNotAllowed    = "VAL_004" // Método HTTP não suportado na rota

	// Erros do servidor (5000-5999)
	ErrInternalServer       = "SRV_001" // Erro interno do servidor
	ErrStorageOperation     = "SRV_002" // Erro ao gravar arquivo
	ErrExternalService      = "SRV_003" // Erro em serviço externo
	ErrAssistantUnavailable = "SRV_004" // Assistente indisponível
	ErrSyncInProgress       = "SRV_005" // Sincronização já em andamento
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrDataUnavailable:      http.StatusInternalServerError,
	ErrNoData:               http.StatusInternalServerError,
	ErrNoCompetitorData:     http.StatusInternalServerError,
	ErrDataInconsistency:    http.StatusInternalServerError,
	ErrProductNotFound:      http.StatusNotFound,
	ErrPurchaseNotFound:     http.StatusNotFound,
	ErrCustomerNotFound:     http.StatusNotFound,
	ErrRouteNotFound:        http.StatusNotFound,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrMissingRequiredData:  http.StatusBadRequest,
	ErrInvalidFormat:        http.StatusBadRequest,
	ErrMethodNotAllowed:     http.StatusMethodNotAllowed,
	ErrInternalServer:       http.StatusInternalServerError,
	ErrStorageOperation:     http.StatusInternalServerError,
	ErrExternalService:      http.StatusBadGateway,
	ErrAssistantUnavailable: http.StatusInternalServerError,
	ErrSyncInProgress:       http.StatusConflict,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
