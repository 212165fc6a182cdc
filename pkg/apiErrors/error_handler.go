package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrMethodNotAllowed    = "VAL_004" // Método HTTP não suportado pela rota

	// Erros de dados (4000-4999)
	ErrNotFound    = "DATA_001" // Recurso não encontrado
	ErrNoChartData = "DATA_002" // Seleção sem dados para o gráfico

	// Erros do servidor (5000-5999)
	ErrInternalServer   = "SRV_001" // Erro interno do servidor
	ErrRenderFailure    = "SRV_002" // Falha ao gerar gráfico ou planilha
	ErrServiceDisabled  = "SRV_003" // Serviço desabilitado
	ErrJobAlreadyActive = "SRV_004" // Job já em execução
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrNotFound:            http.StatusNotFound,
	ErrNoChartData:         http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrRenderFailure:       http.StatusInternalServerError,
	ErrServiceDisabled:     http.StatusServiceUnavailable,
	ErrJobAlreadyActive:    http.StatusConflict,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor retorna o status HTTP de um código de erro
func StatusFor(code string) int {
	if status, exists := httpStatusMap[code]; exists {
		return status
	}
	return http.StatusInternalServerError
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
	if err := json.NewEncoder(w).Encode(apiErr); err != nil {
		logrus.WithError(err).Warn("apiErrors: falha ao escrever resposta de erro")
	}
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
