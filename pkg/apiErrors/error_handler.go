package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro padronizados da API
const (
	// Erros de autenticação
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidHorizon      = "VAL_004" // Horizonte de previsão fora do intervalo
	ErrRouteNotFound       = "VAL_005" // Rota inexistente

	// Erros de previsão
	ErrInsufficientData = "FCT_001" // Poucas datas distintas para treinar o modelo
	ErrEmptyChart       = "FCT_002" // Sem dados suficientes para desenhar o gráfico

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrDatasetLoad    = "SRV_002" // Erro ao carregar o dataset
	ErrRender         = "SRV_003" // Erro ao renderizar gráfico ou página
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidHorizon:        http.StatusBadRequest,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrInsufficientData:      http.StatusUnprocessableEntity,
	ErrEmptyChart:            http.StatusUnprocessableEntity,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatasetLoad:           http.StatusInternalServerError,
	ErrRender:                http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	APIError{
		Code:    code,
		Message: message,
		Details: details,
	}.Write(w)
}

// Write serializa o erro com o status HTTP do seu código
func (e APIError) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(e.Code))
	_ = json.NewEncoder(w).Encode(e)
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
