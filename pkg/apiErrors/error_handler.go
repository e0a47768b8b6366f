package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos internos de erro. O cliente recebe apenas a mensagem; o código
// existe para mapear o status HTTP e para os logs do servidor.
const (
	// Erros de autenticação
	ErrInvalidPassword = "AUTH_001" // Senha incorreta

	// Erros de validação
	ErrInvalidRequest = "VAL_001" // Requisição inválida (corpo malformado)
	ErrInvalidLevel   = "VAL_002" // Nível de satisfação fora da enumeração
	ErrInvalidFormat  = "VAL_003" // Formato de exportação desconhecido
	ErrInvalidLimit   = "VAL_004" // Parâmetro limit não numérico

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidPassword:   http.StatusUnauthorized,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrInvalidLevel:      http.StatusBadRequest,
	ErrInvalidFormat:     http.StatusBadRequest,
	ErrInvalidLimit:      http.StatusBadRequest,
	ErrInternalServer:    http.StatusInternalServerError,
	ErrDatabaseOperation: http.StatusInternalServerError,
}

// APIError é o corpo de erro exposto pela API: {"error": "mensagem"}.
// Detalhes internos nunca chegam ao cliente, apenas aos logs.
type APIError struct {
	Error string `json:"error"`
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIError{Error: message})
}
