package authenticating

import "github.com/pkg/errors"

// ErrInvalidPassword é o único erro exposto pelo gate: a resposta ao cliente
// é sempre genérica, sem detalhar o motivo da recusa.
var ErrInvalidPassword = errors.New("senha incorreta")

// ErrMissingSecret indica configuração inválida: nem senha nem hash definidos.
var ErrMissingSecret = errors.New("nenhuma senha de administrador configurada")
