package authenticating

import (
	"crypto/subtle"

	"github.com/totemfeedback/satisfaction-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// Authenticator é o gate de acesso ao painel administrativo. A verificação é
// stateless: nenhum token ou sessão é emitido, o cliente apenas lembra o
// resultado pelo resto da sessão.
type Authenticator interface {
	Login(password string) error
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
	}
}

// Login compara a senha informada com o segredo configurado. Quando um hash
// bcrypt está presente (ADMIN_PASSWORD_HASH), ele tem precedência sobre a
// senha em texto plano. Senha vazia só passa se for igual ao segredo.
func (s *Service) Login(password string) error {
	if hash := s.cfg.Auth.AdminPasswordHash; hash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
			return ErrInvalidPassword
		}
		return nil
	}

	secret := s.cfg.Auth.AdminPassword
	if secret == "" {
		return ErrMissingSecret
	}

	if subtle.ConstantTimeCompare([]byte(secret), []byte(password)) != 1 {
		return ErrInvalidPassword
	}

	return nil
}
