package service

import (
	"context"
	"errors"
	"time"
	"unicode"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	chavePinAdmin = "admin_pin"
	// adminSessionPrefix namespaces the session tokens in Redis.
	adminSessionPrefix = "admin_session:"
)

type ConfigService interface {
	Get(ctx context.Context, chave, padrao string) (string, error)
	Set(ctx context.Context, chave, valor string, descricao *string) error
	GetPin(ctx context.Context) (string, error)
	SetPin(ctx context.Context, pin string) error
	// VerifyPin compares the informed PIN with the stored one. On success it
	// issues a short-lived admin session token kept in Redis.
	VerifyPin(ctx context.Context, pin string) (token string, ok bool, err error)
}

type configService struct {
	repo repository.ConfigRepository
	rdb  *redis.Client
	ttl  time.Duration
}

func NewConfigService(repo repository.ConfigRepository, rdb *redis.Client, sessionTTL time.Duration) ConfigService {
	return &configService{repo: repo, rdb: rdb, ttl: sessionTTL}
}

func (s *configService) Get(ctx context.Context, chave, padrao string) (string, error) {
	cfg, err := s.repo.Find(ctx, chave)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return padrao, nil
		}
		return "", &PersistenceError{Op: "ler configuração", Err: err}
	}
	return cfg.Valor, nil
}

func (s *configService) Set(ctx context.Context, chave, valor string, descricao *string) error {
	if chave == "" {
		return validationf("chave de configuração é obrigatória")
	}
	if err := s.repo.Upsert(ctx, chave, valor, descricao); err != nil {
		return &PersistenceError{Op: "gravar configuração", Err: err}
	}
	return nil
}

func (s *configService) GetPin(ctx context.Context) (string, error) {
	return s.Get(ctx, chavePinAdmin, "1234")
}

func (s *configService) SetPin(ctx context.Context, pin string) error {
	if !pinValido(pin) {
		return validationf("PIN deve ter exatamente 4 dígitos numéricos")
	}
	descricao := "PIN de acesso ao painel administrativo"
	return s.Set(ctx, chavePinAdmin, pin, &descricao)
}

func (s *configService) VerifyPin(ctx context.Context, pin string) (string, bool, error) {
	if pin == "" {
		return "", false, validationf("PIN é obrigatório")
	}
	atual, err := s.GetPin(ctx)
	if err != nil {
		return "", false, err
	}
	if pin != atual {
		return "", false, nil
	}

	token := uuid.NewString()
	if s.rdb != nil {
		if err := s.rdb.Set(ctx, adminSessionPrefix+token, "1", s.ttl).Err(); err != nil {
			return "", false, &PersistenceError{Op: "criar sessão administrativa", Err: err}
		}
	}
	return token, true, nil
}

// IsAdminSession reports whether the token belongs to a live admin session.
func IsAdminSession(ctx context.Context, rdb *redis.Client, token string) bool {
	if token == "" || rdb == nil {
		return false
	}
	n, err := rdb.Exists(ctx, adminSessionPrefix+token).Result()
	return err == nil && n > 0
}

func pinValido(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
