package usecase

import (
	"context"
	"net/url"
	"strings"

	"github.com/akshop/go-backend/internal/cfg"
	"github.com/akshop/go-backend/internal/domain"
	"github.com/akshop/go-backend/pkg/e"
	"github.com/akshop/go-backend/pkg/logger"
	"github.com/google/uuid"
)

const avatarBaseURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="

// SessionUseCase управляет сессиями. Постоянного хранилища аккаунтов нет:
// вход с любой парой имя+email создает новую идентичность. Исключение —
// адрес администратора, для которого проверяется пароль.
type SessionUseCase struct {
	sessionRepo  SessionRepository
	settingsRepo SettingsRepository
	shop         *cfg.ShopCfg
	logger       logger.Logger
}

func NewSessionUC(
	sessionRepo SessionRepository,
	settingsRepo SettingsRepository,
	shop *cfg.ShopCfg,
	logger logger.Logger,
) *SessionUseCase {
	return &SessionUseCase{
		sessionRepo:  sessionRepo,
		settingsRepo: settingsRepo,
		shop:         shop,
		logger:       logger,
	}
}

// Login создает сессию. Email администратора (без учета регистра) требует
// совпадения пароля с переопределением из настроек магазина либо с паролем
// из конфигурации. Неверный пароль администратора — отказ без смены состояния.
func (s *SessionUseCase) Login(ctx context.Context, req *LoginReq) (*LoginRes, error) {
	const op = "SessionUseCase.Login"

	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || email == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	isAdmin := email == strings.ToLower(s.shop.AdminEmail)
	if isAdmin {
		adminPass := s.shop.AdminPassword
		if override := s.settingsRepo.Settings().AdminPassword; override != "" {
			adminPass = override
		}

		if req.Password != adminPass {
			s.logger.Warnf("admin login rejected for %s", email)
			return nil, e.Wrap(op, e.ErrWrongAdminPass)
		}
	}

	user := domain.NewUser(uuid.NewString(), name, email, avatarBaseURL+url.QueryEscape(name), isAdmin)

	token := uuid.NewString()
	s.sessionRepo.PutSession(token, user)
	s.logger.Infof("session created for %s (admin=%t)", email, isAdmin)

	return &LoginRes{Token: token, User: *user}, nil
}

// Logout уничтожает сессию. Неизвестный токен — успешный no-op.
func (s *SessionUseCase) Logout(ctx context.Context, token string) {
	s.sessionRepo.DeleteSession(token)
}

// Resolve возвращает идентичность по токену сессии.
func (s *SessionUseCase) Resolve(ctx context.Context, token string) (*domain.User, bool) {
	if token == "" {
		return nil, false
	}

	return s.sessionRepo.SessionUser(token)
}
