package service

import (
	"github.com/quanticedge/profile-portal/internal/config"
	"github.com/quanticedge/profile-portal/internal/mail"
	"github.com/quanticedge/profile-portal/internal/repository"
)

type Services struct {
	Auth  *AuthService
	Token *TokenService
	User  *UserService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, notifier mail.Notifier) *Services {
	tokens := NewTokenService(cfg.JWTSecret, cfg.TokenTTL())
	return &Services{
		Auth:  NewAuthService(repos.User, tokens, notifier),
		Token: tokens,
		User:  NewUserService(repos.User),
	}
}
