package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/quanticedge/profile-portal/internal/domain"
	"github.com/quanticedge/profile-portal/internal/mail"
	"github.com/quanticedge/profile-portal/internal/repository"
)

// notifyTimeout bounds background mail delivery, which runs detached
// from the request that triggered it.
const notifyTimeout = 30 * time.Second

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *TokenService
	notifier mail.Notifier

	// tracks in-flight notification goroutines so tests can drain them
	notifyWG sync.WaitGroup
}

func NewAuthService(userRepo repository.UserRepository, tokens *TokenService, notifier mail.Notifier) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		notifier: notifier,
	}
}

type RegisterInput struct {
	FullName    string
	Username    string
	Password    string
	Nickname    string
	Email       string
	Address     string
	Nationality string
	Zipcode     string
	Occupation  string
	About       string
	Gender      string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token    string
	FullName string
	IsAdmin  bool
}

// Register hashes the password, persists the record and dispatches the
// welcome and admin notifications. The store's unique indexes decide
// duplicate registration; on a duplicate no notification is sent.
// Notification delivery is fire-and-forget and never fails registration.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		FullName:     input.FullName,
		Username:     input.Username,
		PasswordHash: hashedPassword,
		Nickname:     input.Nickname,
		Email:        input.Email,
		Address:      input.Address,
		Nationality:  input.Nationality,
		Zipcode:      input.Zipcode,
		Occupation:   input.Occupation,
		About:        input.About,
		Gender:       input.Gender,
		IsAdmin:      false,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.notifyWG.Add(1)
	go func() {
		defer s.notifyWG.Done()
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.notifier.SendWelcome(ctx, user); err != nil {
			log.Printf("ERROR [AuthService.Register] welcome mail to %s failed: %v", user.Email, err)
		}
		if err := s.notifier.SendAdminAlert(ctx, user); err != nil {
			log.Printf("ERROR [AuthService.Register] admin mail for %s failed: %v", user.Email, err)
		}
	}()

	return user, nil
}

// Login verifies credentials and issues an access token. Unknown email
// and wrong password both report ErrInvalidCredentials so the response
// does not reveal which half failed.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPassword(input.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:    token,
		FullName: user.FullName,
		IsAdmin:  user.IsAdmin,
	}, nil
}

// WaitNotifications blocks until all in-flight notification goroutines
// finish. Test hook; production shutdown does not wait on mail.
func (s *AuthService) WaitNotifications() {
	s.notifyWG.Wait()
}
