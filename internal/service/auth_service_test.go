package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/quanticedge/profile-portal/internal/domain"
	"github.com/quanticedge/profile-portal/internal/mail"
	"github.com/quanticedge/profile-portal/internal/repository/postgres"
	"github.com/quanticedge/profile-portal/internal/service"
	"github.com/quanticedge/profile-portal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerInput(username, email string) service.RegisterInput {
	return service.RegisterInput{
		FullName:    "Service Test",
		Username:    username,
		Password:    "password123",
		Nickname:    "svc",
		Email:       email,
		Address:     "1 Service Street",
		Nationality: "Testland",
		Zipcode:     "22222",
		Occupation:  "Tester",
		About:       "service test",
		Gender:      "other",
	}
}

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	notifier := &mail.Recorder{}
	authService := service.NewAuthService(repos.User, service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL()), notifier)
	ctx := context.Background()

	user, err := authService.Register(ctx, registerInput("newuser", "newuser@example.com"))
	require.NoError(t, err)

	// stored hash is not the plaintext but verifies against it
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.True(t, service.CheckPassword("password123", user.PasswordHash))
	assert.False(t, user.IsAdmin)

	stored, err := repos.User.GetByEmail(ctx, "newuser@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)

	authService.WaitNotifications()
	assert.Equal(t, []string{"newuser@example.com"}, notifier.Welcomes)
	assert.Equal(t, []string{"newuser@example.com"}, notifier.AdminAlerts)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	notifier := &mail.Recorder{}
	authService := service.NewAuthService(repos.User, service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL()), notifier)
	ctx := context.Background()

	testutil.NewUserBuilder().
		WithEmail("dup@example.com").
		Build(t, testDB.DB)

	_, err := authService.Register(ctx, registerInput("otheruser", "dup@example.com"))
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	// no notification for a failed registration
	authService.WaitNotifications()
	assert.Zero(t, notifier.Sent())
}

func TestAuthService_Register_NotificationFailureDoesNotFailRegistration(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	notifier := &mail.Recorder{Err: errors.New("smtp relay unreachable")}
	authService := service.NewAuthService(repos.User, service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL()), notifier)
	ctx := context.Background()

	user, err := authService.Register(ctx, registerInput("mailless", "mailless@example.com"))
	require.NoError(t, err)
	authService.WaitNotifications()

	// the record stays persisted even though delivery failed
	stored, err := repos.User.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "mailless@example.com", stored.Email)
	assert.Zero(t, notifier.Sent())
}

func TestAuthService_Register_ConcurrentDuplicates(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL()), &mail.Recorder{})
	ctx := context.Background()

	const attempts = 2
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			input := registerInput("racer"+string(rune('a'+i)), "race@example.com")
			_, errs[i] = authService.Register(ctx, input)
		}(i)
	}
	wg.Wait()

	var successes, duplicates int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, domain.ErrDuplicateEmail):
			duplicates++
		}
	}
	assert.Equal(t, 1, successes, "exactly one concurrent registration must win")
	assert.Equal(t, attempts-1, duplicates)
}

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL())
	authService := service.NewAuthService(repos.User, tokens, &mail.Recorder{})
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("login@example.com").
		WithPassword("correctpassword").
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		input   service.LoginInput
		wantErr error
	}{
		{
			name: "successful login",
			input: service.LoginInput{
				Email:    user.Email,
				Password: rawPassword,
			},
		},
		{
			name: "wrong password",
			input: service.LoginInput{
				Email:    user.Email,
				Password: "wrongpassword",
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name: "unknown email",
			input: service.LoginInput{
				Email:    "nobody@example.com",
				Password: "anypassword",
			},
			wantErr: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := authService.Login(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.FullName, result.FullName)
			assert.False(t, result.IsAdmin)

			claims, err := tokens.Verify(result.Token)
			require.NoError(t, err)
			gotID, err := claims.UserID()
			require.NoError(t, err)
			assert.Equal(t, user.ID, gotID)
			assert.Equal(t, user.Email, claims.Email)
		})
	}
}
