package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/quanticedge/profile-portal/internal/domain"
	"github.com/quanticedge/profile-portal/internal/repository/postgres"
	"github.com/quanticedge/profile-portal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	existing, _ := testutil.NewUserBuilder().
		WithUsername("taken").
		WithEmail("taken@example.com").
		Build(t, testDB.DB)

	tests := []struct {
		name     string
		username string
		email    string
		wantErr  error
	}{
		{
			name:     "successful creation",
			username: "fresh",
			email:    "fresh@example.com",
		},
		{
			name:     "duplicate email",
			username: "someoneelse",
			email:    existing.Email,
			wantErr:  domain.ErrDuplicateEmail,
		},
		{
			name:     "duplicate username",
			username: existing.Username,
			email:    "unused@example.com",
			wantErr:  domain.ErrDuplicateUsername,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &domain.User{
				ID:           uuid.New(),
				FullName:     "Repo Test",
				Username:     tt.username,
				PasswordHash: "hashedpassword",
				Nickname:     "repo",
				Email:        tt.email,
				Address:      "1 Repo Road",
				Nationality:  "Testland",
				Zipcode:      "11111",
				Occupation:   "Tester",
				About:        "repository test",
				Gender:       "other",
			}

			err := repo.Create(ctx, user)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithEmail("findme@example.com").
		Build(t, testDB.DB)

	got, err := repo.GetByEmail(ctx, "findme@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = repo.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_GetByID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_GetAll(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	testutil.NewUserBuilder().Build(t, testDB.DB)
	testutil.NewUserBuilder().Build(t, testDB.DB)
	testutil.NewUserBuilder().Build(t, testDB.DB)

	users, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestUserRepository_Delete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	require.NoError(t, repo.Delete(ctx, user.ID))

	_, err := repo.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
