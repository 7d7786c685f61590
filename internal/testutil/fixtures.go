package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/quanticedge/profile-portal/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username string
	email    string
	password string
	isAdmin  bool
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		username: fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

// WithEmail sets the email address
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// AsAdmin marks the user as an administrator
func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.isAdmin = true
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		FullName:     "Test User",
		Username:     b.username,
		PasswordHash: string(hashedPassword),
		Nickname:     "tester",
		Email:        b.email,
		Address:      "1 Test Street",
		Nationality:  "Testland",
		Zipcode:      "00000",
		Occupation:   "Engineer",
		About:        "Created by tests",
		Gender:       "other",
		IsAdmin:      b.isAdmin,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// LoginResponse matches the API login response
type LoginResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	FullName string `json:"fullName"`
	Admin    bool   `json:"admin"`
}

// BuildAndLogin creates a user in the database and logs in via the API,
// returning the user and a bearer token.
func (b *UserBuilder) BuildAndLogin(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, rawPassword := b.Build(t, ts.DB.DB)

	reqBody := map[string]string{
		"email":    user.Email,
		"password": rawPassword,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/login"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to log in: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var loginResp LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	return user, loginResp.Token
}

// RegisterRequest builds a valid registration payload for the API.
func RegisterRequest(username, email, password string) map[string]string {
	return map[string]string{
		"fullname":    "Test User",
		"username":    username,
		"password":    password,
		"nickname":    "tester",
		"email":       email,
		"address":     "1 Test Street",
		"nationality": "Testland",
		"zipcode":     "00000",
		"occupation":  "Engineer",
		"about":       "Created by tests",
		"gender":      "other",
	}
}
