package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/quanticedge/profile-portal/internal/domain"
	"github.com/quanticedge/profile-portal/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	FullName    string `json:"fullname"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	Nickname    string `json:"nickname"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Nationality string `json:"nationality"`
	Zipcode     string `json:"zipcode"`
	Occupation  string `json:"occupation"`
	About       string `json:"about"`
	Gender      string `json:"gender"`
}

func (req *RegisterRequest) validate() bool {
	fields := []string{
		req.FullName, req.Username, req.Password, req.Nickname,
		req.Email, req.Address, req.Nationality, req.Zipcode,
		req.Occupation, req.About, req.Gender,
	}
	for _, f := range fields {
		if f == "" {
			return false
		}
	}
	return true
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	FullName string `json:"fullName"`
	Admin    bool   `json:"admin"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !req.validate() {
		writeMessage(w, http.StatusBadRequest, "All profile fields are required")
		return
	}

	_, err := h.authService.Register(r.Context(), service.RegisterInput{
		FullName:    req.FullName,
		Username:    req.Username,
		Password:    req.Password,
		Nickname:    req.Nickname,
		Email:       req.Email,
		Address:     req.Address,
		Nationality: req.Nationality,
		Zipcode:     req.Zipcode,
		Occupation:  req.Occupation,
		About:       req.About,
		Gender:      req.Gender,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			writeMessage(w, http.StatusBadRequest, "Email is already in Use")
		case errors.Is(err, domain.ErrDuplicateUsername):
			writeMessage(w, http.StatusBadRequest, "Username is already in Use")
		default:
			log.Printf("ERROR [AuthHandler.Register] %v", err)
			writeMessage(w, http.StatusInternalServerError, "Registration failed")
		}
		return
	}

	writeMessage(w, http.StatusCreated, "User registered successfully")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Printf("ERROR [AuthHandler.Login] %v", err)
		writeMessage(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Message:  "Login successful",
		Token:    result.Token,
		FullName: result.FullName,
		Admin:    result.IsAdmin,
	})
}
