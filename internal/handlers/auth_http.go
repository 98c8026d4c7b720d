package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/609harsh/realtor-app/internal/middleware"
	"github.com/609harsh/realtor-app/internal/models"
	"github.com/609harsh/realtor-app/internal/repository"
	"github.com/609harsh/realtor-app/internal/service"
	"github.com/609harsh/realtor-app/internal/utils"
)

var phoneRe = regexp.MustCompile(`^(\+\d{1,2}\s)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}$`)

type AuthHTTP struct {
	svc *service.AuthService
}

func NewAuthHTTP(s *service.AuthService) *AuthHTTP {
	return &AuthHTTP{svc: s}
}

type signupRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	ProductKey string `json:"productKey"`
}

func (r signupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Phone, validation.Required, validation.Match(phoneRe).Error("must be a valid phone number")),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(5, 100)),
	)
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r signinRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type productKeyRequest struct {
	Email    string `json:"email"`
	UserType string `json:"userType"`
}

func (r productKeyRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.UserType, validation.Required, validation.By(func(v any) error {
			_, err := models.ParseRole(v.(string))
			return err
		})),
	)
}

type tokenResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// POST /api/auth/signup/{userType}
func (h *AuthHTTP) Signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, err := models.ParseRole(chi.URLParam(r, "userType"))
		if err != nil {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		var in signupRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := in.Validate(); err != nil {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		tok, u, err := h.svc.Signup(r.Context(), service.SignupInput{
			Name: in.Name, Phone: in.Phone, Email: in.Email,
			Password: in.Password, ProductKey: in.ProductKey,
		}, role)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUnauthorized):
				utils.Error(w, http.StatusUnauthorized, "unauthorized")
			case errors.Is(err, repository.ErrDuplicateEmail):
				utils.Error(w, http.StatusConflict, "email already registered")
			default:
				utils.Error(w, http.StatusInternalServerError, "signup failed")
			}
			return
		}
		utils.JSON(w, http.StatusCreated, tokenResponse{Token: tok, User: u})
	}
}

// POST /api/auth/signin
func (h *AuthHTTP) Signin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in signinRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := in.Validate(); err != nil {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		tok, u, err := h.svc.Signin(r.Context(), in.Email, in.Password)
		if err != nil {
			// same response for unknown email and wrong password
			if errors.Is(err, service.ErrInvalidCredentials) {
				utils.Error(w, http.StatusUnauthorized, "invalid credentials")
				return
			}
			utils.Error(w, http.StatusInternalServerError, "signin failed")
			return
		}
		utils.JSON(w, http.StatusOK, tokenResponse{Token: tok, User: u})
	}
}

// POST /api/auth/key
func (h *AuthHTTP) GenerateProductKey() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in productKeyRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := in.Validate(); err != nil {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		role, _ := models.ParseRole(in.UserType)
		key, err := h.svc.GenerateProductKey(in.Email, role)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "key generation failed")
			return
		}
		utils.JSON(w, http.StatusOK, map[string]string{"productKey": key})
	}
}

// GET /api/auth/me echoes the identity decoded from the bearer token.
func (h *AuthHTTP) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := utils.GetString(r.Context(), middleware.CtxUserID)
		email, _ := utils.GetString(r.Context(), middleware.CtxEmail)
		role, _ := utils.GetString(r.Context(), middleware.CtxRole)
		utils.JSON(w, http.StatusOK, map[string]string{
			"id": uid, "email": email, "role": role,
		})
	}
}
