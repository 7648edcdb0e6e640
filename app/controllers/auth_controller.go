package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"death-registry/app/dto"
	"death-registry/app/middleware"
	"death-registry/app/services"

	validation "github.com/go-ozzo/ozzo-validation"
)

const msgValidationFailed = "Request didn't pass validation"

type AuthController struct {
	Users  *services.UserService
	Tokens *services.TokenService
}

func NewAuthController(users *services.UserService, tokens *services.TokenService) *AuthController {
	return &AuthController{Users: users, Tokens: tokens}
}

// Register creates an account and logs it in right away.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := req.Validate(); err != nil {
		respondFail(w, http.StatusBadRequest, msgValidationFailed, err)
		return
	}
	u, err := c.Users.Register(req)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			respondFail(w, http.StatusBadRequest, msgValidationFailed, verrs)
			return
		}
		respondFail(w, http.StatusInternalServerError, "Could not create user", nil)
		return
	}
	token, err := c.Tokens.Issue(u)
	if err != nil {
		respondFail(w, http.StatusInternalServerError, "Could not issue token", nil)
		return
	}
	respondOK(w, http.StatusCreated, "User created successfully", dto.AuthUser{User: u, Token: token})
}

// Login checks credentials and issues a fresh token. Any mismatch answers a
// generic 404 so callers cannot probe which field was wrong.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := req.Validate(); err != nil {
		respondFail(w, http.StatusBadRequest, msgValidationFailed, err)
		return
	}
	u, err := c.Users.ValidateCredentials(req.Email, req.Password)
	if err != nil {
		respondFail(w, http.StatusNotFound, "User not found", nil)
		return
	}
	token, err := c.Tokens.Issue(u)
	if err != nil {
		respondFail(w, http.StatusInternalServerError, "Could not issue token", nil)
		return
	}
	respondOK(w, http.StatusOK, "User logged in successfully", dto.AuthUser{User: u, Token: token})
}

// Index lists every user.
func (c *AuthController) Index(w http.ResponseWriter, r *http.Request) {
	users, err := c.Users.ListAll()
	if err != nil {
		respondFail(w, http.StatusInternalServerError, "Could not list users", nil)
		return
	}
	respondOK(w, http.StatusOK, "Users found successfully", users)
}

// Search finds users by name or email substring.
func (c *AuthController) Search(w http.ResponseWriter, r *http.Request) {
	var req dto.SearchRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := req.Validate(); err != nil {
		respondFail(w, http.StatusBadRequest, msgValidationFailed, err)
		return
	}
	users, err := c.Users.Search(req.Search)
	if err != nil {
		respondFail(w, http.StatusInternalServerError, "Could not search users", nil)
		return
	}
	respondOK(w, http.StatusOK, "Users found successfully", users)
}

// CheckToken echoes back the identity behind the presented token.
func (c *AuthController) CheckToken(w http.ResponseWriter, r *http.Request) {
	respondOK(w, http.StatusOK, "User info has been retrieved", middleware.CurrentUser(r.Context()))
}

// Logout revokes the caller's own token.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := c.Tokens.Revoke(r.Context(), middleware.BearerToken(r.Context())); err != nil {
		respondFail(w, http.StatusInternalServerError, "Could not log out", nil)
		return
	}
	respondOK(w, http.StatusOK, "User has been logged out", nil)
}
