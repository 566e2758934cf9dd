package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/royalvilla/villa-catalog-api/internal/dto"
	"github.com/royalvilla/villa-catalog-api/internal/response"
	"github.com/royalvilla/villa-catalog-api/internal/service"
)

// AuthHandler exposes registration and login. The uniqueness check for
// emails lives inside the auth service; this handler only maps service
// errors onto envelope responses.
type AuthHandler struct {
	Auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

// Register handles POST /api/auth/register. 201 with the public user
// projection on success, 409 on a duplicate email, 400 on a missing or
// incomplete body, 500 on any other fault.
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		r := response.BadRequest("Registration data is required")
		return c.JSON(r.StatusCode, r)
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Name) == "" || req.Password == "" {
		r := response.BadRequest("Email, name and password are required")
		return c.JSON(r.StatusCode, r)
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	user, err := h.Auth.Register(ctx, &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			r := response.Conflict(fmt.Sprintf("User with email '%s' already exists", req.Email))
			return c.JSON(r.StatusCode, r)
		}
		r := response.Error(http.StatusInternalServerError, "An error occurred while registering the user: ", err.Error())
		return c.JSON(r.StatusCode, r)
	}

	r := response.CreatedAt(user, "User registered successfully")
	return c.JSON(r.StatusCode, r)
}

// Login handles POST /api/auth/login. 200 with {user, token} on
// success. Unknown email and wrong password answer with the same
// generic 400 so callers cannot probe for registered addresses.
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		r := response.BadRequest("Login data is required")
		return c.JSON(r.StatusCode, r)
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		r := response.BadRequest("Email and password are required")
		return c.JSON(r.StatusCode, r)
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	out, err := h.Auth.Login(ctx, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			r := response.BadRequest("Invalid email or password")
			return c.JSON(r.StatusCode, r)
		}
		r := response.Error(http.StatusInternalServerError, "An error occurred during login: ", err.Error())
		return c.JSON(r.StatusCode, r)
	}

	r := response.Ok(out, "Login successful")
	return c.JSON(r.StatusCode, r)
}
