package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minikart/commerce-api/internal/api/middleware"
	"github.com/minikart/commerce-api/internal/core/domain"
	"github.com/minikart/commerce-api/internal/core/ports"
)

// UserHandler handles account and session endpoints.
type UserHandler struct {
	authService ports.AuthService
	userService ports.UserService
	// secureCookie marks the session cookie Secure (production mode).
	secureCookie bool
}

func NewUserHandler(authService ports.AuthService, userService ports.UserService, secureCookie bool) *UserHandler {
	return &UserHandler{
		authService:  authService,
		userService:  userService,
		secureCookie: secureCookie,
	}
}

// Signup creates a new user account.
//
// @Summary      Sign up a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /user/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrInvalidUser):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	return c.JSON(http.StatusCreated, user)
}

// Login verifies credentials, sets the session cookie, and returns the
// token in the body for non-cookie clients.
//
// @Summary      Log in
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /user/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	// Token already attached to the request, if any. Feeds the
	// already-logged-in convenience check; never blocks on invalid tokens.
	priorToken := ""
	if cookie, err := c.Cookie(middleware.CookieName); err == nil {
		priorToken = cookie.Value
	}

	signed, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password, priorToken)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyLoggedIn):
			return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	c.SetCookie(sessionCookie(signed, h.secureCookie))
	return c.JSON(http.StatusOK, loginResponse{Token: signed, User: user})
}

// Logout clears the session cookie. The token itself is not revoked; it
// stays valid until its natural expiry.
//
// @Summary      Log out
// @Tags         users
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Router       /user/logout [post]
func (h *UserHandler) Logout(c echo.Context) error {
	c.SetCookie(clearedSessionCookie(h.secureCookie))
	return c.JSON(http.StatusOK, messageResponse{Message: "logout successful"})
}

// GetOne returns a single user by id. The password hash is never serialized.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /user/one-user/{id} [get]
func (h *UserHandler) GetOne(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "user id is missing"})
	}

	user, err := h.userService.GetUser(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	return c.JSON(http.StatusOK, user)
}

// GetAll returns every user in the directory.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /user/all-user [get]
func (h *UserHandler) GetAll(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
	return c.JSON(http.StatusOK, users)
}

// Delete removes a user by id.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /user/delete/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	if err := h.userService.DeleteUser(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted"})
}
