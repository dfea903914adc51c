package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mediguard/security-dashboard/internal/core/domain"
	"github.com/mediguard/security-dashboard/internal/core/ports"
)

// TokenIssuer signs bearer tokens for an authenticated identity.
type TokenIssuer interface {
	Issue(identity domain.Identity) (string, error)
}

type AuthHandler struct {
	session ports.SessionService
	tokens  TokenIssuer
}

func NewAuthHandler(session ports.SessionService, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{session: session, tokens: tokens}
}

type registerRequest struct {
	Username        string `json:"username"         validate:"required"`
	Email           string `json:"email"            validate:"required,email"`
	Password        string `json:"password"         validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Role            string `json:"role"             validate:"omitempty,oneof=admin doctor nurse staff"`
	Department      string `json:"department"       validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User     *domain.Identity   `json:"user"`
	Token    string             `json:"token"`
	Redirect domain.Destination `json:"redirect"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Login authenticates against the credential set and opens the session.
//
// @Summary      Login
// @Description  Resolves after the configured network delay. A concurrent login or registration is rejected.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if _, err := h.session.Login(c.Request().Context(), req.Email, req.Password); err != nil {
		return err
	}
	return h.respond(c, http.StatusOK)
}

// Register opens a session for a new account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	role := domain.Role(req.Role)
	if role == "" {
		role = domain.RoleStaff
	}

	in := ports.RegisterInput{
		Username:   req.Username,
		Email:      req.Email,
		Role:       role,
		Department: req.Department,
	}
	if _, err := h.session.Register(c.Request().Context(), in, req.Password); err != nil {
		return err
	}
	return h.respond(c, http.StatusCreated)
}

// Logout closes the session. It always succeeds.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.session.Logout(c.Request().Context())
	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out successfully"})
}

// Session reports the current session state.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.Session
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, h.session.Snapshot())
}

func (h *AuthHandler) respond(c echo.Context, status int) error {
	snap := h.session.Snapshot()
	if snap.Identity == nil {
		// A logout landed between the session opening and this response.
		return echo.NewHTTPError(http.StatusConflict, "session closed before the response was sent")
	}

	token, err := h.tokens.Issue(*snap.Identity)
	if err != nil {
		return err
	}
	return c.JSON(status, authResponse{
		User:     snap.Identity,
		Token:    token,
		Redirect: domain.Landing,
	})
}
