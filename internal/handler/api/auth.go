package api

import (
	"net/http"

	reqdto "luxstay-api/internal/handler/dto/request"
	resdto "luxstay-api/internal/handler/dto/response"
	"luxstay-api/internal/handler/httperr"
	"luxstay-api/internal/pkg/config"
	"luxstay-api/internal/pkg/cookie"
	"luxstay-api/internal/pkg/jwt"
	"luxstay-api/internal/usecase/commands"
	"luxstay-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userCommands commands.UserCommands
	userQueries  queries.UserQueries
	jwtService   *jwt.Service
	cfg          config.Config
}

func NewAuthHandler(
	authCommands commands.AuthCommands,
	userCommands commands.UserCommands,
	userQueries queries.UserQueries,
	jwtService *jwt.Service,
	cfg config.Config,
) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userCommands: userCommands,
		userQueries:  userQueries,
		jwtService:   jwtService,
		cfg:          cfg,
	}
}

// @Summary Register
// @Description Create a CLIENT or HOTEL_OWNER account and sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authCommands.Register(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.signIn(c, http.StatusCreated, "User registered successfully", result)
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.signIn(c, http.StatusOK, "Login successful", result)
}

// @Summary User logout
// @Description Clear the access token cookie
// @Tags auth
// @Security BearerAuth
// @Success 200 {object} resdto.MessageResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cfg.Cookie)
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Logged out successfully"})
}

// @Summary Get current user
// @Description Profile of the authenticated user with hotel and reservation counts
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserEnvelope
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	profile, err := h.userQueries.GetProfile(c.Request.Context(), principal.ID())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.UserEnvelope{User: resdto.FromUserView(profile)})
}

// @Summary Update current user
// @Description Change first and/or last name
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateProfileRequest true "Profile changes"
// @Success 200 {object} resdto.UserEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/me [patch]
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var req reqdto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.userCommands.UpdateProfile(c.Request.Context(), principal, req.ToCommand())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.UserEnvelope{User: resdto.FromUserView(profile)})
}

func (h *AuthHandler) signIn(c *gin.Context, status int, message string, result *commands.AuthResult) {
	cookie.SetAccessToken(c, h.cfg.Cookie, result.Token, h.jwtService.TokenDuration())
	c.JSON(status, resdto.AuthResponse{
		Message: message,
		User:    resdto.FromUserView(result.User),
		Token:   result.Token,
	})
}
