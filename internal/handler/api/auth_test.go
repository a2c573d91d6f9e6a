//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"luxstay-api/internal/domain/auth"
	"luxstay-api/internal/domain/user"
	"luxstay-api/internal/handler/api"
	reqdto "luxstay-api/internal/handler/dto/request"
	resdto "luxstay-api/internal/handler/dto/response"
	"luxstay-api/internal/pkg/config"
	"luxstay-api/internal/pkg/cookie"
	"luxstay-api/internal/pkg/jwt"
	"luxstay-api/internal/usecase/commands"
	"luxstay-api/internal/usecase/shared"
	"luxstay-api/tests/common/builder"
	"luxstay-api/tests/common/httptest"
	"luxstay-api/tests/common/testutil"
	commandsmock "luxstay-api/tests/mock/commands"
	queriesmock "luxstay-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockAuthCommands *commandsmock.MockAuthCommands
	mockUserCommands *commandsmock.MockUserCommands
	mockQueries      *queriesmock.MockUserQueries
	handler          *api.AuthHandler
	principal        *auth.Principal
}

func (s *AuthHandlerTestSuite) SetupSuite() {
	s.Require().NoError(reqdto.RegisterValidators())
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuthCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockUserCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	jwtService := jwt.NewService("unit-test-secret", time.Hour)
	s.handler = api.NewAuthHandler(s.mockAuthCommands, s.mockUserCommands, s.mockQueries, jwtService, config.NewTestConfig())

	p := newPrincipal(user.RoleClient)
	s.principal = &p

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", withPrincipal(s.principal), s.handler.Logout)
	s.router.GET("/auth/me", withPrincipal(s.principal), s.handler.Me)
	s.router.PATCH("/auth/me", withPrincipal(s.principal), s.handler.UpdateMe)
	s.router.GET("/anonymous/me", withPrincipal(nil), s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
	field      string
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	ub := builder.NewUserBuilder()
	reqBody := ub.BuildRegisterDTO()
	view := ub.BuildView()

	s.Run("success: returns 201 with user, token and cookie", func() {
		s.mockAuthCommands.EXPECT().Register(gomock.Any(), reqBody.ToCommand()).
			Return(&commands.AuthResult{User: view, Token: "signed-token"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("User registered successfully", response.Message)
		s.Equal("signed-token", response.Token)
		s.Equal(view.Email, response.User.Email)

		c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Equal("signed-token", c.Value)
		s.True(c.HttpOnly)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseAuth{
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest, field: "email"},
			{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest, field: "email"},
			{name: "password boundary invalid (5 chars)", mutate: testutil.Field("password", strings.Repeat("a", 5)), expectCode: http.StatusBadRequest, field: "password"},
			{name: "empty first name", mutate: testutil.Field("firstName", ""), expectCode: http.StatusBadRequest, field: "firstName"},
			{name: "missing last name", mutate: testutil.Field("lastName", nil), expectCode: http.StatusBadRequest, field: "lastName"},
			{name: "admin role is not self-assignable", mutate: testutil.Field("role", string(user.RoleAdmin)), expectCode: http.StatusBadRequest, field: "role"},
			{name: "unknown role", mutate: testutil.Field("role", "GUEST"), expectCode: http.StatusBadRequest, field: "role"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertValidationError(s.T(), rec, tc.field)
			})
		}
	})

	s.Run("success: password boundary OK (6 chars) and role omitted", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("password", strings.Repeat("a", 6)),
			testutil.Field("role", nil),
		)
		s.mockAuthCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.RegisterRequest) (*commands.AuthResult, error) {
				s.Equal("", req.Role)
				s.Equal("aaaaaa", req.Password)
				return &commands.AuthResult{User: view, Token: "t"}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: duplicate email returns 400", func() {
		s.mockAuthCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrUserAlreadyExists).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "User with this email already exists")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()
	view := builder.NewUserBuilder().BuildView()

	s.Run("success: returns 200 OK for valid credentials", func() {
		s.mockAuthCommands.EXPECT().Login(gomock.Any(), reqBody.ToCommand()).
			Return(&commands.AuthResult{User: view, Token: "signed-token"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Login successful", response.Message)
		s.Equal(view.Email, response.User.Email)
		s.NotNil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseAuth{
			{name: "invalid email", mutate: testutil.Field("email", "invalid-email"), field: "email"},
			{name: "missing email", mutate: testutil.Field("email", nil), field: "email"},
			{name: "empty password", mutate: testutil.Field("password", ""), field: "password"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertValidationError(s.T(), rec, tc.field)
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name          string
			commandsError error
			expectCode    int
			expectMessage string
		}{
			{"invalid credentials", commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
			{"unexpected failure", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAuthCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMessage)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: clears the access token cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Logged out successfully", response.Message)

		c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Empty(c.Value)
		s.Less(c.MaxAge, 0)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns the profile with counts", func() {
		view := builder.NewUserBuilder().BuildView()
		view.HotelCount = 2
		view.ReservationCount = 5
		s.mockQueries.EXPECT().GetProfile(gomock.Any(), s.principal.ID()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")

		var response resdto.UserEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.Email, response.User.Email)
		s.Equal(int64(2), response.User.HotelCount)
		s.Equal(int64(5), response.User.ReservationCount)
	})

	s.Run("error: 404 when the user no longer exists", func() {
		s.mockQueries.EXPECT().GetProfile(gomock.Any(), s.principal.ID()).Return(nil, shared.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})

	s.Run("error: 401 without a principal", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/anonymous/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Not authenticated")
	})
}

func (s *AuthHandlerTestSuite) TestUpdateMe() {
	s.Run("success: forwards only the provided names", func() {
		view := builder.NewUserBuilder().WithName("Janet", "Doe").BuildView()
		first := "Janet"
		s.mockUserCommands.EXPECT().
			UpdateProfile(gomock.Any(), *s.principal, commands.UpdateProfileRequest{FirstName: &first}).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/auth/me", map[string]any{"firstName": "Janet"}, "")

		var response resdto.UserEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Janet", response.User.FirstName)
	})

	s.Run("error: empty last name is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/auth/me", map[string]any{"lastName": ""}, "")
		httptest.AssertValidationError(s.T(), rec, "lastName")
	})
}
