//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"studio-booking/internal/domain/user"
	"studio-booking/internal/handler/api"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"
	commandsmock "studio-booking/tests/mock/commands"
	queriesmock "studio-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
	userID       uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)

	cfg := config.NewTestConfig()
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, cfg.Cookie, cfg.JWT)
	s.userID = uuid.New()

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Stand-in for the auth middleware.
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) postJSON(url string, body any) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	s.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *AuthHandlerTestSuite) TestLogin() {
	body := map[string]any{"email": "user@example.com", "password": "password123"}

	s.Run("success sets the session cookie", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), "user@example.com", "password123").
			Return(&commands.LoginResult{
				UserID:      s.userID,
				Role:        user.RoleMember,
				AccessToken: "token",
			}, nil)

		rec := s.postJSON("/auth/login", body)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"access_token":"token"`)
		s.NotEmpty(rec.Result().Cookies(), "login must set the session cookie")
	})

	s.Run("invalid credentials", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidCredentials)

		rec := s.postJSON("/auth/login", body)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("inactive account", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrUserInactive)

		rec := s.postJSON("/auth/login", body)
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("malformed body", func() {
		rec := s.postJSON("/auth/login", map[string]any{"email": "not-an-email"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("returns the current user", func() {
		s.mockQueries.EXPECT().
			GetCurrentUser(gomock.Any(), s.userID).
			Return(&queries.AuthorizedUserView{
				ID:       s.userID,
				Email:    "user@example.com",
				Role:     "member",
				IsActive: true,
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "user@example.com")
	})

	s.Run("unauthenticated", func() {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("user vanished after login", func() {
		s.mockQueries.EXPECT().
			GetCurrentUser(gomock.Any(), s.userID).
			Return(nil, queries.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := s.postJSON("/auth/logout", nil)
	s.Equal(http.StatusNoContent, rec.Code)
}
