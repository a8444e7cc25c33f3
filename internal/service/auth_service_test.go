package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/wfunc/hexrealm/internal/errors"
	"gorm.io/gorm"
)

// AuthServiceTestSuite 认证服务测试套件
type AuthServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	db       *gorm.DB
	services *Services
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.services, s.db = newTestServices(s.T())
}

func (s *AuthServiceTestSuite) register() *AuthResponse {
	resp, err := s.services.Auth.Register(s.ctx, &RegisterRequest{
		Username: "testuser",
		Email:    "Test@Example.com",
		Password: "password123",
		IP:       "127.0.0.1",
	})
	s.Require().NoError(err)
	return resp
}

func (s *AuthServiceTestSuite) TestRegister() {
	resp := s.register()

	s.NotEmpty(resp.AccessToken)
	s.NotEmpty(resp.RefreshToken)
	s.Equal("Bearer", resp.TokenType)
	s.Equal("testuser", resp.User.Username)
	s.Equal("testuser", resp.User.Nickname)
	s.Equal("test@example.com", resp.User.Email)

	claims, err := s.services.Auth.ValidateToken(s.ctx, resp.AccessToken)
	s.Require().NoError(err)
	s.Equal(resp.User.ID, claims.UserID)
}

func (s *AuthServiceTestSuite) TestRegisterDuplicate() {
	s.register()

	_, err := s.services.Auth.Register(s.ctx, &RegisterRequest{
		Username: "testuser",
		Email:    "other@example.com",
		Password: "password123",
	})
	s.True(errors.Is(err, errors.ErrAlreadyExists))

	_, err = s.services.Auth.Register(s.ctx, &RegisterRequest{
		Username: "another",
		Email:    "test@example.com",
		Password: "password123",
	})
	s.True(errors.Is(err, errors.ErrAlreadyExists))
}

func (s *AuthServiceTestSuite) TestRegisterWeakPassword() {
	_, err := s.services.Auth.Register(s.ctx, &RegisterRequest{
		Username: "weakling",
		Email:    "weak@example.com",
		Password: "short",
	})
	s.True(errors.Is(err, errors.ErrInvalidParam))
}

func (s *AuthServiceTestSuite) TestLogin() {
	s.register()

	byName, err := s.services.Auth.Login(s.ctx, &LoginRequest{Account: "testuser", Password: "password123", IP: "10.0.0.1"})
	s.Require().NoError(err)
	s.NotNil(byName.User.LastLoginAt)

	_, err = s.services.Auth.Login(s.ctx, &LoginRequest{Account: "TEST@example.com", Password: "password123"})
	s.NoError(err)

	_, err = s.services.Auth.Login(s.ctx, &LoginRequest{Account: "nobody", Password: "password123"})
	s.True(errors.Is(err, errors.ErrAuthentication))
}

func (s *AuthServiceTestSuite) TestLoginLockout() {
	s.register()

	for i := 0; i < maxLoginAttempts; i++ {
		_, err := s.services.Auth.Login(s.ctx, &LoginRequest{Account: "testuser", Password: "wrong-password1"})
		s.True(errors.Is(err, errors.ErrAuthentication))
	}

	_, err := s.services.Auth.Login(s.ctx, &LoginRequest{Account: "testuser", Password: "password123"})
	s.True(errors.Is(err, errors.ErrAuthorization))
}

func (s *AuthServiceTestSuite) TestRefresh() {
	resp := s.register()

	_, err := s.services.Auth.Refresh(s.ctx, resp.AccessToken)
	s.True(errors.Is(err, errors.ErrTokenInvalid))

	refreshed, err := s.services.Auth.Refresh(s.ctx, resp.RefreshToken)
	s.Require().NoError(err)
	s.NotEmpty(refreshed.AccessToken)

	_, err = s.services.Auth.ValidateToken(s.ctx, resp.RefreshToken)
	s.True(errors.Is(err, errors.ErrTokenInvalid))
}

func (s *AuthServiceTestSuite) TestLogoutRevokesSession() {
	resp := s.register()
	claims, err := s.services.Auth.ValidateToken(s.ctx, resp.AccessToken)
	s.Require().NoError(err)

	s.Require().NoError(s.services.Auth.Logout(s.ctx, claims.SessionID))

	_, err = s.services.Auth.ValidateToken(s.ctx, resp.AccessToken)
	s.True(errors.Is(err, errors.ErrTokenInvalid))
	_, err = s.services.Auth.Refresh(s.ctx, resp.RefreshToken)
	s.True(errors.Is(err, errors.ErrTokenInvalid))
}

func (s *AuthServiceTestSuite) TestLogoutAllRevokesEverySession() {
	first := s.register()
	second, err := s.services.Auth.Login(s.ctx, &LoginRequest{Account: "testuser", Password: "password123"})
	s.Require().NoError(err)

	s.Require().NoError(s.services.Auth.LogoutAll(s.ctx, first.User.ID))

	for _, token := range []string{first.AccessToken, second.AccessToken} {
		_, err := s.services.Auth.ValidateToken(s.ctx, token)
		s.True(errors.Is(err, errors.ErrTokenInvalid))
	}
	_, err = s.services.Auth.Refresh(s.ctx, second.RefreshToken)
	s.True(errors.Is(err, errors.ErrTokenInvalid))
}

func (s *AuthServiceTestSuite) TestChangePassword() {
	resp := s.register()

	err := s.services.Auth.ChangePassword(s.ctx, resp.User.ID, &ChangePasswordRequest{
		OldPassword: "wrong-password1",
		NewPassword: "newsecret456",
	})
	s.True(errors.Is(err, errors.ErrAuthentication))

	err = s.services.Auth.ChangePassword(s.ctx, resp.User.ID, &ChangePasswordRequest{
		OldPassword: "password123",
		NewPassword: "short",
	})
	s.True(errors.Is(err, errors.ErrInvalidParam))

	s.Require().NoError(s.services.Auth.ChangePassword(s.ctx, resp.User.ID, &ChangePasswordRequest{
		OldPassword: "password123",
		NewPassword: "newsecret456",
	}))

	// 旧会话失效，只能用新密码登录
	_, err = s.services.Auth.ValidateToken(s.ctx, resp.AccessToken)
	s.True(errors.Is(err, errors.ErrTokenInvalid))
	_, err = s.services.Auth.Login(s.ctx, &LoginRequest{Account: "testuser", Password: "password123"})
	s.True(errors.Is(err, errors.ErrAuthentication))
	_, err = s.services.Auth.Login(s.ctx, &LoginRequest{Account: "testuser", Password: "newsecret456"})
	s.NoError(err)
}

func (s *AuthServiceTestSuite) TestProfile() {
	resp := s.register()

	user, err := s.services.Auth.Profile(s.ctx, resp.User.ID)
	s.Require().NoError(err)
	s.Equal("testuser", user.Username)

	_, err = s.services.Auth.Profile(s.ctx, 9999)
	s.True(errors.Is(err, errors.ErrNotFound))
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
