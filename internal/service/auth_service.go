package service

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/models"
	"github.com/wfunc/hexrealm/internal/repository"
	"github.com/wfunc/hexrealm/internal/utils"
	"go.uber.org/zap"
)

// 登录失败锁定策略
const (
	maxLoginAttempts = 5
	lockDuration     = 15 * time.Minute
)

// invalidCredentials 用户不存在与密码错误返回相同信息
const invalidCredentials = "Invalid username or password"

// authService 认证服务实现
type authService struct {
	repos      *repository.Manager
	jwtManager *utils.JWTManager
	log        *zap.Logger
}

// NewAuthService 创建认证服务
func NewAuthService(repos *repository.Manager, jwtManager *utils.JWTManager, log *zap.Logger) AuthService {
	return &authService{
		repos:      repos,
		jwtManager: jwtManager,
		log:        log,
	}
}

// Register 用户注册，用户、认证信息与会话在同一事务中创建
func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if username == "" || email == "" {
		return nil, errors.Validation("username and email are required")
	}
	if err := utils.CheckPasswordStrength(req.Password); err != nil {
		return nil, errors.Validation(err.Error())
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrUnknown)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Nickname: req.Nickname,
	}
	var session *models.UserSession
	err = s.repos.WithTransaction(ctx, func(tx *repository.Transaction) error {
		if err := s.checkAvailable(ctx, tx, username, email); err != nil {
			return err
		}
		if err := tx.User().Create(ctx, user); err != nil {
			return err
		}
		if err := tx.UserAuth().Create(ctx, &models.UserAuth{UserID: user.ID, Password: hashed}); err != nil {
			return err
		}
		session = s.newSession(user.ID, req.IP, "")
		return tx.UserSession().Create(ctx, session)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("User registered", zap.Uint("user_id", user.ID), zap.String("username", user.Username))
	return s.issue(user, session.SessionID)
}

func (s *authService) checkAvailable(ctx context.Context, tx *repository.Transaction, username, email string) error {
	if _, err := tx.User().FindByUsername(ctx, username); err == nil {
		return errors.New(errors.ErrAlreadyExists, "Username is already taken")
	} else if !errors.Is(err, errors.ErrNotFound) {
		return err
	}
	if _, err := tx.User().FindByEmail(ctx, email); err == nil {
		return errors.New(errors.ErrAlreadyExists, "Email is already registered")
	} else if !errors.Is(err, errors.ErrNotFound) {
		return err
	}
	return nil
}

// Login 用户名或邮箱登录，连续失败达到上限后锁定一段时间
func (s *authService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	account := strings.TrimSpace(req.Account)

	var (
		user *models.User
		err  error
	)
	if strings.Contains(account, "@") {
		user, err = s.repos.User().FindByEmail(ctx, strings.ToLower(account))
	} else {
		user, err = s.repos.User().FindByUsername(ctx, account)
	}
	if errors.Is(err, errors.ErrNotFound) {
		s.log.Warn("Login failed: user not found", zap.String("account", account))
		return nil, errors.New(errors.ErrAuthentication, invalidCredentials)
	}
	if err != nil {
		return nil, err
	}
	if !user.CanLogin() {
		return nil, errors.New(errors.ErrAuthorization, "Account is disabled")
	}

	auth, err := s.repos.UserAuth().FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if auth.LockedUntil != nil && auth.LockedUntil.After(time.Now()) {
		return nil, errors.New(errors.ErrAuthorization, "Account is temporarily locked, try again later")
	}

	ok, err := utils.VerifyPassword(req.Password, auth.Password)
	if err != nil {
		s.log.Error("Stored password hash is malformed", zap.Uint("user_id", user.ID), zap.Error(err))
	}
	if !ok {
		s.recordFailure(ctx, auth)
		return nil, errors.New(errors.ErrAuthentication, invalidCredentials)
	}

	if auth.LoginAttempts > 0 {
		if err := s.repos.UserAuth().ResetLoginAttempts(ctx, user.ID); err != nil {
			s.log.Warn("Failed to reset login attempts", zap.Uint("user_id", user.ID), zap.Error(err))
		}
	}
	if err := s.repos.User().UpdateLastLogin(ctx, user.ID, req.IP); err != nil {
		s.log.Warn("Failed to update last login", zap.Uint("user_id", user.ID), zap.Error(err))
	}
	user.UpdateLoginInfo(req.IP)

	session := s.newSession(user.ID, req.IP, req.UserAgent)
	if err := s.repos.UserSession().Create(ctx, session); err != nil {
		return nil, err
	}

	s.log.Info("User logged in", zap.Uint("user_id", user.ID))
	return s.issue(user, session.SessionID)
}

// recordFailure 记录一次失败，达到上限时锁定账户
func (s *authService) recordFailure(ctx context.Context, auth *models.UserAuth) {
	attempts := auth.LoginAttempts + 1
	if err := s.repos.UserAuth().UpdateLoginAttempts(ctx, auth.UserID, attempts); err != nil {
		s.log.Warn("Failed to record login attempt", zap.Uint("user_id", auth.UserID), zap.Error(err))
		return
	}
	if attempts >= maxLoginAttempts {
		if err := s.repos.UserAuth().LockAccount(ctx, auth.UserID, time.Now().Add(lockDuration)); err != nil {
			s.log.Warn("Failed to lock account", zap.Uint("user_id", auth.UserID), zap.Error(err))
			return
		}
		s.log.Warn("Account locked after repeated login failures", zap.Uint("user_id", auth.UserID))
	}
}

// Refresh 使用刷新令牌签发新的访问令牌，会话必须仍然有效
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := s.jwtManager.ValidateTokenType(refreshToken, utils.TokenTypeRefresh)
	if err != nil {
		return nil, tokenErr(err)
	}

	session, err := s.session(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != claims.UserID {
		return nil, errors.New(errors.ErrTokenInvalid, "Session does not belong to this token")
	}

	user, err := s.repos.User().FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.repos.UserSession().UpdateLastActive(ctx, session.SessionID); err != nil {
		s.log.Warn("Failed to touch session", zap.String("session_id", session.SessionID), zap.Error(err))
	}
	return s.issue(user, session.SessionID)
}

// Logout 注销会话，之后该会话签发的令牌全部失效
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if err := s.repos.UserSession().Delete(ctx, sessionID); err != nil {
		return err
	}
	s.log.Info("Session revoked", zap.String("session_id", sessionID))
	return nil
}

// LogoutAll 注销用户的全部会话
func (s *authService) LogoutAll(ctx context.Context, userID uint) error {
	if err := s.repos.UserSession().DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	s.log.Info("All sessions revoked", zap.Uint("user_id", userID))
	return nil
}

// ChangePassword 校验旧密码后写入新密码，并注销全部会话
func (s *authService) ChangePassword(ctx context.Context, userID uint, req *ChangePasswordRequest) error {
	auth, err := s.repos.UserAuth().FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	ok, err := utils.VerifyPassword(req.OldPassword, auth.Password)
	if err != nil {
		s.log.Error("Stored password hash is malformed", zap.Uint("user_id", userID), zap.Error(err))
	}
	if !ok {
		return errors.New(errors.ErrAuthentication, "Old password is incorrect")
	}
	if err := utils.CheckPasswordStrength(req.NewPassword); err != nil {
		return errors.Validation(err.Error())
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return errors.Wrap(err, errors.ErrUnknown)
	}
	err = s.repos.WithTransaction(ctx, func(tx *repository.Transaction) error {
		if err := tx.UserAuth().UpdatePassword(ctx, userID, hashed); err != nil {
			return err
		}
		return tx.UserSession().DeleteByUserID(ctx, userID)
	})
	if err != nil {
		return err
	}

	s.log.Info("Password changed", zap.Uint("user_id", userID))
	return nil
}

// ValidateToken 校验访问令牌及其会话
func (s *authService) ValidateToken(ctx context.Context, token string) (*TokenClaims, error) {
	claims, err := s.jwtManager.ValidateTokenType(token, utils.TokenTypeAccess)
	if err != nil {
		return nil, tokenErr(err)
	}
	if _, err := s.session(ctx, claims.SessionID); err != nil {
		return nil, err
	}

	return &TokenClaims{
		UserID:    claims.UserID,
		Username:  claims.Username,
		SessionID: claims.SessionID,
		ExpiresAt: claims.ExpiresAt.Unix(),
	}, nil
}

// Profile 当前用户信息
func (s *authService) Profile(ctx context.Context, userID uint) (*models.User, error) {
	return s.repos.User().FindByID(ctx, userID)
}

func (s *authService) session(ctx context.Context, sessionID string) (*models.UserSession, error) {
	session, err := s.repos.UserSession().FindBySessionID(ctx, sessionID)
	if errors.Is(err, errors.ErrNotFound) {
		return nil, errors.New(errors.ErrTokenInvalid, "Session has expired or been revoked")
	}
	return session, err
}

func (s *authService) newSession(userID uint, ip, userAgent string) *models.UserSession {
	now := time.Now()
	return &models.UserSession{
		UserID:       userID,
		SessionID:    utils.GenerateSessionID(),
		IP:           ip,
		UserAgent:    userAgent,
		IsOnline:     true,
		LastActiveAt: now,
		ExpireAt:     now.Add(s.jwtManager.GetTokenExpiry(utils.TokenTypeRefresh)),
	}
}

// issue 签发访问令牌与刷新令牌
func (s *authService) issue(user *models.User, sessionID string) (*AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Username, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrUnknown)
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrUnknown)
	}

	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtManager.GetTokenExpiry(utils.TokenTypeAccess).Seconds()),
		TokenType:    "Bearer",
	}, nil
}

// tokenErr 将令牌校验错误转换为应用错误
func tokenErr(err error) error {
	switch {
	case stderrors.Is(err, utils.ErrExpiredToken):
		return errors.New(errors.ErrTokenExpired, "Token has expired")
	case stderrors.Is(err, utils.ErrWrongTokenType):
		return errors.New(errors.ErrTokenInvalid, "Wrong token type")
	default:
		return errors.New(errors.ErrTokenInvalid, "Invalid token")
	}
}
