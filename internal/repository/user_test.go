package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/models"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite 用户仓储测试套件
type UserRepositoryTestSuite struct {
	suite.Suite
	db       *gorm.DB
	repo     UserRepository
	authRepo UserAuthRepository
	sessRepo UserSessionRepository
	ctx      context.Context
}

func (s *UserRepositoryTestSuite) SetupTest() {
	s.db = SetupTestDB()
	s.repo = NewUserRepository(s.db)
	s.authRepo = NewUserAuthRepository(s.db)
	s.sessRepo = NewUserSessionRepository(s.db)
	s.ctx = context.Background()
}

func (s *UserRepositoryTestSuite) TearDownTest() {
	CleanupTestDB(s.db)
}

func (s *UserRepositoryTestSuite) TestCreateDefaults() {
	user := &models.User{Username: "alice", Email: "alice@example.com"}
	s.Require().NoError(s.repo.Create(s.ctx, user))
	s.NotZero(user.ID)

	found, err := s.repo.FindByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("alice", found.Nickname)
	s.Equal("active", found.Status)

	err = s.repo.Create(s.ctx, &models.User{Username: "alice", Email: "other@example.com"})
	s.True(errors.Is(err, errors.ErrAlreadyExists))

	_, err = s.repo.FindByEmail(s.ctx, "nobody@example.com")
	s.True(errors.Is(err, errors.ErrNotFound))
}

func (s *UserRepositoryTestSuite) TestUpdateLastLogin() {
	user := SeedUser(s.T(), s.db, "bob")
	s.Require().NoError(s.repo.UpdateLastLogin(s.ctx, user.ID, "10.0.0.1"))

	found, err := s.repo.FindByID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.NotNil(found.LastLoginAt)
	s.Equal("10.0.0.1", found.LastLoginIP)
}

func (s *UserRepositoryTestSuite) TestLoginAttempts() {
	user := SeedUser(s.T(), s.db, "carol")
	s.Require().NoError(s.authRepo.Create(s.ctx, &models.UserAuth{UserID: user.ID, Password: "hash"}))

	s.Require().NoError(s.authRepo.UpdateLoginAttempts(s.ctx, user.ID, 3))
	s.Require().NoError(s.authRepo.LockAccount(s.ctx, user.ID, time.Now().Add(time.Hour)))

	auth, err := s.authRepo.FindByUserID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal(3, auth.LoginAttempts)
	s.NotNil(auth.LockedUntil)

	s.Require().NoError(s.authRepo.ResetLoginAttempts(s.ctx, user.ID))
	auth, err = s.authRepo.FindByUserID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Zero(auth.LoginAttempts)
	s.Nil(auth.LockedUntil)
}

func (s *UserRepositoryTestSuite) TestSessions() {
	user := SeedUser(s.T(), s.db, "dave")
	live := &models.UserSession{UserID: user.ID, SessionID: "live", ExpireAt: time.Now().Add(time.Hour)}
	expired := &models.UserSession{UserID: user.ID, SessionID: "expired", ExpireAt: time.Now().Add(-time.Hour)}
	s.Require().NoError(s.sessRepo.Create(s.ctx, live))
	s.Require().NoError(s.sessRepo.Create(s.ctx, expired))

	found, err := s.sessRepo.FindBySessionID(s.ctx, "live")
	s.Require().NoError(err)
	s.Equal(user.ID, found.UserID)

	_, err = s.sessRepo.FindBySessionID(s.ctx, "expired")
	s.True(errors.Is(err, errors.ErrNotFound))

	sessions, err := s.sessRepo.FindByUserID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Len(sessions, 1)

	removed, err := s.sessRepo.CleanupExpired(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), removed)

	s.Require().NoError(s.sessRepo.Delete(s.ctx, "live"))
	_, err = s.sessRepo.FindBySessionID(s.ctx, "live")
	s.True(errors.Is(err, errors.ErrNotFound))
}

func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
