package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// PasswordTestSuite 密码工具测试套件
type PasswordTestSuite struct {
	suite.Suite
	fast *PasswordConfig
}

func (suite *PasswordTestSuite) SetupTest() {
	suite.fast = &PasswordConfig{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16}
}

func (suite *PasswordTestSuite) TestHashAndVerify() {
	hash, err := HashPasswordWithConfig("hunter2hunter2", suite.fast)
	suite.Require().NoError(err)
	suite.True(strings.HasPrefix(hash, "$argon2id$v=19$m=8192,t=1,p=1$"))

	ok, err := VerifyPassword("hunter2hunter2", hash)
	suite.Require().NoError(err)
	suite.True(ok)

	ok, err = VerifyPassword("wrong-password1", hash)
	suite.Require().NoError(err)
	suite.False(ok)
}

func (suite *PasswordTestSuite) TestSaltedHashesDiffer() {
	a, err := HashPasswordWithConfig("samepass1", suite.fast)
	suite.Require().NoError(err)
	b, err := HashPasswordWithConfig("samepass1", suite.fast)
	suite.Require().NoError(err)
	suite.NotEqual(a, b)
}

func (suite *PasswordTestSuite) TestDefaultConfig() {
	hash, err := HashPassword("default1pass")
	suite.Require().NoError(err)
	suite.Contains(hash, "m=65536,t=1,p=4")

	ok, err := VerifyPassword("default1pass", hash)
	suite.Require().NoError(err)
	suite.True(ok)
}

func (suite *PasswordTestSuite) TestMalformedHash() {
	for _, encoded := range []string{
		"",
		"plain-text",
		"$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=1$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$garbage$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=1,t=1,p=1$!!!$aGFzaA",
	} {
		_, err := VerifyPassword("x", encoded)
		suite.ErrorIs(err, ErrMalformedHash, encoded)
	}
}

func (suite *PasswordTestSuite) TestCheckPasswordStrength() {
	suite.Error(CheckPasswordStrength("short1"))
	suite.Error(CheckPasswordStrength("lettersonly"))
	suite.Error(CheckPasswordStrength("12345678"))
	suite.NoError(CheckPasswordStrength("hexrealm2024"))
}

func (suite *PasswordTestSuite) TestGenerateSessionID() {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := GenerateSessionID()
		suite.Len(id, 32)
		suite.False(seen[id])
		seen[id] = true
	}
}

func TestPasswordSuite(t *testing.T) {
	suite.Run(t, new(PasswordTestSuite))
}
