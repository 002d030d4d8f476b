package service

import (
	"testing"
	"time"

	"bicycle-maintenance-backend/internal/auth"
	apperrors "bicycle-maintenance-backend/internal/errors"
	"bicycle-maintenance-backend/internal/repository"
	"bicycle-maintenance-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

// UserServiceTestSuite tests registration, login and account lookup
type UserServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	service       *UserService
	tokens        *auth.TokenService
}

// SetupSuite runs before all tests in the suite
func (suite *UserServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.tokens = auth.NewTokenService("test-secret", time.Hour)
	suite.service = NewUserService(
		repository.NewUserRepository(suite.baseTestSuite.DB),
		suite.tokens,
		validator.New(),
	)
}

// TearDownSuite runs after all tests in the suite
func (suite *UserServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestRegister tests account creation with a hashed password and a token
func (suite *UserServiceTestSuite) TestRegister() {
	resp, err := suite.service.Register(&RegisterRequest{
		Name:     "Test Rider",
		Email:    "rider@test.com",
		Password: "supersecret",
	})
	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, resp.User.ID)
	suite.Equal("rider@test.com", resp.User.Email)
	suite.NotEmpty(resp.Token)

	suite.NotEqual("supersecret", resp.User.PasswordHash)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(resp.User.PasswordHash), []byte("supersecret")))

	claims, err := suite.tokens.Verify(resp.Token)
	suite.Require().NoError(err)
	suite.Equal(resp.User.ID, claims.UserID)
}

// TestRegisterDuplicateEmail tests that an email can only be registered once
func (suite *UserServiceTestSuite) TestRegisterDuplicateEmail() {
	req := &RegisterRequest{Name: "Test Rider", Email: "rider@test.com", Password: "supersecret"}
	_, err := suite.service.Register(req)
	suite.Require().NoError(err)

	_, err = suite.service.Register(req)
	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "Email is already registered")
}

// TestRegisterValidation tests attribute validation on registration
func (suite *UserServiceTestSuite) TestRegisterValidation() {
	_, err := suite.service.Register(&RegisterRequest{
		Name:     "Test Rider",
		Email:    "not-an-email",
		Password: "short",
	})
	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))
}

// TestLogin tests credential verification
func (suite *UserServiceTestSuite) TestLogin() {
	_, err := suite.service.Register(&RegisterRequest{
		Name:     "Test Rider",
		Email:    "rider@test.com",
		Password: "supersecret",
	})
	suite.Require().NoError(err)

	resp, err := suite.service.Login(&LoginRequest{Email: "rider@test.com", Password: "supersecret"})
	suite.Require().NoError(err)
	suite.Equal("rider@test.com", resp.User.Email)
	suite.NotEmpty(resp.Token)
}

// TestLoginWrongPassword tests that a bad password is rejected
func (suite *UserServiceTestSuite) TestLoginWrongPassword() {
	_, err := suite.service.Register(&RegisterRequest{
		Name:     "Test Rider",
		Email:    "rider@test.com",
		Password: "supersecret",
	})
	suite.Require().NoError(err)

	_, err = suite.service.Login(&LoginRequest{Email: "rider@test.com", Password: "wrongpassword"})
	suite.Require().ErrorIs(err, apperrors.ErrInvalidCredentials)
}

// TestLoginUnknownEmail tests that an unknown account is indistinguishable
// from a bad password
func (suite *UserServiceTestSuite) TestLoginUnknownEmail() {
	_, err := suite.service.Login(&LoginRequest{Email: "nobody@test.com", Password: "supersecret"})
	suite.Require().ErrorIs(err, apperrors.ErrInvalidCredentials)
}

// TestGetByID tests account lookup
func (suite *UserServiceTestSuite) TestGetByID() {
	resp, err := suite.service.Register(&RegisterRequest{
		Name:     "Test Rider",
		Email:    "rider@test.com",
		Password: "supersecret",
	})
	suite.Require().NoError(err)

	user, err := suite.service.GetByID(resp.User.ID)
	suite.Require().NoError(err)
	suite.Equal(resp.User.Email, user.Email)

	_, err = suite.service.GetByID(uuid.New())
	suite.Require().ErrorIs(err, apperrors.ErrUserNotFound)
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
