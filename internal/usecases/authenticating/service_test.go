package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sureshkirannz/EmployeeKPI/infrastructure/repository/mocks"
	"github.com/sureshkirannz/EmployeeKPI/internal/config"
	"github.com/sureshkirannz/EmployeeKPI/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	cfg := &config.Config{SecretKey: "test-secret"}
	return NewService(userRepo, cfg), userRepo
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginUser(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByUsername("jsmith").Return(&domain.User{
		ID:           "emp-1",
		Username:     "jsmith",
		PasswordHash: hashPassword(t, "changeme"),
		RoleID:       domain.RoleEmployee,
		Active:       true,
	}, nil)

	token, err := service.LoginUser("JSmith", "changeme")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", claims.UserID)
	assert.Equal(t, domain.RoleEmployee, claims.UserRoleID)
}

func TestLoginUserWrongPassword(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByUsername("jsmith").Return(&domain.User{
		ID:           "emp-1",
		Username:     "jsmith",
		PasswordHash: hashPassword(t, "changeme"),
		Active:       true,
	}, nil)

	_, err := service.LoginUser("jsmith", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserDisabled(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByUsername("jsmith").Return(&domain.User{
		ID:           "emp-1",
		Username:     "jsmith",
		PasswordHash: hashPassword(t, "changeme"),
		Active:       false,
	}, nil)

	_, err := service.LoginUser("jsmith", "changeme")
	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestLoginUserUnknownUsername(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByUsername("ghost").Return(nil, nil)

	_, err := service.LoginUser("ghost", "changeme")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestValidateTokenGarbage(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestCreateUserHashesPasswordAndDefaultsRole(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByUsername("newhire").Return(nil, nil)
	userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(user *domain.User) (*domain.User, error) {
		assert.Equal(t, domain.RoleEmployee, user.RoleID)
		assert.True(t, user.Active)
		assert.NotEqual(t, "plaintext", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("plaintext")))
		user.ID = "emp-2"
		return user, nil
	})

	created, err := service.CreateUser(&domain.User{
		Username:     "NewHire",
		EmployeeName: "New Hire",
		PasswordHash: "plaintext",
	})
	require.NoError(t, err)

	assert.Equal(t, "emp-2", created.ID)
	assert.Equal(t, "newhire", created.Username)
	assert.Empty(t, created.PasswordHash)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByUsername("jsmith").Return(&domain.User{ID: "emp-1"}, nil)

	_, err := service.CreateUser(&domain.User{
		Username:     "jsmith",
		EmployeeName: "Jordan Smith",
		PasswordHash: "plaintext",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestChangePasswordRejectsShortPassword(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByID("emp-1").Return(&domain.User{
		ID:           "emp-1",
		PasswordHash: hashPassword(t, "changeme"),
	}, nil)

	err := service.ChangePassword("emp-1", "changeme", "short")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}
