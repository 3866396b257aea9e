package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"reelhub/internal/config"
	"reelhub/internal/httpapi/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) TouchLastLogin(id string, at time.Time) error {
	args := m.Called(id, at)
	return args.Error(0)
}

// MockRevokedTokenRepository mocks the RevokedTokenRepository interface
type MockRevokedTokenRepository struct {
	mock.Mock
}

func (m *MockRevokedTokenRepository) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	args := m.Called(ctx, jti, ttl)
	return args.Error(0)
}

func (m *MockRevokedTokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret-test-secret-test-secret",
		JWTExpiry: 24 * time.Hour,
	}
}

func TestRegister_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRevokedRepo := new(MockRevokedTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRevokedRepo, testConfig())

	mockUserRepo.On("FindByUsername", "testuser").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("FindByEmail", "test@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	user, err := authService.Register("testuser", "test@example.com", "password123")

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "testuser", user.Username)
	assert.Equal(t, "test@example.com", user.Email)
	assert.NotEqual(t, "password123", user.Password)
	mockUserRepo.AssertExpectations(t)
}

func TestRegister_UsernameExists(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRevokedRepo := new(MockRevokedTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRevokedRepo, testConfig())

	existingUser := &models.User{Username: "testuser"}
	mockUserRepo.On("FindByUsername", "testuser").Return(existingUser, nil)

	user, err := authService.Register("testuser", "test@example.com", "password123")

	assert.Error(t, err)
	assert.Equal(t, ErrNameInUse, err)
	assert.Nil(t, user)
	mockUserRepo.AssertExpectations(t)
}

func TestRegister_EmailExists(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRevokedRepo := new(MockRevokedTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRevokedRepo, testConfig())

	existingUser := &models.User{Email: "test@example.com"}
	mockUserRepo.On("FindByUsername", "testuser").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("FindByEmail", "test@example.com").Return(existingUser, nil)

	user, err := authService.Register("testuser", "test@example.com", "password123")

	assert.Error(t, err)
	assert.Equal(t, ErrEmailInUse, err)
	assert.Nil(t, user)
	mockUserRepo.AssertExpectations(t)
}

func TestLogin_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRevokedRepo := new(MockRevokedTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRevokedRepo, testConfig())

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-id",
		Username: "testuser",
		Email:    "test@example.com",
		Password: string(hashedPassword),
	}

	mockUserRepo.On("FindByEmail", "test@example.com").Return(user, nil)
	mockUserRepo.On("TouchLastLogin", "user-id", mock.AnythingOfType("time.Time")).Return(nil)

	token, returnedUser, err := authService.Login("test@example.com", "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.Username, returnedUser.Username)
	assert.NotNil(t, returnedUser.LastLogin)
	mockUserRepo.AssertExpectations(t)
}

func TestLogin_InvalidPassword(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRevokedRepo := new(MockRevokedTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRevokedRepo, testConfig())

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-id",
		Email:    "test@example.com",
		Password: string(hashedPassword),
	}

	mockUserRepo.On("FindByEmail", "test@example.com").Return(user, nil)

	token, returnedUser, err := authService.Login("test@example.com", "wrongpassword")

	assert.Error(t, err)
	assert.Equal(t, ErrInvalidCredentials, err)
	assert.Empty(t, token)
	assert.Nil(t, returnedUser)
	mockUserRepo.AssertExpectations(t)
}

func TestLogin_UserNotFound(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRevokedRepo := new(MockRevokedTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRevokedRepo, testConfig())

	mockUserRepo.On("FindByEmail", "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	token, user, err := authService.Login("nobody@example.com", "password123")

	assert.Error(t, err)
	assert.Equal(t, ErrInvalidCredentials, err)
	assert.Empty(t, token)
	assert.Nil(t, user)
	mockUserRepo.AssertExpectations(t)
}

func TestValidateToken_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRevokedRepo := new(MockRevokedTokenRepository)
	cfg := testConfig()
	authService := NewAuthService(mockUserRepo, mockRevokedRepo, cfg)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-id",
		Username: "testuser",
		Email:    "test@example.com",
		Password: string(hashedPassword),
	}
	mockUserRepo.On("FindByEmail", "test@example.com").Return(user, nil)
	mockUserRepo.On("TouchLastLogin", "user-id", mock.AnythingOfType("time.Time")).Return(nil)
	mockRevokedRepo.On("IsRevoked", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)

	token, _, err := authService.Login("test@example.com", "password123")
	assert.NoError(t, err)

	claims, err := authService.ValidateToken(context.Background(), token)

	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "user-id", claims.UserID)
	assert.Equal(t, "testuser", claims.Username)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_Expired(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRevokedRepo := new(MockRevokedTokenRepository)
	cfg := testConfig()
	authService := NewAuthService(mockUserRepo, mockRevokedRepo, cfg)

	claims := &Claims{
		UserID:   "user-id",
		Username: "testuser",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte(cfg.JWTSecret))

	validatedClaims, err := authService.ValidateToken(context.Background(), tokenString)

	assert.Error(t, err)
	assert.Equal(t, ErrInvalidToken, err)
	assert.Nil(t, validatedClaims)
	mockRevokedRepo.AssertNotCalled(t, "IsRevoked")
}

func TestValidateToken_WrongSecret(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRevokedRepo := new(MockRevokedTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRevokedRepo, testConfig())

	claims := &Claims{
		UserID: "user-id",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte("some-other-secret-some-other-secret"))

	validatedClaims, err := authService.ValidateToken(context.Background(), tokenString)

	assert.Error(t, err)
	assert.Equal(t, ErrInvalidToken, err)
	assert.Nil(t, validatedClaims)
}

func TestValidateToken_Garbage(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRevokedRepo := new(MockRevokedTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRevokedRepo, testConfig())

	validatedClaims, err := authService.ValidateToken(context.Background(), "invalid.token.here")

	assert.Error(t, err)
	assert.Nil(t, validatedClaims)
}

func TestValidateToken_Revoked(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRevokedRepo := new(MockRevokedTokenRepository)
	cfg := testConfig()
	authService := NewAuthService(mockUserRepo, mockRevokedRepo, cfg)

	jti := uuid.New().String()
	claims := &Claims{
		UserID:   "user-id",
		Username: "testuser",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte(cfg.JWTSecret))

	mockRevokedRepo.On("IsRevoked", mock.Anything, jti).Return(true, nil)

	validatedClaims, err := authService.ValidateToken(context.Background(), tokenString)

	assert.Error(t, err)
	assert.Equal(t, ErrInvalidToken, err)
	assert.Nil(t, validatedClaims)
	mockRevokedRepo.AssertExpectations(t)
}

func TestLogout_RevokesForRemainingLifetime(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRevokedRepo := new(MockRevokedTokenRepository)
	cfg := testConfig()
	authService := NewAuthService(mockUserRepo, mockRevokedRepo, cfg)

	jti := uuid.New().String()
	claims := &Claims{
		UserID: "user-id",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte(cfg.JWTSecret))

	mockRevokedRepo.On("Revoke", mock.Anything, jti, mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 50*time.Minute && ttl <= time.Hour
	})).Return(nil)

	err := authService.Logout(context.Background(), tokenString)

	assert.NoError(t, err)
	mockRevokedRepo.AssertExpectations(t)
}

func TestLogout_InvalidToken(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRevokedRepo := new(MockRevokedTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRevokedRepo, testConfig())

	err := authService.Logout(context.Background(), "not-a-token")

	// Invalid tokens are ignored to avoid leaking token validity
	assert.NoError(t, err)
	mockRevokedRepo.AssertNotCalled(t, "Revoke")
}

func TestLogout_StoreError(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRevokedRepo := new(MockRevokedTokenRepository)
	cfg := testConfig()
	authService := NewAuthService(mockUserRepo, mockRevokedRepo, cfg)

	claims := &Claims{
		UserID: "user-id",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte(cfg.JWTSecret))

	mockRevokedRepo.On("Revoke", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Duration")).
		Return(errors.New("redis: connection refused"))

	err := authService.Logout(context.Background(), tokenString)

	assert.Error(t, err)
	mockRevokedRepo.AssertExpectations(t)
}
