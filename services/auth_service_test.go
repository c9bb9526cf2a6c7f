package services

import (
	"testing"
	"time"

	"github.com/bedrock/sor-api/database"
	"github.com/bedrock/sor-api/models"
	"github.com/bedrock/sor-api/repositories"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testAuthService(t *testing.T) (*AuthService, *repositories.UserRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	users := repositories.NewUserRepository(db)
	return NewAuthService(users, "test-secret", time.Minute, time.Hour), users
}

func createUser(t *testing.T, users *repositories.UserRepository, username, password string, active bool) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, users.Create(&models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hashed),
		IsActive: active,
	}))
}

func TestObtainPair(t *testing.T) {
	auth, users := testAuthService(t)
	createUser(t, users, "admin", "hunter2", true)

	pair, err := auth.ObtainPair("admin", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "admin", pair.Username)
	assert.Equal(t, "admin@example.com", pair.Email)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)

	claims, err := auth.ValidateAccess(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestObtainPairWrongPassword(t *testing.T) {
	auth, users := testAuthService(t)
	createUser(t, users, "admin", "hunter2", true)

	_, err := auth.ObtainPair("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestObtainPairUnknownUser(t *testing.T) {
	auth, _ := testAuthService(t)

	_, err := auth.ObtainPair("nobody", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestObtainPairInactiveUser(t *testing.T) {
	auth, users := testAuthService(t)
	createUser(t, users, "admin", "hunter2", false)

	_, err := auth.ObtainPair("admin", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	auth, users := testAuthService(t)
	createUser(t, users, "admin", "hunter2", true)

	pair, err := auth.ObtainPair("admin", "hunter2")
	require.NoError(t, err)

	access, err := auth.Refresh(pair.Refresh)
	require.NoError(t, err)

	claims, err := auth.ValidateAccess(access)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	auth, users := testAuthService(t)
	createUser(t, users, "admin", "hunter2", true)

	pair, err := auth.ObtainPair("admin", "hunter2")
	require.NoError(t, err)

	_, err = auth.Refresh(pair.Access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAccessRejectsRefreshToken(t *testing.T) {
	auth, users := testAuthService(t)
	createUser(t, users, "admin", "hunter2", true)

	pair, err := auth.ObtainPair("admin", "hunter2")
	require.NoError(t, err)

	_, err = auth.ValidateAccess(pair.Refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAccessRejectsGarbage(t *testing.T) {
	auth, _ := testAuthService(t)

	_, err := auth.ValidateAccess("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAccessRejectsForeignSignature(t *testing.T) {
	auth, users := testAuthService(t)
	createUser(t, users, "admin", "hunter2", true)

	pair, err := auth.ObtainPair("admin", "hunter2")
	require.NoError(t, err)

	foreign := NewAuthService(nil, "other-secret", time.Minute, time.Hour)
	_, err = foreign.ValidateAccess(pair.Access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshRejectsDeactivatedUser(t *testing.T) {
	auth, users := testAuthService(t)
	createUser(t, users, "admin", "hunter2", true)

	pair, err := auth.ObtainPair("admin", "hunter2")
	require.NoError(t, err)

	user, err := users.FindByUsername("admin")
	require.NoError(t, err)
	user.IsActive = false
	require.NoError(t, users.Save(&user))

	_, err = auth.Refresh(pair.Refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestEnsureAdminUser(t *testing.T) {
	auth, users := testAuthService(t)

	require.NoError(t, auth.EnsureAdminUser("admin", "admin@example.com", "hunter2"))
	user, err := users.FindByUsername("admin")
	require.NoError(t, err)
	assert.True(t, user.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter2")))

	// Idempotent: a second call leaves the account alone.
	require.NoError(t, auth.EnsureAdminUser("admin", "admin@example.com", "changed"))
	again, err := users.FindByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, user.Password, again.Password)
}

func TestEnsureAdminUserSkipsEmptyCredentials(t *testing.T) {
	auth, users := testAuthService(t)

	require.NoError(t, auth.EnsureAdminUser("", "", ""))
	_, err := users.FindByUsername("")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
