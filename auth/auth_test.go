package auth

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/harshitap649-prog/peterart07/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func TestRegisterUserValidation(t *testing.T) {
	db := newTestDB(t)

	_, fieldErrs, err := RegisterUser(db, "", "", "")
	require.NoError(t, err)
	assert.Contains(t, fieldErrs, "email")
	assert.Contains(t, fieldErrs, "password")

	_, fieldErrs, err = RegisterUser(db, "alice@example.com", "12345", "Alice")
	require.NoError(t, err)
	assert.Contains(t, fieldErrs, "password")

	user, fieldErrs, err := RegisterUser(db, "alice@example.com", "123456", "Alice")
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "123456", user.PasswordHash, "password must never be stored in plaintext")
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)

	_, fieldErrs, err := RegisterUser(db, "alice@example.com", "123456", "Alice")
	require.NoError(t, err)
	require.Empty(t, fieldErrs)

	_, fieldErrs, err = RegisterUser(db, "alice@example.com", "abcdef", "Imposter")
	require.NoError(t, err)
	assert.Contains(t, fieldErrs, "email")
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	db := newTestDB(t)
	_, _, err := RegisterUser(db, "alice@example.com", "123456", "Alice")
	require.NoError(t, err)

	// Wrong password and unknown email must produce the identical
	// outcome so accounts cannot be enumerated.
	_, wrongPassword := Authenticate(db, "alice@example.com", "wrong!")
	_, unknownEmail := Authenticate(db, "nobody@example.com", "123456")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthenticateSuccess(t *testing.T) {
	db := newTestDB(t)
	_, _, err := RegisterUser(db, "alice@example.com", "123456", "Alice")
	require.NoError(t, err)

	user, err := Authenticate(db, "alice@example.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestLoginOrCreateFromExternalIdentity(t *testing.T) {
	db := newTestDB(t)

	created, err := LoginOrCreateFromExternalIdentity(db, "gina@example.com", "Gina")
	require.NoError(t, err)
	assert.Equal(t, "google", created.Provider)

	// The synthesized password can never be used to log in directly.
	_, err = Authenticate(db, "gina@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	again, err := LoginOrCreateFromExternalIdentity(db, "gina@example.com", "Different Name")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, "Gina", again.Name, "existing account is logged in, not rewritten")
}

func TestSeedAdmin(t *testing.T) {
	db := newTestDB(t)

	require.Error(t, SeedAdmin(db, "", ""))

	require.NoError(t, SeedAdmin(db, "admin@example.com", "supersecret"))
	require.NoError(t, SeedAdmin(db, "admin@example.com", "supersecret"), "seeding twice is a no-op")

	var n int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "admin@example.com").Count(&n).Error)
	assert.EqualValues(t, 1, n)

	admin, err := Authenticate(db, "admin@example.com", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, "Admin", admin.Name)
}

func TestIssueJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	user := models.User{ID: 7, Email: "alice@example.com", Name: "Alice"}

	token, err := issueJWT(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.EqualValues(t, 7, claims["user_id"])
	assert.Equal(t, "alice@example.com", claims["email"])
}
