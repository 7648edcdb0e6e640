package services

import (
	"path/filepath"
	"testing"

	"death-registry/app/models"
	"death-registry/app/repo"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Death{}, &models.AuthToken{}, &models.DeathEvent{}))
	return gdb
}

func seedUser(t *testing.T, gdb *gorm.DB, name, email, role string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &models.User{Name: name, Email: email, PasswordHash: string(hash), Role: role}
	require.NoError(t, repo.NewUserRepository(gdb).Create(u))
	return u
}
