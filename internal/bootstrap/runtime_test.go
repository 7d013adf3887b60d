package bootstrap

import (
	"context"
	"regexp"
	"testing"

	"portfolio/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestSeedSuperAdminSkipsWithoutCredentials(t *testing.T) {
	db, mock := newMockDB(t)

	err := SeedSuperAdmin(context.Background(), db, &config.Config{})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedSuperAdminIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	cfg := &config.Config{
		SuperAdminEmail:    "root@example.com",
		SuperAdminPassword: "Sup3r$ecret",
		BcryptCost:         bcrypt.MinCost,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WithArgs("root@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role"}).
			AddRow(1, "root@example.com", "SUPER_ADMIN"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "auth_providers" WHERE "auth_providers"."user_id" = $1`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "provider", "provider_id"}).
			AddRow(5, 1, "credentials", "root@example.com"))

	err := SeedSuperAdmin(context.Background(), db, cfg)
	require.NoError(t, err)
	// no INSERT expected: the account already exists
	assert.NoError(t, mock.ExpectationsWereMet())
}
