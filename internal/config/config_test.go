package config_test

import (
	"testing"

	"github.com/changhyeonkim/member-portal/go-api-server/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-jwt-secret-key-must-be-at-least-32-characters-long"

func TestLoad_SQLiteDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_SQLITE_PATH", "member-test.db")
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("REDIS_ADDR", "")

	cfg, err := config.Load("unit")

	require.NoError(t, err)
	assert.Equal(t, config.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "member-test.db", cfg.Database.SQLitePath)
	assert.Equal(t, 5, cfg.Member.PageSize)
	assert.Equal(t, bcrypt.DefaultCost, cfg.Security.BcryptCost)
	assert.False(t, cfg.IsCacheEnabled())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_RedisAndOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DEFAULT_TTL", "10m")
	t.Setenv("MEMBER_PAGE_SIZE", "20")
	t.Setenv("BCRYPT_COST", "12")

	cfg, err := config.Load("unit")

	require.NoError(t, err)
	assert.True(t, cfg.IsCacheEnabled())
	assert.Equal(t, "10m0s", cfg.Redis.DefaultTTL.String())
	assert.Equal(t, 20, cfg.Member.PageSize)
	assert.Equal(t, 12, cfg.Security.BcryptCost)
}

func TestLoad_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "oracle without connection settings",
			env:  map[string]string{"DB_DRIVER": "oracle", "DB_HOST": "", "JWT_SECRET": testSecret},
		},
		{
			name: "unknown driver",
			env:  map[string]string{"DB_DRIVER": "mysql", "JWT_SECRET": testSecret},
		},
		{
			name: "short jwt secret",
			env:  map[string]string{"DB_DRIVER": "sqlite", "JWT_SECRET": "short"},
		},
		{
			name: "zero page size",
			env:  map[string]string{"DB_DRIVER": "sqlite", "JWT_SECRET": testSecret, "MEMBER_PAGE_SIZE": "0"},
		},
		{
			name: "bcrypt cost out of range",
			env:  map[string]string{"DB_DRIVER": "sqlite", "JWT_SECRET": testSecret, "BCRYPT_COST": "99"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			_, err := config.Load("unit")

			assert.Error(t, err)
		})
	}
}

func TestIsProduction(t *testing.T) {
	for _, env := range []string{"prod", "production"} {
		cfg := &config.Config{App: config.AppConfig{Env: env}}
		assert.True(t, cfg.IsProduction(), env)
	}

	cfg := &config.Config{App: config.AppConfig{Env: "local"}}
	assert.False(t, cfg.IsProduction())
	assert.True(t, cfg.IsDevelopment())
}
