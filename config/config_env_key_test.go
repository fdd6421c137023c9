package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"objectStore": map[string]any{
			"bucketUrl":  "mem://",
			"presignTtl": "1h",
		},
		"identity": map[string]any{
			"jwt": map[string]any{
				"secret": "",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "OBJECTSTORE_BUCKETURL", want: "objectStore.bucketUrl"},
		{envKey: "OBJECTSTORE_PRESIGNTTL", want: "objectStore.presignTtl"},
		{envKey: "IDENTITY_JWT_SECRET", want: "identity.jwt.secret"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte(`
http:
  port: 8080
objectStore:
  bucketUrl: "mem://"
  presignTtl: "1h"
identity:
  provider: jwt
  jwt:
    secret: from-file
report:
  organizationName: Acme Pumps
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yamlBody, 0o600))
	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "9191")
	t.Setenv("OBJECTSTORE_PRESIGNTTL", "15m")
	t.Setenv("IDENTITY_JWT_SECRET", "from-env")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.HTTP.Port)
	assert.Equal(t, 15*time.Minute, cfg.ObjectStore.PresignTTL)
	assert.Equal(t, "from-env", cfg.Identity.JWT.Secret)
	assert.Equal(t, "Acme Pumps", cfg.Report.OrganizationName)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Redis: &RedisConfig{Addr: "localhost:6379"}}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, IdentityProviderJWT, cfg.Identity.Provider)
	assert.Equal(t, defaultBucketURL, cfg.ObjectStore.BucketURL)
	assert.Equal(t, time.Hour, cfg.ObjectStore.PresignTTL)
	assert.Equal(t, defaultStatsTTL, cfg.Redis.StatsTTL)
	assert.Equal(t, defaultOrganizationName, cfg.Report.OrganizationName)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "jwt with secret",
			mutate: func(*Config) {},
		},
		{
			name:    "jwt without secret",
			mutate:  func(c *Config) { c.Identity.JWT.Secret = "" },
			wantErr: "identity.jwt.secret",
		},
		{
			name:    "firebase without settings",
			mutate:  func(c *Config) { c.Identity.Provider = IdentityProviderFirebase },
			wantErr: "identity.firebase",
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.Identity.Provider = "ldap" },
			wantErr: "unknown identity provider",
		},
		{
			name:    "missing postgres",
			mutate:  func(c *Config) { c.Postgres = nil },
			wantErr: "postgres",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Postgres: &postgres.DBConn{}}
			cfg.Identity.JWT.Secret = "secret"
			applyDefaults(cfg)
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
