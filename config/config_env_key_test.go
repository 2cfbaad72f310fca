package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

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
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"documentsModule": map[string]any{
			"serviceToken": "",
			"breaker": map[string]any{
				"failureRatio": 0.5,
			},
		},
		"upload": map[string]any{
			"maxFileSize": 1,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "DOCUMENTSMODULE_SERVICETOKEN", want: "documentsModule.serviceToken"},
		{envKey: "DOCUMENTSMODULE_BREAKER_FAILURERATIO", want: "documentsModule.breaker.failureRatio"},
		{envKey: "UPLOAD_MAXFILESIZE", want: "upload.maxFileSize"},
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

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxFileSize)
	assert.Equal(t, DefaultAllowedContentTypes(), cfg.Upload.AllowedContentTypes)
	assert.Equal(t, "content", cfg.Verification.Verifier)
	assert.Equal(t, "inprocess", cfg.DocumentsModule.Mode)
	assert.Equal(t, 5*time.Second, cfg.DocumentsModule.Timeout)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{}
	cfg.Upload.MaxFileSize = 2048
	cfg.Upload.AllowedContentTypes = []string{"application/pdf"}
	cfg.DocumentsModule.Mode = "http"

	applyDefaults(cfg)

	assert.Equal(t, int64(2048), cfg.Upload.MaxFileSize)
	assert.Equal(t, []string{"application/pdf"}, cfg.Upload.AllowedContentTypes)
	assert.Equal(t, "http", cfg.DocumentsModule.Mode)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte("upload:\n  maxFileSize: 1024\ndocumentsModule:\n  mode: inprocess\n  timeout: 2s\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "testcfg.yaml"), yamlBody, 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("DOCUMENTSMODULE_MODE", "http")
	t.Setenv("UPLOAD_MAXFILESIZE", "4096")

	cfg, err := LoadWithEnv[Config]("testcfg", rel)
	require.NoError(t, err)

	assert.Equal(t, "http", cfg.DocumentsModule.Mode)
	assert.Equal(t, int64(4096), cfg.Upload.MaxFileSize)
	assert.Equal(t, 2*time.Second, cfg.DocumentsModule.Timeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}
