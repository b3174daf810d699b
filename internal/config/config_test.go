package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoad_RetryAfterFailure 首次加载失败不应缓存，补上配置文件后能重试成功
func TestLoad_RetryAfterFailure(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "bill-config-test-*")
	if err != nil {
		t.Fatalf("create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	path := filepath.Join(tempDir, "config.yaml")

	cfg, err := Load(path)
	if err == nil {
		t.Fatal("Load with missing file: expected error, got nil")
	}
	if cfg != nil {
		t.Fatalf("Load with missing file: expected nil config, got %+v", cfg)
	}

	content := []byte(`server:
  address: 127.0.0.1
  port: 9100
  mode: test
jwt:
  secret: config-test-secret
  expire_hours: 1
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load after writing file: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load after writing file returned nil config")
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("server.port = %d, want 9100", cfg.Server.Port)
	}
	if cfg.JWT.Secret != "config-test-secret" {
		t.Errorf("jwt.secret = %q, want %q", cfg.JWT.Secret, "config-test-secret")
	}

	if Get() != cfg {
		t.Error("Get() does not return the loaded config")
	}
}
