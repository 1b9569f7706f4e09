package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_MODE", "DATA_DIR", "STORAGE_BACKEND", "PORT", "DB_PORT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mode != ModeConsole || cfg.DataDir != "." || cfg.StorageBackend != BackendFile || cfg.ServerPort != "8080" || cfg.DBPort != 5432 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_MODE", ModeAPI)
	t.Setenv("DATA_DIR", "/var/lib/attendance")
	t.Setenv("DB_PORT", "6543")

	cfg, err := Load()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mode != ModeAPI || cfg.DataDir != "/var/lib/attendance" || cfg.DBPort != 6543 {
		t.Errorf("environment not applied: %+v", cfg)
	}
}

func TestLoad_BadPort(t *testing.T) {
	t.Setenv("DB_PORT", "fivefour")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric DB_PORT")
	}
}
