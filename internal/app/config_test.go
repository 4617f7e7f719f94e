package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/larekshop/larek-backend/internal/logger"
)

func TestLoadConfigFileOverlay(t *testing.T) {
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}

	path := filepath.Join(t.TempDir(), "larek.yaml")
	overlay := `
allowed_origins:
  - https://larek.example
contacts:
  shop_name: Ларёк на углу
  phone: "+7 900 000-00-00"
`
	if err := os.WriteFile(path, []byte(overlay), 0o600); err != nil {
		t.Fatalf("write overlay: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("CONTACT_EMAIL", "shop@larek.example")

	cfg := LoadConfig(log)

	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "https://larek.example" {
		t.Fatalf("overlay should replace origins, got %v", cfg.AllowedOrigins)
	}
	if cfg.Contacts.ShopName != "Ларёк на углу" || cfg.Contacts.Phone != "+7 900 000-00-00" {
		t.Fatalf("overlay should set contacts, got %+v", cfg.Contacts)
	}
	// Fields absent from the overlay keep their env values.
	if cfg.Contacts.Email != "shop@larek.example" {
		t.Fatalf("env contact email should survive, got %q", cfg.Contacts.Email)
	}
}

func TestLoadConfigBadFileKeepsDefaults(t *testing.T) {
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := LoadConfig(log)
	if len(cfg.AllowedOrigins) == 0 {
		t.Fatalf("defaults should survive a missing config file")
	}
}
