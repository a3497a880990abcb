package app

import (
	"testing"

	coreconfig "github.com/nika-camp/campbot/core/config"
)

func validConfig() *Config {
	return &Config{
		Core: coreconfig.Config{
			Telegram: coreconfig.TelegramConfig{
				Token:   "123:abc",
				AdminID: 99,
				RunMode: coreconfig.RunModeLongpoll,
			},
		},
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := validConfig()
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.Content.MediaDir != "media" {
		t.Errorf("MediaDir = %q", cfg.Content.MediaDir)
	}
	if len(cfg.Support.Admins) != 1 || cfg.Support.Admins[0] != 99 {
		t.Errorf("Admins = %v, want fallback to admin_id", cfg.Support.Admins)
	}
}

func TestNormalizeKeepsExplicitAdmins(t *testing.T) {
	cfg := validConfig()
	cfg.Support.Admins = []int64{1, 2}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if len(cfg.Support.Admins) != 2 {
		t.Errorf("Admins = %v", cfg.Support.Admins)
	}
}

func TestNormalizeRejectsIncompleteContact(t *testing.T) {
	cfg := validConfig()
	cfg.Support.Contacts = []ContactConfig{{Name: "Ника"}}
	if err := Normalize(cfg); err == nil {
		t.Fatal("contact without url accepted")
	}
}

func TestNormalizeRequiresToken(t *testing.T) {
	cfg := validConfig()
	cfg.Core.Telegram.Token = ""
	if err := Normalize(cfg); err == nil {
		t.Fatal("missing token accepted")
	}
}
