package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withTmpConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "purchtrac")
}

func TestCfgDir(t *testing.T) {
	base := withTmpConfig(t)
	if got := cfgDir(); got != base {
		t.Fatalf("cfgDir=%q, want %q", got, base)
	}
	if !strings.HasPrefix(cfgDir(), os.Getenv("XDG_CONFIG_HOME")) {
		t.Fatalf("cfgDir must honor XDG_CONFIG_HOME: %s", cfgDir())
	}
}

func TestSession_SaveLoad(t *testing.T) {
	_ = withTmpConfig(t)

	if _, _, err := loadSession(); err == nil {
		t.Fatal("want error when no session saved")
	}

	key := []byte("0123456789abcdef0123456789abcdef")
	if err := saveSession("tok", key); err != nil {
		t.Fatalf("saveSession: %v", err)
	}
	tok, gotKey, err := loadSession()
	if err != nil {
		t.Fatalf("loadSession: %v", err)
	}
	if tok != "tok" || string(gotKey) != string(key) {
		t.Fatalf("loadSession: tok=%q key=%q", tok, gotKey)
	}

	info, err := os.Stat(filepath.Join(cfgDir(), "key.bin"))
	if err != nil {
		t.Fatalf("stat key file: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("key file mode=%v, want 0600", info.Mode().Perm())
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID([]string{"-id", "42"})
	if err != nil || id != 42 {
		t.Fatalf("parseID: id=%d err=%v", id, err)
	}
	if _, err := parseID(nil); err == nil {
		t.Fatal("want error when -id missing")
	}
}
