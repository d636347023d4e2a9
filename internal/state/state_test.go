package state

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.dat")

	s := defaults()
	s.path = path
	s.Mute = true
	if err := s.RememberGrid(12, 7); err != nil {
		t.Fatalf("RememberGrid: %v", err)
	}

	got := loadFrom(path)
	if !got.Mute || got.LastMaxX != 12 || got.LastMaxY != 7 {
		t.Errorf("loaded %+v, want mute=true max=12x7", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	got := loadFrom(filepath.Join(t.TempDir(), "nope.dat"))
	if got.LastMaxX != DefaultMaxX || got.LastMaxY != DefaultMaxY || got.Mute {
		t.Errorf("loaded %+v, want defaults", got)
	}
}

func TestLoadTampered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.dat")
	s := defaults()
	s.path = path
	s.LastMaxX = 40
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	data[len(data)-1] ^= 0xFF
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	got := loadFrom(path)
	if got.LastMaxX != DefaultMaxX {
		t.Errorf("LastMaxX = %d from tampered file, want default %d", got.LastMaxX, DefaultMaxX)
	}
}

func TestFileIsNotPlainJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.dat")
	s := defaults()
	s.path = path
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) > 0 && data[0] == '{' {
		t.Error("settings file stored in clear text")
	}
}

func TestSetMuteWithoutSound(t *testing.T) {
	s := defaults()
	s.SetMute(true)
	if !s.Mute {
		t.Error("SetMute(true) did not stick")
	}
}
