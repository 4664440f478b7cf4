package gui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOptionsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")

	opts := DefaultOptions()
	opts.ScreenReader = true
	opts.AnimationTime = 0.25
	opts.ItemSpacing = Vec2{X: 10, Y: 4}
	opts.Interaction.MaxInteractExpansion = 7

	if err := opts.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if loaded != opts {
		t.Errorf("round-trip changed options:\n got %+v\nwant %+v", loaded, opts)
	}
}

func TestLoadOptionsFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	if err := os.WriteFile(path, []byte("animation_time: 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if opts.AnimationTime != 0.5 {
		t.Errorf("animation_time = %v, want 0.5", opts.AnimationTime)
	}
	defaults := DefaultOptions()
	if opts.Interaction != defaults.Interaction {
		t.Errorf("omitted sections lost their defaults: %+v", opts.Interaction)
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	opts, err := LoadOptions(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	// Returned defaults stay usable.
	if opts.AnimationTime != DefaultOptions().AnimationTime {
		t.Error("error case did not return defaults")
	}
}
