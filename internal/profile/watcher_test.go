package profile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/litescript/ls-natal/internal/chart"
)

func TestWatcher_ReloadsOnSave(t *testing.T) {
	path := writeFile(t, sampleTOML)

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	profiles, _ := Load(path)
	profiles = Upsert(profiles, Profile{Name: "new", BirthData: chart.BirthData{Year: 2010, Month: 3}})
	if err := Save(path, profiles); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	select {
	case r := <-w.Reloads:
		if r.Err != nil {
			t.Fatalf("reload error = %v", r.Err)
		}
		if _, err := Find(r.Profiles, "new"); err != nil {
			t.Errorf("reloaded profiles missing new entry: %v", Names(r.Profiles))
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reload within 3s")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	path := writeFile(t, sampleTOML)

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	other := filepath.Join(filepath.Dir(path), "notes.txt")
	if err := os.WriteFile(other, []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case r := <-w.Reloads:
		t.Errorf("unexpected reload %+v", r)
	case <-time.After(4 * Debounce):
	}
}

func TestWatcher_ReportsBadContent(t *testing.T) {
	path := writeFile(t, sampleTOML)

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("[[profile]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case r := <-w.Reloads:
		if r.Err == nil {
			t.Error("reload of malformed file reported no error")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reload within 3s")
	}
}

func TestWatcher_StartMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "profiles.toml")

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Start(); err == nil {
		t.Fatal("Start() error = nil, want error for missing directory")
	}
}
