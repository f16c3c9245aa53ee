// Package profile stores named birth profiles in a TOML file.
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/litescript/ls-natal/internal/chart"
)

var (
	// ErrProfileNotFound is returned when no profile has the requested name.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidProfile indicates a profile file entry that cannot be used.
	ErrInvalidProfile = errors.New("invalid profile")
)

// Profile is a named set of birth data. Any birth field except year and
// month may be left out; such a profile can be stored and listed, but its
// chart cannot be computed.
type Profile struct {
	Name string `toml:"name"`
	chart.BirthData
}

// Complete reports whether the profile has everything a chart needs.
func (p Profile) Complete() bool {
	return p.Validate() == nil
}

// file is the on-disk layout: a sequence of [[profile]] tables.
type file struct {
	Profiles []Profile `toml:"profile"`
}

// Load reads and validates the profiles file at path.
// A missing file is reported with an error wrapping fs.ErrNotExist.
func Load(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profiles: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes profiles from TOML. The name is only used in errors.
func Parse(name string, data []byte) ([]Profile, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	if err := validate(f.Profiles); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return f.Profiles, nil
}

func validate(profiles []Profile) error {
	seen := make(map[string]bool, len(profiles))
	for i, p := range profiles {
		if p.Name == "" {
			return fmt.Errorf("%w: entry %d has no name", ErrInvalidProfile, i+1)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidProfile, p.Name)
		}
		seen[p.Name] = true
		if p.Month < 1 || p.Month > 12 {
			return fmt.Errorf("%w: %q has month %d", ErrInvalidProfile, p.Name, p.Month)
		}
	}
	return nil
}

// Marshal encodes profiles as TOML, sorted by name.
func Marshal(profiles []Profile) ([]byte, error) {
	sorted := append([]Profile(nil), profiles...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(file{Profiles: sorted}); err != nil {
		return nil, fmt.Errorf("marshaling profiles to TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes profiles to path. The file is written to a temporary sibling
// and renamed into place, so readers (and the watcher) never see a partial
// file.
func Save(path string, profiles []Profile) error {
	if err := validate(profiles); err != nil {
		return err
	}
	data, err := Marshal(profiles)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	success := false
	defer func() {
		if !success {
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	success = true
	return nil
}

// Find returns the profile with the given name.
func Find(profiles []Profile, name string) (Profile, error) {
	for _, p := range profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
}

// Upsert returns profiles with p added, replacing any profile of the same name.
func Upsert(profiles []Profile, p Profile) []Profile {
	out := make([]Profile, 0, len(profiles)+1)
	replaced := false
	for _, existing := range profiles {
		if existing.Name == p.Name {
			out = append(out, p)
			replaced = true
			continue
		}
		out = append(out, existing)
	}
	if !replaced {
		out = append(out, p)
	}
	return out
}

// Names returns the profile names in file order.
func Names(profiles []Profile) []string {
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}
	return names
}
