package mapping

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	appName = "padmap"

	// KeymapEnvVar names an additional candidate mapping-file location.
	KeymapEnvVar = "PADMAP_KEYMAP"

	// SystemKeymapPath is the last-resort candidate location.
	SystemKeymapPath = "/etc/padmap/keymap.yaml"
)

// ErrNoMappingFile indicates that none of the candidate locations resolved
// to an existing regular file.
var ErrNoMappingFile = errors.New("no mapping file found")

// InvalidMappingError indicates that a mapping file was unreadable,
// malformed, or missing a required field.
type InvalidMappingError struct {
	// Path is the file that failed to load.
	Path string
	// Err is the underlying read, parse, or validation error.
	Err error
}

func (e *InvalidMappingError) Error() string {
	return fmt.Sprintf("invalid mapping file %s: %v", e.Path, e.Err)
}

func (e *InvalidMappingError) Unwrap() error {
	return e.Err
}

// configDir returns the user configuration directory, following the XDG
// convention: $XDG_CONFIG_HOME/padmap or $HOME/.config/padmap. The external
// configuration utility is X11-only, so no other platforms are considered.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// CandidatePaths returns the ordered default locations searched for a
// mapping file. Entries that cannot be resolved (e.g. no home directory)
// are omitted rather than reported.
func CandidatePaths() []string {
	var candidates []string

	if dir, err := configDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(dir, "keymap.yaml"),
			filepath.Join(dir, "keymap.json"),
		)
	}

	if env := os.Getenv(KeymapEnvVar); env != "" {
		candidates = append(candidates, env)
	}

	candidates = append(candidates, SystemKeymapPath)
	return candidates
}

// Locate resolves the mapping file to load. When explicit is non-empty it is
// used as-is (and must exist); otherwise the first candidate location that
// exists as a regular file wins. Returns ErrNoMappingFile when nothing
// resolves.
func Locate(explicit string) (string, error) {
	candidates := CandidatePaths()
	if explicit != "" {
		candidates = []string{explicit}
	}

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		return candidate, nil
	}

	return "", ErrNoMappingFile
}

// Load reads, parses, and validates the mapping document at path. The
// decoder is selected by extension: .json selects JSON, everything else is
// parsed as YAML.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InvalidMappingError{Path: path, Err: err}
	}

	var file documentFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &file)
	} else {
		err = yaml.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, &InvalidMappingError{Path: path, Err: err}
	}

	if err := file.validate(); err != nil {
		return nil, &InvalidMappingError{Path: path, Err: err}
	}

	return file.document(), nil
}

// Find combines Locate and Load: it resolves the mapping file and returns
// the parsed document along with the path it came from.
func Find(explicit string) (*Document, string, error) {
	path, err := Locate(explicit)
	if err != nil {
		return nil, "", err
	}
	doc, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return doc, path, nil
}
