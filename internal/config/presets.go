// Package config provides configuration file parsing for kcmine.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/blackwell-systems/kcmine/internal/mining"
)

// Dir returns the kcmine config directory, respecting XDG_CONFIG_HOME.
// Defaults to ~/.config/kcmine if XDG_CONFIG_HOME is not set.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "kcmine"), nil
}

// Presets holds named threshold bundles declared by the user. Each key
// is the preset name passed to --preset.
type Presets struct {
	ByName map[string]mining.Thresholds
}

// LoadPresets reads the presets file at {dir}/presets and returns the
// parsed config. If the file does not exist, an empty config is
// returned without an error. Each non-comment line has the form
//
//	name minsup minconf minprob
//
// with whitespace-separated fields. Unlike a missing file, a malformed
// line is an error, reported with its line number, so a typo cannot
// silently change thresholds.
func LoadPresets(dir string) (*Presets, error) {
	cfg := &Presets{
		ByName: make(map[string]mining.Thresholds),
	}

	path := filepath.Join(dir, "presets")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())

		// Skip blank lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("%s:%d: want 'name minsup minconf minprob', got %d fields",
				path, lineno, len(fields))
		}

		name := fields[0]
		minsup, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: minsup %q is not an integer", path, lineno, fields[1])
		}
		minconf, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: minconf %q is not a number", path, lineno, fields[2])
		}
		minprob, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: minprob %q is not a number", path, lineno, fields[3])
		}

		th := mining.Thresholds{
			MinSupport:     minsup,
			MinConfidence:  minconf,
			MinProbability: minprob,
		}
		if err := th.Validate(); err != nil {
			return nil, fmt.Errorf("%s:%d: preset %q: %w", path, lineno, name, err)
		}

		cfg.ByName[name] = th
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Resolve looks up a preset by name.
func (p *Presets) Resolve(name string) (mining.Thresholds, bool) {
	th, ok := p.ByName[name]
	return th, ok
}
