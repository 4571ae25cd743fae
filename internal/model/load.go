package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"housepriced/internal/features"
)

// DefaultPath is where the service looks for its artifact when none is configured.
const DefaultPath = "model/housing_model.json"

// Load reads, decodes and compiles the artifact at path. The format is chosen
// by extension: .json, .yaml/.yml or .toml.
func Load(path string) (*Model, error) {
	if path == "" {
		return nil, fmt.Errorf("empty model path")
	}
	p, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, p)
		}
		return nil, fmt.Errorf("read model: %w", err)
	}
	a, err := Decode(b, filepath.Ext(p))
	if err != nil {
		return nil, fmt.Errorf("decode model %s: %w", p, err)
	}
	return Compile(a, p)
}

// Decode parses an artifact document. ext selects the format and includes
// the leading dot.
func Decode(b []byte, ext string) (Artifact, error) {
	var a Artifact
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(b, &a); err != nil {
			return a, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &a); err != nil {
			return a, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &a); err != nil {
			return a, err
		}
	default:
		return a, fmt.Errorf("unsupported model extension: %q", ext)
	}
	return a, nil
}

// featureIndexes maps artifact feature names to columns of
// FeatureRecord.Vector.
func featureIndexes(names []string) ([]int, error) {
	if len(names) == 0 {
		return nil, invalidf("no features declared")
	}
	seen := make(map[string]bool, len(names))
	idx := make([]int, len(names))
	for i, name := range names {
		if seen[name] {
			return nil, invalidf("duplicate feature %q", name)
		}
		seen[name] = true
		col := -1
		for j, known := range features.Names {
			if known == name {
				col = j
				break
			}
		}
		if col < 0 {
			return nil, invalidf("unknown feature %q", name)
		}
		idx[i] = col
	}
	return idx, nil
}

// expandHome expands a leading '~' to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}
