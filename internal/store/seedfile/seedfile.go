package seedfile

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/relist/internal/model"
)

// Seed files are read once at startup. Nothing is ever written back.
//
//   .json        [{"id": "...", "content": "..."}]
//   .yaml/.yml   - {id: ..., content: ...}
//   anything else: one item content per non-blank line, ids assigned later

// Format is a seed file encoding.
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatYAML
)

// FormatFor picks the format from the file extension.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Load reads the seed at path. A missing file is an error wrapping os.ErrNotExist.
func Load(path string) ([]model.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	return Parse(b, FormatFor(path))
}

// Parse decodes seed bytes in the given format.
func Parse(b []byte, f Format) ([]model.Item, error) {
	var items []model.Item
	switch f {
	case FormatJSON:
		if err := json.Unmarshal(b, &items); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(b, &items); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
	default:
		sc := bufio.NewScanner(bytes.NewReader(b))
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			items = append(items, model.Item{Content: line})
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}
