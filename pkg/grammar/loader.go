package grammar

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// definitionFile is the on-disk shape of a grammar definition file:
//
//	kinds:
//	  - kind: Rating
//	    identity: {field: label}
//	    fields:
//	      - {name: label, type: string}
//	      - {name: stars, type: integer}
type definitionFile struct {
	Kinds []Entry `json:"kinds" yaml:"kinds"`
}

// LoadFS walks fsys and parses every JSON, YAML or HCL grammar definition file.
// Entries are returned in lexical file order, then in file order. A nil
// filesystem yields no entries.
func LoadFS(fsys fs.FS) ([]Entry, error) {
	if fsys == nil {
		return nil, nil
	}
	var entries []Entry
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("grammar: read %s: %w", path, err)
		}
		parsed, err := Parse(data, path)
		if err != nil {
			return err
		}
		entries = append(entries, parsed...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// LoadFile parses a single grammar definition file from disk.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("grammar: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a definition payload and validates every entry. Sources
// ending in .hcl are decoded as HCL; anything else as JSON, then YAML. source
// names the payload in error messages.
func Parse(data []byte, source string) ([]Entry, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("grammar: file %s is empty", source)
	}

	var doc definitionFile
	if strings.EqualFold(filepath.Ext(source), ".hcl") {
		parsed, err := parseHCL(data, source)
		if err != nil {
			return nil, err
		}
		doc = parsed
	} else if err := json.Unmarshal(data, &doc); err != nil {
		doc = definitionFile{}
		if yerr := yaml.Unmarshal(data, &doc); yerr != nil {
			return nil, fmt.Errorf("grammar: parse %s: invalid JSON or YAML: %w", source, yerr)
		}
	}

	if len(doc.Kinds) == 0 {
		return nil, fmt.Errorf("grammar: file %s defines no kinds", source)
	}
	for i, entry := range doc.Kinds {
		entry.Kind = strings.TrimSpace(entry.Kind)
		for j := range entry.Fields {
			entry.Fields[j].Name = strings.TrimSpace(entry.Fields[j].Name)
		}
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("grammar: %s kinds[%d]: %w", source, i, err)
		}
		doc.Kinds[i] = entry
	}
	return doc.Kinds, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml", ".hcl":
		return true
	default:
		return false
	}
}
