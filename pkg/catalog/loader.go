package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type documentFile struct {
	LegacyCollisions bool        `json:"legacyCollisions,omitempty" yaml:"legacyCollisions,omitempty"`
	Groups           []groupFile `json:"groups" yaml:"groups"`
}

type groupFile struct {
	Name      string         `json:"name" yaml:"name"`
	Entries   []string       `json:"entries" yaml:"entries"`
	Sequences []sequenceFile `json:"sequences,omitempty" yaml:"sequences,omitempty"`
}

type sequenceFile struct {
	Prefix string `json:"prefix" yaml:"prefix"`
	Count  int    `json:"count" yaml:"count"`
}

// Parse decodes a single JSON or YAML catalog document. source only appears
// in error messages.
func Parse(data []byte, source string) (*Catalog, error) {
	doc, err := parseDocument(data, source)
	if err != nil {
		return nil, err
	}
	groups, err := normaliseGroups(doc.Groups, source)
	if err != nil {
		return nil, err
	}
	return build(groups, doc.LegacyCollisions, source)
}

// LoadFS walks fsys and merges every .json/.yaml/.yml catalog document into a
// single catalog. Files are visited in lexical order so the group order, and
// therefore the output, is stable. A nil or empty filesystem is an error.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	if fsys == nil {
		return nil, fmt.Errorf("catalog: filesystem is nil")
	}

	var (
		groups []Group
		legacy bool
		files  int
	)
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}
		normalised, err := normaliseGroups(doc.Groups, path)
		if err != nil {
			return err
		}

		groups = append(groups, normalised...)
		legacy = legacy || doc.LegacyCollisions
		files++
		return nil
	})
	if err != nil {
		return nil, err
	}
	if files == 0 {
		return nil, fmt.Errorf("catalog: no catalog documents found")
	}

	return build(groups, legacy, "filesystem")
}

// Marshal renders the catalog as a YAML document accepted by Parse. Generated
// sequences are written out as plain entries.
func Marshal(c *Catalog) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("catalog: marshal nil catalog")
	}
	doc := documentFile{LegacyCollisions: c.legacyCollisions}
	for _, group := range c.Groups() {
		doc.Groups = append(doc.Groups, groupFile{
			Name:    group.Name,
			Entries: group.Entries,
		})
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("catalog: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("catalog: encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func build(groups []Group, legacy bool, source string) (*Catalog, error) {
	var opts []Option
	if legacy {
		opts = append(opts, WithLegacyCollisions())
	}
	c, err := NewWithOptions(opts, groups...)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", source, err)
	}
	return c, nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("catalog: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("catalog: parse %s: %w", source, err)
	}
	return doc, nil
}

func normaliseGroups(raw []groupFile, source string) ([]Group, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("catalog: file %s declares no groups", source)
	}

	out := make([]Group, 0, len(raw))
	for idx, rg := range raw {
		group := Group{Name: strings.TrimSpace(rg.Name)}
		for _, entry := range rg.Entries {
			group.Entries = append(group.Entries, strings.TrimSpace(entry))
		}
		for _, seq := range rg.Sequences {
			prefix := strings.TrimSpace(seq.Prefix)
			if prefix == "" {
				return nil, fmt.Errorf("catalog: file %s group %d defines a sequence without prefix", source, idx+1)
			}
			if seq.Count <= 0 {
				return nil, fmt.Errorf("catalog: file %s sequence %q needs a positive count, got %d", source, prefix, seq.Count)
			}
			group = group.WithSequence(prefix, seq.Count)
		}
		out = append(out, group)
	}
	return out, nil
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
