// Package manifest reads and rewrites the extension's package.json. Only the
// fields the builder cares about (name, version, main, scripts) are
// interpreted; every other key is carried through untouched and in its
// original order, so a rewrite never disturbs unrelated manifest content.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Well-known manifest field names.
const (
	FieldName    = "name"
	FieldVersion = "version"
	FieldMain    = "main"
	FieldScripts = "scripts"
)

// Document is a loaded package.json with key order preserved.
type Document struct {
	path   string
	order  []string
	fields map[string]json.RawMessage
}

// Load reads and parses the manifest at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	doc := &Document{
		path:   path,
		fields: make(map[string]json.RawMessage),
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("parse manifest: top-level value is not an object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse manifest: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("parse manifest: unexpected key token %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parse manifest field %q: %w", key, err)
		}

		if _, exists := doc.fields[key]; !exists {
			doc.order = append(doc.order, key)
		}
		doc.fields[key] = raw
	}

	return doc, nil
}

// Path returns the file path the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// Save writes the document back to its source path with two-space
// indentation and a trailing newline, matching npm's own formatting.
func (d *Document) Save() error {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, key := range d.order {
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return fmt.Errorf("marshal manifest key %q: %w", key, err)
		}
		var value bytes.Buffer
		if err := json.Indent(&value, d.fields[key], "  ", "  "); err != nil {
			return fmt.Errorf("indent manifest field %q: %w", key, err)
		}
		buf.WriteString("  ")
		buf.Write(keyJSON)
		buf.WriteString(": ")
		buf.Write(value.Bytes())
		if i < len(d.order)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")

	if err := os.WriteFile(d.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// stringField decodes a top-level field as a string.
func (d *Document) stringField(key string) (string, bool) {
	raw, ok := d.fields[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// setStringField encodes a string into a top-level field, appending the key
// if it did not exist before.
func (d *Document) setStringField(key, value string) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal manifest field %q: %w", key, err)
	}
	if _, exists := d.fields[key]; !exists {
		d.order = append(d.order, key)
	}
	d.fields[key] = json.RawMessage(raw)
	return nil
}

// Name returns the extension name field.
func (d *Document) Name() (string, bool) {
	return d.stringField(FieldName)
}

// Version returns the version field.
func (d *Document) Version() (string, bool) {
	return d.stringField(FieldVersion)
}

// Main returns the entrypoint field.
func (d *Document) Main() (string, bool) {
	return d.stringField(FieldMain)
}

// SetVersion rewrites the version field.
func (d *Document) SetVersion(version string) error {
	return d.setStringField(FieldVersion, version)
}

// SetMain rewrites the entrypoint field.
func (d *Document) SetMain(main string) error {
	return d.setStringField(FieldMain, main)
}

// Scripts returns the scripts mapping. A missing or malformed scripts field
// yields an empty map.
func (d *Document) Scripts() map[string]string {
	raw, ok := d.fields[FieldScripts]
	if !ok {
		return map[string]string{}
	}
	scripts := make(map[string]string)
	if err := json.Unmarshal(raw, &scripts); err != nil {
		return map[string]string{}
	}
	return scripts
}

// HasScript reports whether a named script is declared.
func (d *Document) HasScript(name string) bool {
	_, ok := d.Scripts()[name]
	return ok
}
