// Package badge rewrites the shields.io version badge embedded in the
// extension README. The rewrite is a literal in-place text substitution so
// the rest of the document is never reformatted.
package badge

import (
	"fmt"
	"os"
	"regexp"
)

// badgePattern matches the version badge:
// ![Version](https://img.shields.io/badge/version-X.Y.Z-blue.svg)
var badgePattern = regexp.MustCompile(`(!\[Version\]\(https://img\.shields\.io/badge/version-)[\d.]+(-blue\.svg\))`)

// UpdateVersion rewrites the version badge in the document at path to show
// newVersion. Returns true when the file was modified. A missing file is not
// an error; the caller treats any failure here as advisory anyway.
func UpdateVersion(path, newVersion string) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	updated := badgePattern.ReplaceAll(data, []byte("${1}"+newVersion+"${2}"))
	if string(updated) == string(data) {
		return false, nil
	}

	if err := os.WriteFile(path, updated, 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}
