// Package scaffold maintains the tip folder layout of the content
// repository: one Tip_NNN directory per article, each with a README.md.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultCount is the number of tip folders in the series.
const DefaultCount = 100

// readmeTemplate is the starting README for a new tip folder. %d is the tip
// number.
const readmeTemplate = `# Tip %d: [Tip Title]

## Description
[Description of the tip]

## Code Snippet
` + "```csharp" + `
// Code here
` + "```" + `

## Resources
- [Link to documentation]
`

// Setup creates Tip_001 through Tip_NNN under root, each with a templated
// README.md. Existing folders and files are left untouched, so rerunning is
// safe. Returns the number of READMEs written.
func Setup(root string, count int) (int, error) {
	if count <= 0 {
		count = DefaultCount
	}

	created := 0
	for i := 1; i <= count; i++ {
		dir := filepath.Join(root, fmt.Sprintf("Tip_%03d", i))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return created, fmt.Errorf("failed to create %s: %w", dir, err)
		}

		readme := filepath.Join(dir, "README.md")
		if _, err := os.Stat(readme); err == nil {
			continue
		}
		if err := os.WriteFile(readme, []byte(fmt.Sprintf(readmeTemplate, i)), 0o644); err != nil {
			return created, fmt.Errorf("failed to write %s: %w", readme, err)
		}
		created++
	}
	return created, nil
}

// Rename migrates the old Day_NNN folders to the Tip_NNN naming, rewriting
// "Day N" headers in READMEs that still carry the template title. Returns
// the number of folders moved.
func Rename(root string, count int) (int, error) {
	if count <= 0 {
		count = DefaultCount
	}

	moved := 0
	for i := 1; i <= count; i++ {
		oldPath := filepath.Join(root, fmt.Sprintf("Day_%03d", i))
		newPath := filepath.Join(root, fmt.Sprintf("Tip_%03d", i))

		if _, err := os.Stat(oldPath); err != nil {
			continue
		}
		if err := os.Rename(oldPath, newPath); err != nil {
			return moved, fmt.Errorf("failed to rename %s: %w", oldPath, err)
		}
		moved++

		if err := retitleReadme(filepath.Join(newPath, "README.md"), i); err != nil {
			return moved, err
		}
	}
	return moved, nil
}

// retitleReadme replaces "Day N" with "Tip N" in the README, if present.
// Articles whose titles were already edited by hand no longer contain the
// template text and pass through unchanged.
func retitleReadme(path string, n int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	content := string(data)
	updated := strings.ReplaceAll(content, fmt.Sprintf("Day %d", n), fmt.Sprintf("Tip %d", n))
	if updated == content {
		return nil
	}
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
