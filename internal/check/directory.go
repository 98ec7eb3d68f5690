package check

import (
	"os"

	"github.com/harrison/different/internal/models"
)

// evaluateDirectory checks that every listed child exists. Unlisted entries
// are allowed, and an empty Children list checks only the directory itself.
func (e *Evaluator) evaluateDirectory(c models.DirectoryCheck) (models.Status, error) {
	full := e.resolve(c.Path)

	info, err := os.Stat(full)
	if err != nil || !info.IsDir() {
		return models.Fail("Missing directory: %s", c.Path), nil
	}

	entries, err := os.ReadDir(full)
	if err != nil {
		return models.Fail("Unable to read directory %s", c.Path), nil
	}

	present := make(map[string]bool, len(entries))
	for _, entry := range entries {
		present[entry.Name()] = true
	}

	for _, child := range c.Children {
		if !present[child] {
			return models.Fail("Expected child %s of %s does not exist", child, c.Path), nil
		}
	}

	return models.Success(), nil
}
