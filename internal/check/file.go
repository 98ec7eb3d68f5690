package check

import (
	"fmt"
	"os"
	"strings"

	"github.com/harrison/different/internal/models"
	"github.com/harrison/different/internal/templates"
)

func (e *Evaluator) evaluateFile(c models.FileCheck) (models.Status, error) {
	full := e.resolve(c.Path)

	info, err := os.Stat(full)
	if err != nil || !info.Mode().IsRegular() {
		return models.Fail("Missing file %s", c.Path), nil
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return models.Fail("Unable to read file %s", full), nil
	}
	actual := string(data)

	if c.Contents != nil {
		if !e.textsMatch("Expected", *c.Contents, "Actual", actual) {
			return models.Fail("File contents do not match expected contents"), nil
		}
	}

	if c.Template != nil {
		data, err := os.ReadFile(full)
		if err != nil {
			return models.Fail("Unable to read file %s", full), nil
		}

		if e.Templates == nil {
			return models.Status{}, fmt.Errorf("%w: %s (no template directory configured)", templates.ErrTemplateNotFound, *c.Template)
		}
		rendered, err := e.Templates.Render(*c.Template, e.Variables)
		if err != nil {
			return models.Status{}, err
		}
		e.logger().LogDebug(fmt.Sprintf("rendered template %s for %s", *c.Template, c.Path))

		if !e.textsMatch("Template", rendered, "Actual", string(data)) {
			return models.Fail("File contents do not match rendered template"), nil
		}
	}

	for _, fragment := range c.Contains {
		if !strings.Contains(actual, fragment) {
			return models.Fail("%s did not contain expected fragment '%s'", c.Path, fragment), nil
		}
	}

	return models.Success(), nil
}
