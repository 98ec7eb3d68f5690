package check

import (
	"fmt"

	"github.com/harrison/different/internal/models"
)

func (e *Evaluator) evaluateVarSet(c models.VarSetCheck) (models.Status, error) {
	actual, ok := e.Variables[c.Key]
	if !ok {
		return models.Fail("Variable '%s' not set", c.Key), nil
	}
	if c.Value != nil && actual != *c.Value {
		return models.Fail("Variable '%s' did not match expected value '%s' (was '%s')", c.Key, *c.Value, actual), nil
	}
	return models.Success(), nil
}

// evaluateHTTP is a stub. HTTP checks parse but cannot be evaluated, and
// reaching this is an error rather than a failed check.
func (e *Evaluator) evaluateHTTP(c models.HTTPCheck) (models.Status, error) {
	return models.Status{}, fmt.Errorf("%w: %s %s", ErrHTTPNotImplemented, c.Method, c.URL)
}
