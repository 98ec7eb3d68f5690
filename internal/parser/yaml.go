package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/harrison/different/internal/models"
	"gopkg.in/yaml.v3"
)

// YAMLParser parses suite files written in YAML.
type YAMLParser struct{}

// NewYAMLParser creates a YAML suite parser
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

type yamlSuite struct {
	Variables map[string]string `yaml:"variables"`
	Checks    []yamlCheck       `yaml:"checks"`
}

// yamlCheck is the union of every check kind's fields; which ones apply
// depends on Type.
type yamlCheck struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`

	Path     string   `yaml:"path"`
	Contains []string `yaml:"contains"`
	Template *string  `yaml:"template"`
	Contents *string  `yaml:"contents"`
	Children []string `yaml:"children"`

	Cmd            string   `yaml:"cmd"`
	Code           *int     `yaml:"code"`
	ExpectedStdout *string  `yaml:"expected_stdout"`
	ExpectedStderr *string  `yaml:"expected_stderr"`
	StdoutContains []string `yaml:"stdout_contains"`
	StderrContains []string `yaml:"stderr_contains"`

	Method       string   `yaml:"method"`
	URL          string   `yaml:"url"`
	BodyContains []string `yaml:"body_contains"`
	ExpectedBody *string  `yaml:"expected_body"`

	Key   string  `yaml:"key"`
	Value *string `yaml:"value"`
}

// Parse decodes a suite. Unknown keys are rejected.
func (p *YAMLParser) Parse(r io.Reader) (*models.Suite, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var raw yamlSuite
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return &models.Suite{Variables: map[string]string{}}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidSuite, err)
	}

	suite := &models.Suite{
		Variables: raw.Variables,
		Checks:    make([]models.Check, 0, len(raw.Checks)),
	}
	if suite.Variables == nil {
		suite.Variables = map[string]string{}
	}

	for i, rc := range raw.Checks {
		check, err := convertCheck(rc)
		if err != nil {
			return nil, fmt.Errorf("%w: check %d: %w", ErrInvalidSuite, i+1, err)
		}
		suite.Checks = append(suite.Checks, check)
	}

	return suite, nil
}

func convertCheck(rc yamlCheck) (models.Check, error) {
	check := models.Check{Name: rc.Name, Description: rc.Description}
	code := 0
	if rc.Code != nil {
		code = *rc.Code
	}

	switch NormalizeKind(rc.Type) {
	case models.KindFile:
		check.Type = models.FileCheck{
			Path:     rc.Path,
			Contains: rc.Contains,
			Template: rc.Template,
			Contents: rc.Contents,
		}
	case models.KindDirectory:
		check.Type = models.DirectoryCheck{Path: rc.Path, Children: rc.Children}
	case models.KindCommand:
		check.Type = models.CommandCheck{
			Cmd:            rc.Cmd,
			Code:           code,
			ExpectedStdout: rc.ExpectedStdout,
			ExpectedStderr: rc.ExpectedStderr,
			StdoutContains: rc.StdoutContains,
			StderrContains: rc.StderrContains,
		}
	case models.KindHTTP:
		check.Type = models.HTTPCheck{
			Method:       rc.Method,
			Code:         code,
			URL:          rc.URL,
			BodyContains: rc.BodyContains,
			ExpectedBody: rc.ExpectedBody,
		}
	case models.KindVarSet:
		check.Type = models.VarSetCheck{Key: rc.Key, Value: rc.Value}
	case "":
		return check, fmt.Errorf("%q: missing type", rc.Name)
	default:
		return check, fmt.Errorf("%q: unknown type %q", rc.Name, rc.Type)
	}

	if err := ValidateCheck(check); err != nil {
		return check, err
	}
	return check, nil
}
