package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/different/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullSuite = `
variables:
  project: demo
  env: prod
checks:
  - name: readme
    description: README is rendered from the template
    type: file
    path: README.md
    contains: ["demo"]
    template: README.md.tmpl
    contents: "# demo\n"
  - name: src dir
    type: directory
    path: src
    children: [main.go, go.mod]
  - name: builds
    type: command
    cmd: go build ./...
    code: 2
    expected_stdout: ""
    expected_stderr: "oops\n"
    stdout_contains: [a]
    stderr_contains: [oops]
  - name: env set
    type: var_set
    key: env
    value: prod
  - name: env present
    type: VarSet
    key: env
  - name: api
    type: http
    method: GET
    url: http://localhost:8080/health
    code: 200
    body_contains: [ok]
`

func strPtr(s string) *string { return &s }

func TestYAMLParser_FullSuite(t *testing.T) {
	suite, err := NewYAMLParser().Parse(strings.NewReader(fullSuite))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"project": "demo", "env": "prod"}, suite.Variables)
	require.Len(t, suite.Checks, 6)

	assert.Equal(t, models.Check{
		Name:        "readme",
		Description: "README is rendered from the template",
		Type: models.FileCheck{
			Path:     "README.md",
			Contains: []string{"demo"},
			Template: strPtr("README.md.tmpl"),
			Contents: strPtr("# demo\n"),
		},
	}, suite.Checks[0])

	assert.Equal(t, models.DirectoryCheck{Path: "src", Children: []string{"main.go", "go.mod"}}, suite.Checks[1].Type)

	assert.Equal(t, models.CommandCheck{
		Cmd:            "go build ./...",
		Code:           2,
		ExpectedStdout: strPtr(""),
		ExpectedStderr: strPtr("oops\n"),
		StdoutContains: []string{"a"},
		StderrContains: []string{"oops"},
	}, suite.Checks[2].Type)

	assert.Equal(t, models.VarSetCheck{Key: "env", Value: strPtr("prod")}, suite.Checks[3].Type)
	assert.Equal(t, models.VarSetCheck{Key: "env"}, suite.Checks[4].Type)

	assert.Equal(t, models.HTTPCheck{
		Method:       "GET",
		Code:         200,
		URL:          "http://localhost:8080/health",
		BodyContains: []string{"ok"},
	}, suite.Checks[5].Type)
}

func TestYAMLParser_Defaults(t *testing.T) {
	suite, err := NewYAMLParser().Parse(strings.NewReader(`
checks:
  - {name: runs, type: command, cmd: "true"}
`))
	require.NoError(t, err)

	assert.NotNil(t, suite.Variables)
	cmd, ok := suite.Checks[0].Type.(models.CommandCheck)
	require.True(t, ok)
	assert.Equal(t, 0, cmd.Code)
	assert.Nil(t, cmd.ExpectedStdout)
}

func TestYAMLParser_EmptyDocument(t *testing.T) {
	suite, err := NewYAMLParser().Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, suite.Checks)
}

func TestYAMLParser_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"unknown type", "checks:\n  - {name: x, type: ftp}\n", `unknown type "ftp"`},
		{"missing type", "checks:\n  - {name: x, path: a}\n", "missing type"},
		{"missing name", "checks:\n  - {type: file, path: a}\n", "check name is required"},
		{"file without path", "checks:\n  - {name: x, type: file}\n", "path is required"},
		{"blank path", "checks:\n  - {name: x, type: directory, path: '  '}\n", "path is required"},
		{"empty cmd", "checks:\n  - {name: x, type: command, cmd: '  '}\n", "requires cmd"},
		{"var_set without key", "checks:\n  - {name: x, type: var_set}\n", "requires key"},
		{"http without url", "checks:\n  - {name: x, type: http}\n", "requires url"},
		{"unknown field", "checks:\n  - {name: x, type: file, path: a, bogus: 1}\n", "bogus"},
		{"malformed yaml", "checks: [", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewYAMLParser().Parse(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSuite)
			if tt.wantErr != "" {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestYAMLParser_PathsOutsideBase(t *testing.T) {
	suite, err := NewYAMLParser().Parse(strings.NewReader(`
checks:
  - {name: sibling, type: directory, path: ../dist}
  - {name: absolute, type: file, path: /tmp/out.txt}
`))
	require.NoError(t, err)
	require.Len(t, suite.Checks, 2)
	assert.Equal(t, models.DirectoryCheck{Path: "../dist"}, suite.Checks[0].Type)
	assert.Equal(t, models.FileCheck{Path: "/tmp/out.txt"}, suite.Checks[1].Type)
}

func TestYAMLParser_ErrorNamesCheckIndex(t *testing.T) {
	_, err := NewYAMLParser().Parse(strings.NewReader(`
checks:
  - {name: ok, type: var_set, key: a}
  - {name: bad, type: var_set}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check 2")
	assert.Contains(t, err.Error(), `"bad"`)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("suite.yaml"))
	assert.Equal(t, FormatYAML, DetectFormat("SUITE.YML"))
	assert.Equal(t, FormatUnknown, DetectFormat("suite.toml"))
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "unknown", FormatUnknown.String())
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "checks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fullSuite), 0o644))

	suite, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, suite.Checks, 6)

	_, err = ParseFile(filepath.Join(dir, "checks.toml"))
	assert.Error(t, err)

	_, err = ParseFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestNormalizeKind(t *testing.T) {
	assert.Equal(t, models.KindVarSet, NormalizeKind("VarSet"))
	assert.Equal(t, models.KindVarSet, NormalizeKind("var-set"))
	assert.Equal(t, models.KindFile, NormalizeKind(" File "))
}
