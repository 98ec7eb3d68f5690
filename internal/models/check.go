package models

// Check kinds as they appear in suite files.
const (
	KindFile      = "file"
	KindDirectory = "directory"
	KindCommand   = "command"
	KindHTTP      = "http"
	KindVarSet    = "var_set"
)

// Check is a named assertion about generated output.
type Check struct {
	Name        string
	Description string
	Type        CheckType
}

// CheckType is the closed set of check payloads. It is implemented only
// by the types in this package.
type CheckType interface {
	Kind() string
	checkType()
}

// FileCheck asserts properties of a single file relative to the base
// directory.
type FileCheck struct {
	Path     string
	Contains []string
	Template *string // template name rendered and compared to the file
	Contents *string // exact expected contents
}

// DirectoryCheck asserts a directory exists and contains at least the
// listed children.
type DirectoryCheck struct {
	Path     string
	Children []string
}

// CommandCheck asserts the exit code and output of a subprocess.
type CommandCheck struct {
	Cmd            string
	Code           int
	ExpectedStdout *string
	ExpectedStderr *string
	StdoutContains []string
	StderrContains []string
}

// HTTPCheck is reserved. Evaluating it is an error.
type HTTPCheck struct {
	Method       string
	Code         int
	URL          string
	BodyContains []string
	ExpectedBody *string
}

// VarSetCheck asserts a variable is present, optionally with a value.
type VarSetCheck struct {
	Key   string
	Value *string
}

func (FileCheck) Kind() string      { return KindFile }
func (DirectoryCheck) Kind() string { return KindDirectory }
func (CommandCheck) Kind() string   { return KindCommand }
func (HTTPCheck) Kind() string      { return KindHTTP }
func (VarSetCheck) Kind() string    { return KindVarSet }

func (FileCheck) checkType()      {}
func (DirectoryCheck) checkType() {}
func (CommandCheck) checkType()   {}
func (HTTPCheck) checkType()      {}
func (VarSetCheck) checkType()    {}

// Suite is a parsed suite file: variables plus checks in evaluation order.
type Suite struct {
	Variables map[string]string
	Checks    []Check
}
