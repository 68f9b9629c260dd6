package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/frontkit/nextkit/internal/installer"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const schemaURL = "config.schema.json"

//go:embed schema/config.schema.json
var schemaBytes []byte

var printer = message.NewPrinter(language.English)

var loadSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("decoding config schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("registering config schema: %w", err)
	}
	schema, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compiling config schema: %w", err)
	}
	return schema, nil
})

// ValidationResult is the outcome of validating one config document.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is one problem found in a config document.
type ValidationIssue struct {
	Path    string // JSON pointer into the document, e.g. "/package_manager"
	Key     string // dotted config key, e.g. "install.skip"
	Message string
	Keyword string // failing schema keyword
}

// String renders the issue as "key: message".
func (i ValidationIssue) String() string {
	if i.Key == "" {
		return i.Message
	}
	return i.Key + ": " + i.Message
}

// Validate checks YAML config bytes against the embedded schema. Parse and
// schema failures are returned as errors; violations land in the result.
func Validate(data []byte) (*ValidationResult, error) {
	schema, err := loadSchema()
	if err != nil {
		return nil, err
	}

	doc := map[string]any{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	// The schema library wants JSON-decoded values.
	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding config as JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("decoding config JSON: %w", err)
	}

	verr := schema.Validate(inst)
	if verr == nil {
		return &ValidationResult{Valid: true}, nil
	}
	ve, ok := verr.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("validating config: %w", verr)
	}

	var issues []ValidationIssue
	walk(ve, &issues)
	if len(issues) == 0 {
		issues = append(issues, ValidationIssue{Message: ve.Error()})
	}
	sort.SliceStable(issues, func(a, b int) bool { return issues[a].Key < issues[b].Key })
	return &ValidationResult{Issues: issues}, nil
}

// ValidateFile reads path and validates its contents.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Validate(data)
}

func walk(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	for _, cause := range ve.Causes {
		walk(cause, issues)
	}
	if len(ve.Causes) > 0 || ve.ErrorKind == nil {
		return
	}

	loc := ve.InstanceLocation
	switch k := ve.ErrorKind.(type) {
	case *kind.AdditionalProperties:
		for _, prop := range k.Properties {
			child := append(append([]string{}, loc...), prop)
			*issues = append(*issues, newIssue(child, "additionalProperties",
				fmt.Sprintf("unknown key (known: %s)", strings.Join(Keys(), ", "))))
		}
	case *kind.Enum:
		msg := ve.ErrorKind.LocalizedString(printer)
		if dotted(loc) == KeyPackageManager {
			msg = fmt.Sprintf("unsupported package manager %v (supported: %s)", k.Got, strings.Join(installer.Supported(), ", "))
		}
		*issues = append(*issues, newIssue(loc, "enum", msg))
	default:
		keyword := ""
		if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
			keyword = kw[len(kw)-1]
		}
		*issues = append(*issues, newIssue(loc, keyword, ve.ErrorKind.LocalizedString(printer)))
	}
}

func newIssue(loc []string, keyword, msg string) ValidationIssue {
	issue := ValidationIssue{Key: dotted(loc), Keyword: keyword, Message: msg}
	if len(loc) > 0 {
		issue.Path = "/" + strings.Join(loc, "/")
	}
	return issue
}

func dotted(loc []string) string {
	return strings.Join(loc, ".")
}
