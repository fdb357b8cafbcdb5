package fixture

import (
	"fmt"
	"strings"
)

// ValidationError is one problem found in a fixture file.
type ValidationError struct {
	Path    string // e.g. "criteria.body[0].decimal"
	Message string
}

func (e ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// ValidationResult collects every problem in a file. It is returned as the
// error from Parse when the file is invalid.
type ValidationResult struct {
	File   string
	Errors []ValidationError
}

// IsValid returns true if there are no validation errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Error returns one line per problem.
func (r *ValidationResult) Error() string {
	if r.IsValid() {
		return ""
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		if r.File != "" {
			msgs = append(msgs, r.File+": "+e.Error())
			continue
		}
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "\n")
}

// AddError adds a validation error.
func (r *ValidationResult) AddError(path, message string) {
	r.Errors = append(r.Errors, ValidationError{Path: path, Message: message})
}

// Validate checks the decoded file beyond what the schema can express:
// expected values must parse as their kind and group occurrences must be
// 1-based. Criteria inside a case that expects an error are not checked.
func Validate(f *File) *ValidationResult {
	result := &ValidationResult{File: f.Path}

	if f.Criteria == nil && f.Message == nil && len(f.Cases) == 0 {
		result.AddError("", "file declares no criteria, message or cases")
	}
	if f.Criteria != nil {
		validateCriteria("criteria", f.Criteria, result)
	}
	for i, c := range f.Cases {
		path := fmt.Sprintf("cases[%d]", i)
		switch c.Expect {
		case ExpectMatch, ExpectNoMatch:
			if c.Criteria != nil {
				validateCriteria(path+".criteria", c.Criteria, result)
			}
		case ExpectError:
		default:
			result.AddError(path+".expect", fmt.Sprintf("unknown expectation %q", c.Expect))
		}
		if c.Criteria == nil {
			result.AddError(path+".criteria", "required")
		}
		if c.Message == nil {
			result.AddError(path+".message", "required")
		}
	}
	return result
}

func validateCriteria(path string, d *CriteriaDoc, result *ValidationResult) {
	validateFields(path+".body", d.Body, result)
	validateFields(path+".header", d.Header, result)
	for i, g := range d.Groups {
		gp := fmt.Sprintf("%s.groups[%d]", path, i)
		if g.Occurrence < 1 {
			result.AddError(gp+".occurrence", fmt.Sprintf("must be at least 1, got %d", g.Occurrence))
		}
		validateFields(gp+".fields", g.Fields, result)
	}
}

func validateFields(path string, fields []FieldDoc, result *ValidationResult) {
	for i, f := range fields {
		if _, err := f.Expected(); err != nil {
			result.AddError(fmt.Sprintf("%s[%d].%s", path, i, f.Kind), err.Error())
		}
	}
}
