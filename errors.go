package geojson

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andyprasetya/geojson/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// Structural: a node has the wrong JSON shape for where it sits.
	CodeExpectedObjectValue = "expected_object_value"
	CodeExpectedArrayValue  = "expected_array_value"
	CodeExpectedStringValue = "expected_string_value"
	CodeExpectedF64Value    = "expected_f64_value"
	// Schema: a key is missing or holds a disallowed shape.
	CodeExpectedProperty               = "expected_property"
	CodeUnknownType                    = "unknown_type"
	CodeInvalidIdentifierType          = "invalid_identifier_type"
	CodePropertiesExpectedObjectOrNull = "properties_expected_object_or_null"
	CodeBboxExpectedArray              = "bbox_expected_array"
	CodeBboxExpectedNumericValues      = "bbox_expected_numeric_values"
	CodeReservedForeignMember          = "reserved_foreign_member"
	// Top-level input failures.
	CodeMalformedJSON         = "malformed_json"
	CodeGeoJSONExpectedObject = "geojson_expected_object"
	// Input enforcement (depth/size/duplicates).
	CodeParseError   = "parse_error"
	CodeDuplicateKey = "duplicate_key"
	CodeTruncated    = "truncated"
)

// Issue represents a single decode or encode failure.
type Issue struct {
	Path    string // JSON Pointer (for example: /features/2/geometry/coordinates/0).
	Code    string // One of the codes listed above.
	Message string
	// Property names the missing or offending key for expected_property and
	// reserved_foreign_member.
	Property string
	Cause    error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"expected":"Feature","got":"Point"})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of decode errors that implements error. Decoding is
// fail-fast, so a returned Issues holds exactly one entry.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. expected_property(type) at /features/0
		b.WriteString(it.Code)
		if it.Property != "" {
			fmt.Fprintf(b, "(%s)", it.Property)
		}
		fmt.Fprintf(b, " at %s", it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is reaches tokenizer errors.
func (iss Issues) Unwrap() []error {
	var errs []error
	for _, it := range iss {
		if it.Cause != nil {
			errs = append(errs, it.Cause)
		}
	}
	return errs
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries an Issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

func singleIssue(code, msg string) Issues { return AppendIssues(nil, Issue{Path: "/", Code: code, Message: msg}) }

// fail builds the single-entry Issues returned by every decoder.
func fail(p PathRef, code string) error {
	return Issues{{Path: p.Pointer(), Code: code, Message: i18n.T(code, nil)}}
}

func failProperty(p PathRef, code, name string) error {
	return Issues{{
		Path:     p.Pointer(),
		Code:     code,
		Property: name,
		Message:  i18n.T(code, map[string]string{"property": name}),
	}}
}

func failType(p PathRef, expected, got string) error {
	return Issues{{
		Path:    p.Field("type").Pointer(),
		Code:    CodeUnknownType,
		Message: i18n.T(CodeUnknownType, map[string]string{"expected": expected, "got": got}),
		Params:  map[string]any{"expected": expected, "got": got},
	}}
}
