package geojson

// NumberMode dictates how numbers are materialized in the value tree.
type NumberMode int

const (
	NumberFloat64    NumberMode = iota // Fast mode (with potential precision loss in feature ids and properties).
	NumberJSONNumber                   // Preserve json.Number.
)

// Severity expresses the severity level for input issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity // Warn or Error (duplicate JSON keys).
}

// ParseOpt bundles parsing options.
type ParseOpt struct {
	Strictness Strictness
	// MaxDepth bounds array/object nesting of the input. GeometryCollection
	// nesting is otherwise only bounded by the document. 0 disables the check.
	MaxDepth int
	// MaxBytes caps the consumed input. 0 disables the check.
	MaxBytes int64
	// OnIssue receives non-fatal issues such as duplicate key warnings.
	OnIssue func(Issue)
}
