package engine

import "io"

// DetectDuplicateKeys drains src and reports duplicate object keys with their
// JSON Pointer. If onDup is DupIgnore, no issues are produced. maxIssues < 0
// means unlimited; 0 means disabled; >0 sets a limit after which a single
// "truncated" issue is appended.
func DetectDuplicateKeys(src TokenSource, onDup DuplicateStrictness, maxIssues int) ([]SimpleIssue, error) {
	if onDup == DupIgnore || maxIssues == 0 {
		return nil, nil
	}
	var issues []SimpleIssue
	full := false
	wrapped := WrapWithEnforcement(src, EnforceOptions{
		OnDuplicate: DupWarn,
		IssueSink: func(si SimpleIssue) {
			if full {
				return
			}
			issues = append(issues, si)
			if maxIssues > 0 && len(issues) >= maxIssues {
				issues = append(issues, SimpleIssue{Code: "truncated", Path: "/", Message: "max issues reached"})
				full = true
			}
		},
	})
	for {
		_, err := wrapped.NextToken()
		if err == io.EOF {
			return issues, nil
		}
		if err != nil {
			issues = append(issues, SimpleIssue{Code: "parse_error", Path: "/", Message: err.Error()})
			return issues, nil
		}
		if onDup == DupError && len(issues) > 0 {
			return issues, nil
		}
	}
}
