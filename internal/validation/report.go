// Package validation implements the composable artifact validation chain:
// structural layout, frontmatter parse, schema, content quality, and hook
// rules. Every stage is pure and collects all findings; one bad field never
// hides the next.
package validation

import "sort"

// Severity classifies how an issue affects acceptance. Only errors block a
// commit; warnings and informational notes ride along for rendering.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Stage identifies which link of the chain produced an issue. The numeric
// order is the chain order and the primary sort key of a report.
type Stage int

const (
	StageClassification Stage = iota
	StageStructural
	StageParse
	StageSchema
	StageContent
	StageHooks
)

var stageNames = map[Stage]string{
	StageClassification: "classification",
	StageStructural:     "structural",
	StageParse:          "parse",
	StageSchema:         "schema",
	StageContent:        "content",
	StageHooks:          "hooks",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

// Issue is one validation finding.
type Issue struct {
	// Code is the stable machine-readable identifier.
	Code string `json:"code"`
	// Message is the human-readable explanation.
	Message string `json:"message"`
	// Severity is error, warning, or info.
	Severity Severity `json:"severity"`
	// Path locates the finding: a file path, a frontmatter field name, or a
	// hook entry locator such as hooks[2].matcher.
	Path string `json:"path,omitempty"`
	// Suggestion, when present, says how to fix the finding.
	Suggestion string `json:"suggestion,omitempty"`
	// Stage is the chain link that produced the finding.
	Stage Stage `json:"-"`
}

// Report aggregates the findings of one validation run.
type Report struct {
	Issues []Issue `json:"issues"`
}

// Add appends issues to the report.
func (r *Report) Add(issues ...Issue) {
	r.Issues = append(r.Issues, issues...)
}

// Merge appends every issue of other into r.
func (r *Report) Merge(other *Report) {
	if other != nil {
		r.Issues = append(r.Issues, other.Issues...)
	}
}

// IsBlocking reports whether any issue has error severity.
func (r *Report) IsBlocking() bool {
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Errors returns only the error-severity issues, in report order.
func (r *Report) Errors() []Issue {
	var errs []Issue
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			errs = append(errs, i)
		}
	}
	return errs
}

// HasCode reports whether any issue carries the given code.
func (r *Report) HasCode(code string) bool {
	for _, i := range r.Issues {
		if i.Code == code {
			return true
		}
	}
	return false
}

// Sort orders issues by stage, then code, then path. Identical inputs thus
// render identically regardless of stage evaluation order.
func (r *Report) Sort() {
	sort.SliceStable(r.Issues, func(a, b int) bool {
		x, y := r.Issues[a], r.Issues[b]
		if x.Stage != y.Stage {
			return x.Stage < y.Stage
		}
		if x.Code != y.Code {
			return x.Code < y.Code
		}
		return x.Path < y.Path
	})
}
