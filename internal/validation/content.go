package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultMinBodyLength is the advisory minimum body length in characters.
const DefaultMinBodyLength = 50

var (
	scriptTagPattern = regexp.MustCompile(`(?i)<\s*script\b`)
	headingPattern   = regexp.MustCompile(`(?m)^#{1,6}\s+\S`)
)

// ContentValidator applies minimal quality rules to an artifact's body text.
// Every check is independent; a failed check never suppresses the others.
type ContentValidator struct {
	// MinBodyLength overrides the advisory body length threshold when >0.
	MinBodyLength int
}

// Validate returns content issues for the body text.
func (v *ContentValidator) Validate(body string) []Issue {
	var issues []Issue

	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		issues = append(issues, Issue{
			Code:       CodeEmptyContent,
			Message:    "artifact body is empty",
			Severity:   SeverityError,
			Suggestion: "write the instructions the assistant should follow below the metadata block",
			Stage:      StageContent,
		})
	}

	minLen := v.MinBodyLength
	if minLen <= 0 {
		minLen = DefaultMinBodyLength
	}
	if len(trimmed) < minLen {
		issues = append(issues, Issue{
			Code:       CodeContentTooShort,
			Message:    fmt.Sprintf("body is %d characters; at least %d recommended", len(trimmed), minLen),
			Severity:   SeverityWarning,
			Suggestion: "expand the instructions so the assistant has enough context to act on",
			Stage:      StageContent,
		})
	}

	if !headingPattern.MatchString(body) {
		issues = append(issues, Issue{
			Code:       CodeNoHeadings,
			Message:    "body has no markdown headings",
			Severity:   SeverityWarning,
			Suggestion: "structure the content with at least one # heading",
			Stage:      StageContent,
		})
	}

	if scriptTagPattern.MatchString(body) {
		issues = append(issues, Issue{
			Code:       CodeScriptTagFound,
			Message:    "body contains an embedded <script> tag",
			Severity:   SeverityError,
			Suggestion: "remove the script tag; executable markup is not allowed in artifact bodies",
			Stage:      StageContent,
		})
	}

	issues = append(issues, checkCodeFences(body)...)

	return issues
}

// checkCodeFences flags fenced code blocks that do not declare a language.
// Only opening fences count; a fence line is an opener when we are outside a
// block and a closer otherwise.
func checkCodeFences(body string) []Issue {
	var issues []Issue

	inBlock := false
	for n, line := range strings.Split(body, "\n") {
		t := strings.TrimSpace(line)
		if !strings.HasPrefix(t, "```") {
			continue
		}
		if inBlock {
			inBlock = false
			continue
		}
		inBlock = true
		if strings.TrimSpace(strings.TrimPrefix(t, "```")) == "" {
			issues = append(issues, Issue{
				Code:       CodeCodeBlockNoLanguage,
				Message:    fmt.Sprintf("fenced code block at line %d has no language tag", n+1),
				Severity:   SeverityWarning,
				Suggestion: "declare the language after the opening fence, e.g. ```bash",
				Stage:      StageContent,
			})
		}
	}

	return issues
}
