package validation

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/schoolboyqueue/artifactvault/internal/artifact"
)

// Recommended timeout band for hook payloads, in milliseconds. Values
// outside the band are flagged but never block.
const (
	MinHookTimeoutMs = 1_000
	MaxHookTimeoutMs = 300_000
)

// toolQualifiedPattern is the namespace::tool shape for qualified matchers.
var toolQualifiedPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+::[A-Za-z0-9_-]+$`)

// hookSetFile is the wire shape of a hooks configuration artifact.
type hookSetFile struct {
	Hooks []artifact.HookDefinition `json:"hooks"`
}

// DecodeHookSet parses the raw content of a hook set artifact.
func DecodeHookSet(raw []byte) ([]artifact.HookDefinition, error) {
	var f hookSetFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decoding hook set: %w", err)
	}
	return f.Hooks, nil
}

// HookRuleValidator applies the specialized checks for lifecycle hook
// entries: event catalogue membership, matcher syntax, timeout band, and
// event/runtime compatibility.
type HookRuleValidator struct{}

// Validate checks every hook entry independently and collects all findings.
func (v *HookRuleValidator) Validate(hooks []artifact.HookDefinition) []Issue {
	var issues []Issue
	for i, h := range hooks {
		issues = append(issues, v.validateEntry(i, h)...)
	}
	return issues
}

func (v *HookRuleValidator) validateEntry(idx int, h artifact.HookDefinition) []Issue {
	var issues []Issue
	entryPath := fmt.Sprintf("hooks[%d]", idx)

	if !h.EventType.Valid() {
		issues = append(issues, Issue{
			Code:       CodeUnknownEventType,
			Message:    fmt.Sprintf("event %q is not a defined lifecycle event", h.EventType),
			Severity:   SeverityError,
			Path:       entryPath + ".event",
			Suggestion: fmt.Sprintf("use one of the %d defined events, e.g. %s", len(artifact.HookEvents), artifact.EventPreToolUse),
			Stage:      StageHooks,
		})
	}

	switch h.MatcherType {
	case artifact.MatcherRegex:
		if _, err := regexp.Compile(h.Matcher); err != nil {
			issues = append(issues, Issue{
				Code:       CodeInvalidMatcherPattern,
				Message:    fmt.Sprintf("regex matcher does not compile: %v", err),
				Severity:   SeverityError,
				Path:       entryPath + ".matcher",
				Suggestion: "fix the regular expression; RE2 syntax applies",
				Stage:      StageHooks,
			})
		}
	case artifact.MatcherToolQualified:
		if !toolQualifiedPattern.MatchString(h.Matcher) {
			issues = append(issues, Issue{
				Code:       CodeInvalidMatcherPattern,
				Message:    fmt.Sprintf("tool matcher %q does not match the namespace::tool shape", h.Matcher),
				Severity:   SeverityError,
				Path:       entryPath + ".matcher",
				Suggestion: "qualify the tool name, e.g. mcp__github::create_issue",
				Stage:      StageHooks,
			})
		}
	case artifact.MatcherExact, artifact.MatcherWildcard:
		// No further syntax constraint.
	}

	if h.TimeoutMs != 0 && (h.TimeoutMs < MinHookTimeoutMs || h.TimeoutMs > MaxHookTimeoutMs) {
		issues = append(issues, Issue{
			Code:       CodeTimeoutOutOfRange,
			Message:    fmt.Sprintf("timeout %dms is outside the recommended %d-%dms band", h.TimeoutMs, MinHookTimeoutMs, MaxHookTimeoutMs),
			Severity:   SeverityWarning,
			Path:       entryPath + ".timeout_ms",
			Suggestion: "pick a timeout the payload can realistically finish within",
			Stage:      StageHooks,
		})
	}

	if h.EventType.Valid() && !artifact.RuntimeCompatible(h.EventType, h.Runtime) {
		issues = append(issues, Issue{
			Code:       CodeIncompatibleRuntime,
			Message:    fmt.Sprintf("runtime %q is not supported by the %s execution environment", h.Runtime, h.EventType),
			Severity:   SeverityWarning,
			Path:       entryPath + ".runtime",
			Suggestion: "the hook is accepted but may not fire; switch to a supported runtime",
			Stage:      StageHooks,
		})
	}

	return issues
}
