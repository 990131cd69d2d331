package validation

import (
	"fmt"

	"github.com/schoolboyqueue/artifactvault/internal/artifact"
)

// FieldType is the expected frontmatter value type for a schema field.
type FieldType string

const (
	FieldTypeString FieldType = "string"
	FieldTypeInt    FieldType = "int"
	FieldTypeBool   FieldType = "bool"
	FieldTypeList   FieldType = "list"
)

// FieldRule declares the constraints for one frontmatter field. The schema
// is open: fields not declared here pass through unvalidated and are
// preserved verbatim on re-save.
type FieldRule struct {
	Field    string
	Type     FieldType
	Required bool
	MinLen   int      // strings: minimum length (error below)
	MaxLen   int      // strings: soft maximum length (warning above)
	MaxItems int      // lists: soft maximum item count (warning above)
	Enum     []string // strings: allowed values (error otherwise)
}

// agentModelEnum lists the model aliases an agent or command may pin.
var agentModelEnum = []string{"sonnet", "opus", "haiku", "inherit"}

// kindSchemas is the declarative per-kind schema table. Tool manifests and
// hook sets carry no frontmatter; hook entries are checked by HookRuleValidator.
var kindSchemas = map[artifact.Kind][]FieldRule{
	artifact.KindAgent: {
		{Field: "name", Type: FieldTypeString, Required: true, MinLen: 2, MaxLen: 200},
		{Field: "description", Type: FieldTypeString, Required: true, MaxLen: 500},
		{Field: "tags", Type: FieldTypeList, MaxItems: 20},
		{Field: "model", Type: FieldTypeString, Enum: agentModelEnum},
	},
	artifact.KindCommand: {
		{Field: "name", Type: FieldTypeString, Required: true, MinLen: 2, MaxLen: 200},
		{Field: "description", Type: FieldTypeString, Required: true, MaxLen: 500},
		{Field: "tags", Type: FieldTypeList, MaxItems: 20},
		{Field: "model", Type: FieldTypeString, Enum: agentModelEnum},
	},
	artifact.KindSkill: {
		{Field: "name", Type: FieldTypeString, Required: true, MinLen: 2, MaxLen: 200},
		{Field: "description", Type: FieldTypeString, Required: true, MinLen: 10, MaxLen: 500},
		{Field: "category", Type: FieldTypeString},
		{Field: "tags", Type: FieldTypeList, MaxItems: 20},
		{Field: "version", Type: FieldTypeString},
		{Field: "dependencies", Type: FieldTypeList},
	},
}

// SchemaFor returns the declared field rules for a kind.
func SchemaFor(kind artifact.Kind) []FieldRule {
	return kindSchemas[kind]
}

// SchemaValidator checks a parsed header against the declarative per-kind
// schema table.
type SchemaValidator struct{}

// Validate iterates the kind's schema and collects every violation. A bad
// field never stops the remaining fields from being checked.
func (v *SchemaValidator) Validate(kind artifact.Kind, header artifact.Header) []Issue {
	var issues []Issue

	for _, rule := range kindSchemas[kind] {
		value, present := header.Get(rule.Field)
		if !present {
			if rule.Required {
				issues = append(issues, Issue{
					Code:       CodeMissingRequiredField,
					Message:    fmt.Sprintf("required field %q is missing from the frontmatter", rule.Field),
					Severity:   SeverityError,
					Path:       rule.Field,
					Suggestion: fmt.Sprintf("add %q to the metadata block", rule.Field),
					Stage:      StageSchema,
				})
			}
			continue
		}
		issues = append(issues, checkField(rule, value)...)
	}

	return issues
}

// checkField validates a present value against its rule.
func checkField(rule FieldRule, value any) []Issue {
	var issues []Issue

	typeIssue := func(got string) Issue {
		return Issue{
			Code:     CodeInvalidFieldType,
			Message:  fmt.Sprintf("field %q must be a %s, got %s", rule.Field, rule.Type, got),
			Severity: SeverityError,
			Path:     rule.Field,
			Stage:    StageSchema,
		}
	}

	switch rule.Type {
	case FieldTypeString:
		s, ok := value.(string)
		if !ok {
			return append(issues, typeIssue(typeName(value)))
		}
		if rule.MinLen > 0 && len(s) < rule.MinLen {
			issues = append(issues, Issue{
				Code:     CodeFieldTooShort,
				Message:  fmt.Sprintf("field %q is %d characters; at least %d required", rule.Field, len(s), rule.MinLen),
				Severity: SeverityError,
				Path:     rule.Field,
				Stage:    StageSchema,
			})
		}
		if rule.MaxLen > 0 && len(s) > rule.MaxLen {
			issues = append(issues, Issue{
				Code:       CodeFieldTooLong,
				Message:    fmt.Sprintf("field %q is %d characters; %d is the recommended maximum", rule.Field, len(s), rule.MaxLen),
				Severity:   SeverityWarning,
				Path:       rule.Field,
				Suggestion: "shorten the value; long metadata is truncated in pickers",
				Stage:      StageSchema,
			})
		}
		if len(rule.Enum) > 0 && !contains(rule.Enum, s) {
			issues = append(issues, Issue{
				Code:       CodeInvalidFieldValue,
				Message:    fmt.Sprintf("field %q has value %q; allowed values are %v", rule.Field, s, rule.Enum),
				Severity:   SeverityError,
				Path:       rule.Field,
				Suggestion: fmt.Sprintf("use one of %v", rule.Enum),
				Stage:      StageSchema,
			})
		}
	case FieldTypeInt:
		switch value.(type) {
		case int, int64:
		default:
			issues = append(issues, typeIssue(typeName(value)))
		}
	case FieldTypeBool:
		if _, ok := value.(bool); !ok {
			issues = append(issues, typeIssue(typeName(value)))
		}
	case FieldTypeList:
		items, ok := value.([]any)
		if !ok {
			return append(issues, typeIssue(typeName(value)))
		}
		if rule.MaxItems > 0 && len(items) > rule.MaxItems {
			issues = append(issues, Issue{
				Code:     CodeTooManyItems,
				Message:  fmt.Sprintf("field %q has %d items; %d is the recommended maximum", rule.Field, len(items), rule.MaxItems),
				Severity: SeverityWarning,
				Path:     rule.Field,
				Stage:    StageSchema,
			})
		}
	}

	return issues
}

func typeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case int, int64:
		return "int"
	case bool:
		return "bool"
	case []any:
		return "list"
	case map[string]any:
		return "mapping"
	case nil:
		return "null"
	}
	return fmt.Sprintf("%T", v)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
