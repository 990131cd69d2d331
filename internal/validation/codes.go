package validation

// Issue codes are stable machine-readable identifiers. Renderers and tests
// key on these, never on message text.
const (
	// Classification
	CodeNotRecognized = "NOT_RECOGNIZED"

	// Structural
	CodeNotDirectory             = "NOT_DIRECTORY"
	CodeNotAFile                 = "NOT_A_FILE"
	CodeInvalidNameFormat        = "INVALID_NAME_FORMAT"
	CodeMissingEntryFile         = "MISSING_ENTRY_FILE"
	CodeMultipleEntryDefinitions = "MULTIPLE_ENTRY_DEFINITIONS"
	CodeMarkdownInRoot           = "MARKDOWN_IN_ROOT"
	CodeFileInSubdirectory       = "FILE_IN_SUBDIRECTORY"

	// Parse (shared with the frontmatter package; values must agree)
	CodeInvalidSyntax = "INVALID_SYNTAX"
	CodeNoFrontmatter = "NO_FRONTMATTER"

	// Schema
	CodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	CodeInvalidFieldType     = "INVALID_FIELD_TYPE"
	CodeFieldTooShort        = "FIELD_TOO_SHORT"
	CodeFieldTooLong         = "FIELD_TOO_LONG"
	CodeTooManyItems         = "TOO_MANY_ITEMS"
	CodeInvalidFieldValue    = "INVALID_FIELD_VALUE"

	// Content
	CodeEmptyContent        = "EMPTY_CONTENT"
	CodeContentTooShort     = "CONTENT_TOO_SHORT"
	CodeNoHeadings          = "NO_HEADINGS"
	CodeScriptTagFound      = "SCRIPT_TAG_FOUND"
	CodeCodeBlockNoLanguage = "CODE_BLOCK_NO_LANGUAGE"

	// Hook rules
	CodeUnknownEventType      = "UNKNOWN_EVENT_TYPE"
	CodeInvalidMatcherPattern = "INVALID_MATCHER_PATTERN"
	CodeTimeoutOutOfRange     = "TIMEOUT_OUT_OF_RANGE"
	CodeIncompatibleRuntime   = "INCOMPATIBLE_RUNTIME"
)
