package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContent_Valid(t *testing.T) {
	var v ContentValidator
	issues := v.Validate("# Guide\n\n" + strings.Repeat("useful instructions. ", 10))
	assert.Empty(t, issues)
}

func TestContent_Empty(t *testing.T) {
	var v ContentValidator
	issues := v.Validate("   \n\t\n")

	codes := issueCodes(issues)
	require.Contains(t, codes, CodeEmptyContent)
	// The other checks run independently; only EMPTY_CONTENT blocks.
	assert.Contains(t, codes, CodeContentTooShort)
	assert.Contains(t, codes, CodeNoHeadings)
	for _, i := range issues {
		if i.Code == CodeEmptyContent {
			assert.Equal(t, SeverityError, i.Severity)
		} else {
			assert.Equal(t, SeverityWarning, i.Severity)
		}
	}
}

func TestContent_TooShort(t *testing.T) {
	var v ContentValidator
	issues := v.Validate("# Hi\n\nshort")
	assert.Contains(t, issueCodes(issues), CodeContentTooShort)
}

func TestContent_CustomThreshold(t *testing.T) {
	v := ContentValidator{MinBodyLength: 5}
	issues := v.Validate("# Hi\n\nlong enough for a tiny threshold")
	assert.NotContains(t, issueCodes(issues), CodeContentTooShort)
}

func TestContent_NoHeadings(t *testing.T) {
	var v ContentValidator
	issues := v.Validate(strings.Repeat("plain prose with no structure. ", 5))

	codes := issueCodes(issues)
	assert.Contains(t, codes, CodeNoHeadings)
	for _, i := range issues {
		assert.Equal(t, SeverityWarning, i.Severity)
	}
}

func TestContent_ScriptTag(t *testing.T) {
	var v ContentValidator
	body := "# Title\n\n" + strings.Repeat("text ", 20) + "<script>alert(1)</script>"
	issues := v.Validate(body)

	require.Contains(t, issueCodes(issues), CodeScriptTagFound)
	for _, i := range issues {
		if i.Code == CodeScriptTagFound {
			assert.Equal(t, SeverityError, i.Severity)
		}
	}
}

func TestContent_ScriptTagCaseInsensitive(t *testing.T) {
	var v ContentValidator
	issues := v.Validate("# T\n\n" + strings.Repeat("text ", 20) + "<SCRIPT src=x>")
	assert.Contains(t, issueCodes(issues), CodeScriptTagFound)
}

func TestContent_CodeBlockLanguages(t *testing.T) {
	body := "# Title\n\n" + strings.Repeat("words ", 20) + "\n" +
		"```bash\necho ok\n```\n\n```\nno language here\n```\n"

	var v ContentValidator
	issues := v.Validate(body)

	count := 0
	for _, i := range issues {
		if i.Code == CodeCodeBlockNoLanguage {
			count++
			assert.Equal(t, SeverityWarning, i.Severity)
		}
	}
	// Only the unlabeled fence is flagged; closers never are.
	assert.Equal(t, 1, count)
}

func TestContent_ChecksAreIndependent(t *testing.T) {
	// A short, heading-less body with a script tag reports all three.
	var v ContentValidator
	issues := v.Validate("<script>x</script>")

	codes := issueCodes(issues)
	assert.Contains(t, codes, CodeContentTooShort)
	assert.Contains(t, codes, CodeNoHeadings)
	assert.Contains(t, codes, CodeScriptTagFound)
}
