// Package frontmatter splits artifact text into its delimited YAML metadata
// header and free-text body. Parsing is pure and deterministic: same bytes
// in, same header out, no I/O.
package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/schoolboyqueue/artifactvault/internal/artifact"
)

// Parse error codes.
const (
	CodeNoFrontmatter = "NO_FRONTMATTER"
	CodeInvalidSyntax = "INVALID_SYNTAX"
)

// ParseError reports a missing or malformed metadata block.
type ParseError struct {
	Code    string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const delimiter = "---"

// Parse extracts the frontmatter header and body from raw content.
// The header preserves key order and keeps unknown keys verbatim; callers
// that re-serialize an artifact must not normalize fields away.
func Parse(raw []byte) (artifact.Header, string, error) {
	text := string(raw)

	if !strings.HasPrefix(text, delimiter) {
		return nil, "", &ParseError{Code: CodeNoFrontmatter, Message: "content does not start with a '---' metadata block"}
	}

	rest := strings.TrimPrefix(text[len(delimiter):], "\n")
	idx := strings.Index(rest, "\n"+delimiter)
	if idx == -1 {
		return nil, "", &ParseError{Code: CodeNoFrontmatter, Message: "metadata block is never closed with '---'"}
	}

	block := rest[:idx]
	body := rest[idx+len(delimiter)+1:]
	body = strings.TrimPrefix(body, "\n")

	header, err := decodeHeader([]byte(block))
	if err != nil {
		return nil, "", err
	}
	return header, body, nil
}

// decodeHeader parses the YAML block into an ordered header. The yaml.Node
// API is used instead of a map so that key order survives.
func decodeHeader(block []byte) (artifact.Header, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(block, &doc); err != nil {
		return nil, &ParseError{Code: CodeInvalidSyntax, Message: err.Error()}
	}
	if len(doc.Content) == 0 {
		// An empty block parses to an empty header.
		return artifact.Header{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, &ParseError{Code: CodeInvalidSyntax, Message: "metadata block must be a key-value mapping"}
	}

	header := make(artifact.Header, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		var value any
		if err := valNode.Decode(&value); err != nil {
			return nil, &ParseError{Code: CodeInvalidSyntax, Message: fmt.Sprintf("field %q: %v", keyNode.Value, err)}
		}
		header = append(header, artifact.HeaderField{Key: keyNode.Value, Value: value})
	}
	return header, nil
}
