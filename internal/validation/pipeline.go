package validation

import (
	"crypto/sha256"

	"github.com/schoolboyqueue/artifactvault/internal/artifact"
	"github.com/schoolboyqueue/artifactvault/internal/classify"
	"github.com/schoolboyqueue/artifactvault/internal/frontmatter"
	"github.com/schoolboyqueue/artifactvault/internal/fsview"
)

// parsed caches one frontmatter parse outcome.
type parsed struct {
	header artifact.Header
	body   string
	err    error
}

// Pipeline runs the full validation chain for one artifact: structural →
// parse → schema → content → (hook sets only) hook rules. All stages are
// pure; results for identical inputs are identical, so parses are memoized
// by content hash. The memo lives on the pipeline value, never in process
// globals, which keeps concurrent pipelines independent.
type Pipeline struct {
	structural StructuralValidator
	schema     SchemaValidator
	content    ContentValidator
	hooks      HookRuleValidator

	parseMemo map[[sha256.Size]byte]parsed
}

// NewPipeline returns a pipeline with default thresholds.
func NewPipeline() *Pipeline {
	return &Pipeline{parseMemo: make(map[[sha256.Size]byte]parsed)}
}

// NewPipelineWithMinBodyLength overrides the advisory body length threshold.
func NewPipelineWithMinBodyLength(minLen int) *Pipeline {
	p := NewPipeline()
	p.content.MinBodyLength = minLen
	return p
}

// ValidatePath classifies the artifact at path and validates it. A path that
// maps to no kind yields a single blocking NOT_RECOGNIZED issue.
func (p *Pipeline) ValidatePath(view fsview.View, path string) (*Report, artifact.Kind) {
	kind, err := classify.Classify(view, path)
	if err != nil {
		report := &Report{}
		report.Add(Issue{
			Code:       CodeNotRecognized,
			Message:    "path does not match any artifact kind",
			Severity:   SeverityError,
			Path:       path,
			Suggestion: "agents and commands are .md files under their roots; skills are directories with a SKILL.md",
			Stage:      StageClassification,
		})
		return report, ""
	}

	raw := p.rawContent(view, kind, path)
	return p.Validate(kind, raw, path, view), kind
}

// Validate runs every applicable stage for a known kind and merges the
// issues into a single sorted report. Stage errors are collected, never
// returned: the caller always receives the complete report.
func (p *Pipeline) Validate(kind artifact.Kind, rawContent []byte, path string, view fsview.View) *Report {
	report := &Report{}

	report.Add(p.structural.Validate(view, kind, path)...)

	switch kind {
	case artifact.KindAgent, artifact.KindCommand, artifact.KindSkill:
		header, body, err := p.parseFrontmatter(rawContent)
		if err != nil {
			report.Add(parseIssue(err, path))
		} else {
			report.Add(p.schema.Validate(kind, header)...)
			report.Add(p.content.Validate(body)...)
		}
	case artifact.KindHookSet:
		hooks, err := DecodeHookSet(rawContent)
		if err == nil {
			report.Add(p.hooks.Validate(hooks)...)
		}
		// A decode failure is already reported by the structural stage
		// as INVALID_SYNTAX.
	case artifact.KindToolManifest:
		// Structural syntax check is the whole contract for manifests.
	}

	report.Sort()
	return report
}

// parseFrontmatter memoizes frontmatter parsing by content hash so repeated
// validation of unchanged content inside one call graph parses once.
func (p *Pipeline) parseFrontmatter(raw []byte) (artifact.Header, string, error) {
	key := sha256.Sum256(raw)
	if got, ok := p.parseMemo[key]; ok {
		return got.header, got.body, got.err
	}
	header, body, err := frontmatter.Parse(raw)
	p.parseMemo[key] = parsed{header: header, body: body, err: err}
	return header, body, err
}

// rawContent materializes the bytes validation will run over: the entry file
// for skills, the artifact file itself otherwise.
func (p *Pipeline) rawContent(view fsview.View, kind artifact.Kind, path string) []byte {
	target := path
	if kind == artifact.KindSkill {
		target = path + "/" + artifact.EntryFileName
	}
	data, err := view.ReadFile(target)
	if err != nil {
		return nil
	}
	return data
}

// parseIssue converts a frontmatter parse failure into a report issue.
func parseIssue(err error, path string) Issue {
	code := CodeInvalidSyntax
	msg := err.Error()
	if pe, ok := err.(*frontmatter.ParseError); ok {
		code = pe.Code
		msg = pe.Message
	}
	return Issue{
		Code:       code,
		Message:    msg,
		Severity:   SeverityError,
		Path:       path,
		Suggestion: "start the file with a '---' delimited YAML metadata block",
		Stage:      StageParse,
	}
}
