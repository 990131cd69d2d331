package artifact

// HookEvent names a checkpoint in the assistant's tool-invocation lifecycle.
// The catalogue is a fixed external contract of eleven events.
type HookEvent string

const (
	EventPreToolUse        HookEvent = "PreToolUse"
	EventPostToolUse       HookEvent = "PostToolUse"
	EventPreCompact        HookEvent = "PreCompact"
	EventUserPromptSubmit  HookEvent = "UserPromptSubmit"
	EventNotification      HookEvent = "Notification"
	EventStop              HookEvent = "Stop"
	EventSubagentStart     HookEvent = "SubagentStart"
	EventSubagentStop      HookEvent = "SubagentStop"
	EventSessionStart      HookEvent = "SessionStart"
	EventSessionEnd        HookEvent = "SessionEnd"
	EventPermissionRequest HookEvent = "PermissionRequest"
)

// HookEvents lists the full lifecycle event catalogue.
var HookEvents = []HookEvent{
	EventPreToolUse,
	EventPostToolUse,
	EventPreCompact,
	EventUserPromptSubmit,
	EventNotification,
	EventStop,
	EventSubagentStart,
	EventSubagentStop,
	EventSessionStart,
	EventSessionEnd,
	EventPermissionRequest,
}

// Valid reports whether e is one of the defined lifecycle events.
func (e HookEvent) Valid() bool {
	for _, known := range HookEvents {
		if e == known {
			return true
		}
	}
	return false
}

// MatcherType selects the pattern syntax a hook uses to decide when it fires.
type MatcherType string

const (
	// MatcherExact fires on an exact string match.
	MatcherExact MatcherType = "exact"
	// MatcherRegex fires when the regular expression matches.
	MatcherRegex MatcherType = "regex"
	// MatcherWildcard fires on every occurrence of the event.
	MatcherWildcard MatcherType = "wildcard"
	// MatcherToolQualified fires on a namespace::tool qualified name.
	MatcherToolQualified MatcherType = "tool"
)

// PayloadType selects what a hook executes when it fires.
type PayloadType string

const (
	// PayloadCommand runs a shell command.
	PayloadCommand PayloadType = "command"
	// PayloadPrompt injects a prompt into the session.
	PayloadPrompt PayloadType = "prompt"
)

// Runtime is the execution environment a hook payload runs in.
type Runtime string

const (
	RuntimeShell  Runtime = "shell"
	RuntimeNode   Runtime = "node"
	RuntimePython Runtime = "python"
	// RuntimeModel means the payload is handled by the model itself
	// (prompt payloads), not an external process.
	RuntimeModel Runtime = "model"
)

// HookDefinition is a single entry in a hook set artifact.
type HookDefinition struct {
	EventType    HookEvent      `yaml:"event" json:"event"`
	MatcherType  MatcherType    `yaml:"matcher_type" json:"matcher_type"`
	Matcher      string         `yaml:"matcher" json:"matcher"`
	PayloadType  PayloadType    `yaml:"payload_type" json:"payload_type"`
	Payload      string         `yaml:"payload" json:"payload"`
	Runtime      Runtime        `yaml:"runtime,omitempty" json:"runtime,omitempty"`
	TimeoutMs    int            `yaml:"timeout_ms,omitempty" json:"timeout_ms,omitempty"`
	OutputSchema map[string]any `yaml:"output_schema,omitempty" json:"output_schema,omitempty"`
}

// eventRuntimes maps each lifecycle event to the runtimes its execution
// environment supports. Prompt-style events cannot spawn external processes,
// so only the model runtime is compatible there.
var eventRuntimes = map[HookEvent][]Runtime{
	EventPreToolUse:        {RuntimeShell, RuntimeNode, RuntimePython},
	EventPostToolUse:       {RuntimeShell, RuntimeNode, RuntimePython},
	EventPreCompact:        {RuntimeShell, RuntimeModel},
	EventUserPromptSubmit:  {RuntimeShell, RuntimeNode, RuntimePython, RuntimeModel},
	EventNotification:      {RuntimeShell, RuntimeNode, RuntimePython},
	EventStop:              {RuntimeShell, RuntimeModel},
	EventSubagentStart:     {RuntimeShell, RuntimeModel},
	EventSubagentStop:      {RuntimeShell, RuntimeModel},
	EventSessionStart:      {RuntimeShell, RuntimeNode, RuntimePython},
	EventSessionEnd:        {RuntimeShell, RuntimeNode, RuntimePython},
	EventPermissionRequest: {RuntimeModel},
}

// RuntimeCompatible reports whether runtime is supported by the event's
// execution environment. An empty runtime always passes: the dispatcher
// picks a default.
func RuntimeCompatible(event HookEvent, runtime Runtime) bool {
	if runtime == "" {
		return true
	}
	for _, r := range eventRuntimes[event] {
		if r == runtime {
			return true
		}
	}
	return false
}
