package models

// ForwardingMacro is the assembled output header
type ForwardingMacro struct {
	Name       string   // macro name, e.g. IO_STREAM_FORWARD
	Guard      string   // include guard symbol
	OutputPath string   // path the macro name was derived from
	Members    []string // rendered forwarding members in declaration order
	Content    string   // complete file contents
}

// GenerationResult carries every stage output of a single run
type GenerationResult struct {
	Region     RawRegion
	Signatures []MethodSignature
	Macro      ForwardingMacro
}
