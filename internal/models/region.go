package models

// RawRegion is the slice of the input file that declarations are extracted from
type RawRegion struct {
	Text      string // region contents, sentinel lines excluded
	Found     bool   // false when the sentinels were missing and Text is the whole file
	StartLine int    // 1-based input line of the first region line
}

// DeclarationLine is one logical declaration after stripping and joining
type DeclarationLine struct {
	Text string // trimmed declaration text
	Line int    // 1-based input line the declaration starts on
}
