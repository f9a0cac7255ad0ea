// Package region isolates the declaration block between the reflect sentinels.
package region

import (
	"regexp"
	"strings"

	"github.com/toyz/fwdgen/internal/models"
)

var (
	beginSentinel = regexp.MustCompile(`(?m)^[ \t]*//[ \t]*reflect[ \t]+begin[ \t]*\r?$`)
	endSentinel   = regexp.MustCompile(`(?m)^[ \t]*//[ \t]*reflect[ \t]+end[ \t]*\r?$`)
)

// Markers reports which sentinels were present in a text
type Markers struct {
	Begin bool
	End   bool // after the begin sentinel when Begin is true, anywhere otherwise
}

// Find returns the text strictly between the first begin sentinel line and
// the first end sentinel line after it. ok is false if either is missing.
func Find(text string) (models.RawRegion, bool) {
	begin := beginSentinel.FindStringIndex(text)
	if begin == nil {
		return models.RawRegion{}, false
	}

	start := begin[1]
	if start < len(text) && text[start] == '\n' {
		start++
	}

	end := endSentinel.FindStringIndex(text[start:])
	if end == nil {
		return models.RawRegion{}, false
	}

	return models.RawRegion{
		Text:      text[start : start+end[0]],
		Found:     true,
		StartLine: strings.Count(text[:start], "\n") + 1,
	}, true
}

// Extract runs Find and falls back to the whole text when the sentinels are
// missing. Callers must check Found before relying on region isolation.
func Extract(text string) models.RawRegion {
	if r, ok := Find(text); ok {
		return r
	}
	return models.RawRegion{
		Text:      text,
		Found:     false,
		StartLine: 1,
	}
}

// Inspect reports which sentinels Find would see
func Inspect(text string) Markers {
	begin := beginSentinel.FindStringIndex(text)
	if begin == nil {
		return Markers{End: endSentinel.MatchString(text)}
	}
	return Markers{
		Begin: true,
		End:   endSentinel.MatchString(text[begin[1]:]),
	}
}
