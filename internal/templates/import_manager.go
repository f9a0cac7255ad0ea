package templates

import (
	"fmt"
	"sort"
	"strings"
)

// IncludeManager handles #include generation and deduplication
type IncludeManager struct {
	systemIncludes map[string]bool
}

// NewIncludeManager creates a new include manager
func NewIncludeManager() *IncludeManager {
	return &IncludeManager{
		systemIncludes: make(map[string]bool),
	}
}

// AddSystemInclude adds an angle-bracket include such as "utility"
func (im *IncludeManager) AddSystemInclude(header string) {
	if header != "" {
		im.systemIncludes[header] = true
	}
}

// GenerateIncludes renders the includes sorted, each line ending with a newline
func (im *IncludeManager) GenerateIncludes() string {
	if len(im.systemIncludes) == 0 {
		return ""
	}

	headers := make([]string, 0, len(im.systemIncludes))
	for h := range im.systemIncludes {
		headers = append(headers, h)
	}
	sort.Strings(headers)

	var b strings.Builder
	for _, h := range headers {
		fmt.Fprintf(&b, "#include <%s>\n", h)
	}
	return b.String()
}
