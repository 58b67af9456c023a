package model

import "fmt"

// ToolKind identifies one of the content-generation tasks.
type ToolKind string

const (
	ToolKindTags                    ToolKind = "tags"
	ToolKindTitles                  ToolKind = "titles"
	ToolKindDescription             ToolKind = "description"
	ToolKindHashtags                ToolKind = "hashtags"
	ToolKindKeywordResearch         ToolKind = "keyword-research"
	ToolKindVideoSummary            ToolKind = "video-summary"
	ToolKindDescriptionOptimization ToolKind = "description-optimization"
	ToolKindContentIdeas            ToolKind = "content-ideas"
)

// toolKinds is ordered as the catalog presents the tools.
var toolKinds = []ToolKind{
	ToolKindTags,
	ToolKindTitles,
	ToolKindDescription,
	ToolKindHashtags,
	ToolKindKeywordResearch,
	ToolKindVideoSummary,
	ToolKindDescriptionOptimization,
	ToolKindContentIdeas,
}

// ToolKinds returns every known tool kind.
func ToolKinds() []ToolKind {
	out := make([]ToolKind, len(toolKinds))
	copy(out, toolKinds)
	return out
}

// Valid reports whether k is one of the known tool kinds.
func (k ToolKind) Valid() bool {
	for _, known := range toolKinds {
		if k == known {
			return true
		}
	}
	return false
}

// ParseToolKind converts s into a ToolKind, rejecting unknown values.
func ParseToolKind(s string) (ToolKind, error) {
	k := ToolKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown tool kind %q", s)
	}
	return k, nil
}
