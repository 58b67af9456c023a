package application

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/creatortools/internal/domain/model"
)

func fallbackFor(t *testing.T, kind model.ToolKind, topic string, opts map[string]string) string {
	t.Helper()
	out, ok := Fallback(model.GenerationRequest{Kind: kind, Topic: topic, Options: opts})
	require.True(t, ok)
	require.NotEmpty(t, strings.TrimSpace(out))
	return out
}

func TestFallback_EveryKindNonEmptyForBlankTopic(t *testing.T) {
	for _, kind := range model.ToolKinds() {
		t.Run(string(kind), func(t *testing.T) {
			fallbackFor(t, kind, "   ", nil)
		})
	}
}

func TestFallback_Deterministic(t *testing.T) {
	for _, kind := range model.ToolKinds() {
		a := fallbackFor(t, kind, "home workouts", nil)
		b := fallbackFor(t, kind, "home workouts", nil)
		assert.Equal(t, a, b, "kind %s", kind)
	}
}

func TestFallback_UnknownKind(t *testing.T) {
	out, ok := Fallback(model.GenerationRequest{Kind: "bogus", Topic: "x"})
	assert.False(t, ok)
	assert.Empty(t, out)
}

func TestFallback_TagsShape(t *testing.T) {
	out := fallbackFor(t, model.ToolKindTags, "Home Workouts, fast", nil)

	assert.NotContains(t, out, "\n")
	tags := strings.Split(out, ", ")
	assert.Len(t, tags, defaultTagCount)
	assert.Equal(t, "home workouts fast", tags[0])
	for _, tag := range tags {
		assert.NotEmpty(t, strings.TrimSpace(tag))
		assert.NotContains(t, tag, ",")
	}

	few := fallbackFor(t, model.ToolKindTags, "yoga", map[string]string{model.OptionCount: "3"})
	assert.Equal(t, "yoga, yoga tutorial, yoga tips", few)
}

func TestFallback_TitlesShape(t *testing.T) {
	numbered := regexp.MustCompile(`^\d+[.)]`)

	for _, tone := range []string{model.ToneEngaging, model.ToneEducational, model.ToneExciting} {
		out := fallbackFor(t, model.ToolKindTitles, "sourdough", map[string]string{model.OptionTone: tone})
		lines := strings.Split(out, "\n")
		assert.Len(t, lines, defaultTitleCount)
		for _, line := range lines {
			assert.Contains(t, line, "sourdough")
			assert.False(t, numbered.MatchString(line), "title %q must not be numbered", line)
		}
	}

	out := fallbackFor(t, model.ToolKindTitles, "sourdough", map[string]string{model.OptionTone: model.ToneEducational})
	assert.True(t, strings.HasPrefix(out, "Complete sourdough Tutorial for Beginners\n"))
}

func TestFallback_TitlesCollapseNewlinesInTopic(t *testing.T) {
	out := fallbackFor(t, model.ToolKindTitles, "two\nlines", map[string]string{model.OptionCount: "2"})
	assert.Len(t, strings.Split(out, "\n"), 2)
}

func TestFallback_HashtagsShape(t *testing.T) {
	out := fallbackFor(t, model.ToolKindHashtags, "street photography", nil)

	tokens := strings.Fields(out)
	assert.Len(t, tokens, defaultHashtagCount)
	assert.Equal(t, "#StreetPhotography", tokens[0])
	assert.Equal(t, "#Street", tokens[1])
	for _, tok := range tokens {
		assert.True(t, strings.HasPrefix(tok, "#"), "token %q", tok)
		assert.Greater(t, len(tok), 1)
	}
}

func TestFallback_KeywordResearchShape(t *testing.T) {
	out := fallbackFor(t, model.ToolKindKeywordResearch, "Drone Racing", nil)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	for i, prefix := range []string{"Primary Keywords: ", "Secondary Keywords: ", "Long-tail Keywords: ", "Trending Keywords: "} {
		assert.True(t, strings.HasPrefix(lines[i], prefix), "line %d = %q", i, lines[i])
	}
	assert.Equal(t, "Primary Keywords: drone racing, drone racing tutorial, drone racing guide", lines[0])
}

func TestFallback_DelimitersInTopicKeepShape(t *testing.T) {
	ideaLine := regexp.MustCompile(`^\d+\. (.+) - (.+)$`)

	tests := []struct {
		name  string
		kind  model.ToolKind
		topic string
		check func(t *testing.T, out string)
	}{
		{
			name:  "keywords with commas",
			kind:  model.ToolKindKeywordResearch,
			topic: "salt, pepper",
			check: func(t *testing.T, out string) {
				lines := strings.Split(out, "\n")
				require.Len(t, lines, 4)
				primary := strings.Split(strings.TrimPrefix(lines[0], "Primary Keywords: "), ", ")
				assert.Equal(t, []string{"salt pepper", "salt pepper tutorial", "salt pepper guide"}, primary)
			},
		},
		{
			name:  "tags with commas",
			kind:  model.ToolKindTags,
			topic: "salt, pepper",
			check: func(t *testing.T, out string) {
				assert.Equal(t, "salt pepper", strings.Split(out, ", ")[0])
			},
		},
		{
			name:  "ideas with dash separator",
			kind:  model.ToolKindContentIdeas,
			topic: "before - after edits",
			check: func(t *testing.T, out string) {
				for _, l := range strings.Split(out, "\n") {
					m := ideaLine.FindStringSubmatch(l)
					require.NotNil(t, m, "line %q", l)
					assert.Equal(t, 1, strings.Count(l, " - "), "line %q", l)
					assert.Contains(t, m[1], "before after edits")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, fallbackFor(t, tt.kind, tt.topic, nil))
		})
	}
}

func TestFallback_VideoSummarySections(t *testing.T) {
	out := fallbackFor(t, model.ToolKindVideoSummary, "Building a Shed", nil)
	for _, section := range []string{"Overview:", "Key Points:", "Target Audience:", "Main Takeaway:"} {
		assert.Contains(t, out, section)
	}
	assert.Contains(t, out, "Building a Shed")
}

func TestFallback_DescriptionContainsHashtagOfTopic(t *testing.T) {
	out := fallbackFor(t, model.ToolKindDescription, "vegan baking", nil)
	assert.Contains(t, out, "everything about vegan baking")
	assert.Contains(t, out, "#VeganBaking #YouTube")
}

func TestFallback_ContentIdeasShape(t *testing.T) {
	line := regexp.MustCompile(`^(\d+)\. .+ - .+$`)

	out := fallbackFor(t, model.ToolKindContentIdeas, "gaming", nil)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, defaultIdeaCount)
	for i, l := range lines {
		m := line.FindStringSubmatch(l)
		require.NotNil(t, m, "line %q", l)
		assert.Equal(t, strconv.Itoa(i+1), m[1])
		assert.Contains(t, l, "gaming")
	}

	three := fallbackFor(t, model.ToolKindContentIdeas, "gaming", map[string]string{model.OptionCount: "3"})
	assert.Len(t, strings.Split(three, "\n"), 3)
}

func TestFallback_DescriptionOptimizationShape(t *testing.T) {
	score := regexp.MustCompile(`^SEO Score: (\d+)/100\n`)

	out := fallbackFor(t, model.ToolKindDescriptionOptimization, "short text\nsecond line", nil)

	m := score.FindStringSubmatch(out)
	require.NotNil(t, m)
	assert.Equal(t, "50", m[1])
	assert.Contains(t, out, "\nImprovements:\n- ")
	assert.Contains(t, out, "\nOptimized Description:\nshort text\nsecond line")
}

func TestScoreDescription(t *testing.T) {
	tests := []struct {
		name         string
		description  string
		wantScore    int
		improvements int
	}{
		{name: "empty", description: "", wantScore: 50, improvements: 4},
		{name: "hashtag only", description: "#cooking", wantScore: 65, improvements: 3},
		{name: "timestamp and link", description: "0:00 intro https://example.com", wantScore: 65, improvements: 2},
		{
			name:         "complete",
			description:  strings.Repeat("a", 200) + " #tag 1:30 https://example.com",
			wantScore:    100,
			improvements: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, improvements := scoreDescription(tt.description)
			assert.Equal(t, tt.wantScore, got)
			assert.Len(t, improvements, tt.improvements)
		})
	}
}

func TestHashtagOf(t *testing.T) {
	assert.Equal(t, "#HomeWorkouts", hashtagOf("home workouts"))
	assert.Equal(t, "#CC", hashtagOf("c & c"))
	assert.Equal(t, "#Video", hashtagOf("!!!"))
}
