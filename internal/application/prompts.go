package application

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ericfisherdev/creatortools/internal/domain/model"
)

// Default item counts per tool kind when the count option is absent or invalid.
const (
	defaultTagCount     = 15
	defaultTitleCount   = 5
	defaultHashtagCount = 15
	defaultIdeaCount    = 10
	maxCount            = 50
)

// BuildPrompt renders the provider prompt for req. The topic is embedded
// verbatim inside double quotes and each prompt ends with explicit output
// format instructions. BuildPrompt is pure.
func BuildPrompt(req model.GenerationRequest) (string, error) {
	topic := req.Topic

	switch req.Kind {
	case model.ToolKindTags:
		return fmt.Sprintf(`Generate %d highly relevant and SEO-optimized YouTube tags for a video about: "%s".
Include a mix of:
- Broad keywords
- Specific keywords
- Long-tail keywords
- Trending terms related to the topic
Return ONLY the tags separated by commas on a single line, no additional text or explanation.`,
			countOption(req, defaultTagCount), topic), nil

	case model.ToolKindTitles:
		tone := toneOption(req)
		return fmt.Sprintf(`Generate %d %s YouTube video titles for: "%s".
Requirements:
- Make them click-worthy and SEO-friendly
- Include relevant keywords naturally
- Keep length between 50-70 characters
- Match %s tone
Return ONLY the titles, one per line, no numbering or extra text.`,
			countOption(req, defaultTitleCount), tone, topic, tone), nil

	case model.ToolKindDescription:
		return fmt.Sprintf(`Write a comprehensive YouTube video description for: "%s".
Include:
- Engaging introduction (2-3 sentences)
- Video content breakdown with timestamps (00:00, 02:30, etc.)
- Relevant hashtags (8-10)
- Call-to-action for likes, shares, and subscriptions
- Format professionally with emojis for visual appeal
Return ONLY the description, no extra text.`, topic), nil

	case model.ToolKindHashtags:
		return fmt.Sprintf(`Generate %d relevant hashtags for a YouTube video about: "%s".
Include a mix of:
- Popular general hashtags
- Niche-specific hashtags
- Trending hashtags
Return ONLY the hashtags separated by spaces, starting each with #.`,
			countOption(req, defaultHashtagCount), topic), nil

	case model.ToolKindKeywordResearch:
		return fmt.Sprintf(`Perform keyword research for YouTube content about: "%s".
Provide:
1. Primary Keywords (5-7 high-volume keywords)
2. Secondary Keywords (8-10 medium-volume keywords)
3. Long-tail Keywords (10-12 specific phrases)
4. Trending Keywords (5 currently trending terms)
Return exactly four lines in this format, keywords separated by commas:
Primary Keywords: ...
Secondary Keywords: ...
Long-tail Keywords: ...
Trending Keywords: ...`, topic), nil

	case model.ToolKindVideoSummary:
		videoContext := fmt.Sprintf(`Title: "%s"`, topic)
		if desc := req.Option(model.OptionDescription, ""); desc != "" {
			videoContext += fmt.Sprintf("\nDescription: \"%s\"", desc)
		}
		return fmt.Sprintf(`Create a concise video summary for this YouTube video:
%s

Provide these sections, each starting with its heading on its own line:
Overview: 2-3 sentence overview
Key Points: 5-7 key points covered, one per line starting with "- "
Target Audience: who the video is for
Main Takeaway: the single most important idea
Format professionally and concisely.`, videoContext), nil

	case model.ToolKindDescriptionOptimization:
		return fmt.Sprintf(`Optimize this YouTube video description for better SEO and engagement:
"%s"

Provide, in this order:
SEO Score: N/100 (a whole number between 0 and 100)
Improvements: specific improvements needed, one per line starting with "- "
Optimized Description: the optimized version of the description, followed by additional hashtag recommendations
Format clearly with those section headings.`, topic), nil

	case model.ToolKindContentIdeas:
		return fmt.Sprintf(`Generate %d creative YouTube video content ideas for the niche: "%s".
For each idea provide the video title followed by a one sentence description that names the target audience appeal.
Format as a numbered list, one idea per line: "N. Title - description".`,
			countOption(req, defaultIdeaCount), topic), nil
	}

	return "", fmt.Errorf("build prompt: unknown tool kind %q", req.Kind)
}

// countOption parses the count option, falling back to def for missing,
// malformed or non-positive values and capping at maxCount.
func countOption(req model.GenerationRequest, def int) int {
	raw := strings.TrimSpace(req.Option(model.OptionCount, ""))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return min(n, maxCount)
}

// toneOption returns the requested title tone, defaulting to engaging for
// unknown values.
func toneOption(req model.GenerationRequest) string {
	tone := strings.ToLower(strings.TrimSpace(req.Option(model.OptionTone, model.ToneEngaging)))
	switch tone {
	case model.ToneEngaging, model.ToneEducational, model.ToneExciting:
		return tone
	default:
		return model.ToneEngaging
	}
}
