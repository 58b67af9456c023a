package application

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/ericfisherdev/creatortools/internal/domain/model"
)

const placeholderTopic = "Your Topic"

var (
	baseTags = []string{
		"youtube", "video", "viral", "trending", "new", "tutorial", "how to",
		"tips", "guide", "best", "top", "easy", "quick", "free", "2025",
	}

	popularHashtags = []string{
		"#YouTube", "#Trending", "#Viral", "#New", "#Tutorial", "#Tips", "#Guide",
		"#Best", "#Top", "#Easy", "#Quick", "#Free", "#HowTo", "#Learn", "#2025",
	}

	titleTemplates = map[string][]string{
		model.ToneEngaging: {
			"%s - Everything You Need to Know!",
			"Amazing %s Tips You've Never Seen!",
			"%s SECRETS You Need to Know NOW!",
			"Don't Miss These %s Hacks!",
			"%s - The Best of 2025!",
		},
		model.ToneEducational: {
			"Complete %s Tutorial for Beginners",
			"%s Step by Step Guide",
			"How to Master %s in 2025",
			"%s - Everything You Need to Know",
			"Learn %s - Professional Guide",
		},
		model.ToneExciting: {
			"%s - INCREDIBLE RESULTS!",
			"AMAZING %s Techniques!",
			"%s - Stunning Tips!",
			"Awesome %s Tricks!",
			"%s - Mind-Blowing Ideas!",
		},
	}

	ideaTemplates = []struct{ title, description string }{
		{"Top 10 %s Tips for Beginners", "A quick-start list that helps newcomers avoid early frustration."},
		{"%s Mistakes to Avoid in 2025", "Common pitfalls explained so viewers can skip the trial and error."},
		{"How to Master %s: Complete Guide", "An end-to-end walkthrough for viewers who want the full picture."},
		{"%s Trends You Need to Know", "A roundup of what is changing so viewers stay ahead of the curve."},
		{"Best %s Tools and Resources", "Tried and tested recommendations that save viewers research time."},
		{"%s for Absolute Beginners", "A gentle first step for viewers who have never tried it before."},
		{"I Tried %s for 30 Days", "A personal challenge format that keeps viewers watching to the end."},
		{"%s on a Budget", "Money-saving approaches for viewers who want results without overspending."},
		{"%s Myths Debunked", "Popular misconceptions tested so viewers know what actually works."},
		{"Advanced %s Techniques", "Next-level methods for experienced viewers looking to improve."},
	}

	timestampPattern = regexp.MustCompile(`\d{1,2}:\d{2}`)
	linkPattern      = regexp.MustCompile(`https?://`)
)

// Fallback synthesizes output for req without any I/O. The result always has
// the same shape a provider response is asked for and is never empty; a blank
// topic is replaced with a placeholder. Whitespace runs in the topic collapse
// to single spaces so line-oriented shapes stay intact, except for description
// optimization where the topic is the description itself. The second return
// is false only for unknown tool kinds.
func Fallback(req model.GenerationRequest) (string, bool) {
	topic := strings.Join(strings.Fields(req.Topic), " ")
	if topic == "" {
		topic = placeholderTopic
	}

	switch req.Kind {
	case model.ToolKindTags:
		return fallbackTags(topic, countOption(req, defaultTagCount)), true
	case model.ToolKindTitles:
		return fallbackTitles(topic, toneOption(req), countOption(req, defaultTitleCount)), true
	case model.ToolKindDescription:
		return fallbackDescription(topic), true
	case model.ToolKindHashtags:
		return fallbackHashtags(topic, countOption(req, defaultHashtagCount)), true
	case model.ToolKindKeywordResearch:
		return fallbackKeywords(topic), true
	case model.ToolKindVideoSummary:
		return fallbackSummary(topic), true
	case model.ToolKindDescriptionOptimization:
		desc := strings.TrimSpace(req.Topic)
		if desc == "" {
			desc = placeholderTopic
		}
		return fallbackOptimization(desc), true
	case model.ToolKindContentIdeas:
		return fallbackIdeas(topic, countOption(req, defaultIdeaCount)), true
	}
	return "", false
}

func fallbackTags(topic string, count int) string {
	lower := strings.ToLower(withoutCommas(topic))
	candidates := append([]string{lower}, strings.Fields(lower)...)
	candidates = append(candidates, lower+" tutorial", lower+" tips")
	candidates = append(candidates, baseTags...)
	return strings.Join(dedupe(candidates, count), ", ")
}

func fallbackTitles(topic, tone string, count int) string {
	templates := titleTemplates[tone]
	n := min(count, len(templates))
	titles := make([]string, 0, n)
	for _, tmpl := range templates[:n] {
		titles = append(titles, fmt.Sprintf(tmpl, topic))
	}
	return strings.Join(titles, "\n")
}

func fallbackDescription(topic string) string {
	return fmt.Sprintf(`In this video, you'll learn everything about %[1]s!

Topics Covered in This Video:
• Complete %[1]s Tutorial
• Step-by-step Guide
• Pro Tips and Tricks
• Avoid Common Mistakes
• Best Practices

Video Timeline:
0:00 - Introduction
1:30 - Main Topic
3:00 - Tips & Tricks
5:00 - Conclusion

If this video was helpful, don't forget to LIKE!
SHARE with your friends!
SUBSCRIBE and hit the BELL ICON for new videos!

%[2]s #YouTube #Tutorial #Tips #2025`, topic, hashtagOf(topic))
}

func fallbackHashtags(topic string, count int) string {
	candidates := []string{hashtagOf(topic)}
	for _, word := range strings.Fields(topic) {
		candidates = append(candidates, hashtagOf(word))
	}
	candidates = append(candidates, popularHashtags...)
	return strings.Join(dedupe(candidates, count), " ")
}

func fallbackKeywords(topic string) string {
	lower := strings.ToLower(withoutCommas(topic))
	lines := []struct {
		label    string
		keywords []string
	}{
		{"Primary Keywords", []string{lower, lower + " tutorial", lower + " guide"}},
		{"Secondary Keywords", []string{"best " + lower, lower + " for beginners", lower + " 2025"}},
		{"Long-tail Keywords", []string{"how to " + lower + " for beginners 2025", lower + " complete guide"}},
		{"Trending Keywords", []string{lower + " trending", "new " + lower + " techniques"}},
	}

	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.label)
		sb.WriteString(": ")
		sb.WriteString(strings.Join(l.keywords, ", "))
	}
	return sb.String()
}

func fallbackSummary(title string) string {
	return fmt.Sprintf(`Overview:
This video provides comprehensive information about %[1]s.

Key Points:
- Main topic discussion
- Practical examples and demonstrations
- Expert tips and recommendations
- Common mistakes to avoid
- Best practices for implementation

Target Audience:
This content is ideal for viewers interested in %[1]s and looking to learn more about the topic.

Main Takeaway:
The video delivers valuable insights and actionable information that viewers can immediately apply.`, title)
}

// scoreDescription rates description out of 100 and lists what is missing.
func scoreDescription(description string) (int, []string) {
	score := 50
	var improvements []string

	if len(description) >= 200 {
		score += 20
	} else {
		improvements = append(improvements, "Description is too short. Aim for at least 200 characters.")
	}
	if strings.Contains(description, "#") {
		score += 15
	} else {
		improvements = append(improvements, "Add relevant hashtags for better discoverability.")
	}
	if timestampPattern.MatchString(description) {
		score += 10
	} else {
		improvements = append(improvements, "Include timestamps for easier navigation.")
	}
	if linkPattern.MatchString(description) {
		score += 5
	} else {
		improvements = append(improvements, "Add links to your social media or website.")
	}
	return score, improvements
}

func fallbackOptimization(description string) string {
	score, improvements := scoreDescription(description)
	if len(improvements) == 0 {
		improvements = []string{"Description already covers length, hashtags, timestamps and links."}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "SEO Score: %d/100\n\nImprovements:\n", score)
	for _, s := range improvements {
		sb.WriteString("- ")
		sb.WriteString(s)
		sb.WriteByte('\n')
	}
	sb.WriteString("\nOptimized Description:\n")
	sb.WriteString(description)
	sb.WriteString(`

Key Topics:
• Main content overview
• Step-by-step guidance
• Pro tips and tricks

Timestamps:
0:00 - Introduction
2:00 - Main Content
5:00 - Conclusion

Don't forget to LIKE, SHARE, and SUBSCRIBE!

#YouTube #Tutorial #Guide #Tips #2025`)
	return sb.String()
}

func fallbackIdeas(niche string, count int) string {
	// " - " separates title from description on each line.
	niche = strings.ReplaceAll(niche, " - ", " ")
	n := min(count, len(ideaTemplates))
	lines := make([]string, 0, n)
	for i, idea := range ideaTemplates[:n] {
		lines = append(lines, fmt.Sprintf("%d. %s - %s", i+1, fmt.Sprintf(idea.title, niche), idea.description))
	}
	return strings.Join(lines, "\n")
}

// withoutCommas replaces commas in s with spaces and collapses the result,
// for shapes that use ", " as the list separator.
func withoutCommas(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, ",", " ")), " ")
}

// hashtagOf builds a CamelCase hashtag from s, dropping anything that is not
// a letter or digit.
func hashtagOf(s string) string {
	var sb strings.Builder
	sb.WriteByte('#')
	for _, word := range strings.Fields(s) {
		first := true
		for _, r := range word {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				continue
			}
			if first {
				r = unicode.ToUpper(r)
				first = false
			}
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 1 {
		return "#Video"
	}
	return sb.String()
}

// dedupe returns the first limit distinct, non-blank values, compared
// case-insensitively.
func dedupe(values []string, limit int) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, limit)
	for _, v := range values {
		if len(out) == limit {
			break
		}
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" || key == "#" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
