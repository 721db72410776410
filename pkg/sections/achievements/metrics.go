package achievements

import (
	"regexp"
	"strings"
	"unicode"
)

// MetricGlyph is shown in place of a metric when a title carries none.
const MetricGlyph = "★"

// Metric is the presentation split of an achievement title used by the
// metrics layout.
type Metric struct {
	Value   string
	Rest    string
	Kind    string
	Matched bool
}

// Label returns the text shown in the metric slot.
func (m Metric) Label() string {
	if m.Matched {
		return m.Value
	}
	return MetricGlyph
}

type metricPattern struct {
	kind string
	re   *regexp.Regexp
	// group selects the submatch used as the metric; 0 is the whole match.
	group int
}

// Order matters: the first pattern that matches wins.
var metricPatterns = []metricPattern{
	{kind: "percentage", re: regexp.MustCompile(`\d+(?:\.\d+)?%`)},
	{kind: "number-plus", re: regexp.MustCompile(`\d+(?:,\d{3})*\+`)},
	{kind: "money", re: regexp.MustCompile(`(?i)\$\d+(?:,\d{3})*(?:\.\d+)?[KMB]?`)},
	{kind: "abbreviated", re: regexp.MustCompile(`(?i)\d+(?:\.\d+)?[KMB]\b`)},
	{kind: "ranking", re: regexp.MustCompile(`#\d+`)},
	{kind: "multiplier", re: regexp.MustCompile(`(?i)\d+(?:\.\d+)?x\b`)},
	{kind: "leading-integer", re: regexp.MustCompile(`^(\d+)\s`), group: 1},
}

// ExtractMetric pulls the leading metric token out of title. Without a match
// the whole title is returned as Rest and Matched is false. The heuristic is
// lossy ("30 days to close" yields "30"); output for existing documents
// depends on it staying that way.
func ExtractMetric(title string) Metric {
	for _, pattern := range metricPatterns {
		loc := pattern.re.FindStringSubmatchIndex(title)
		if loc == nil {
			continue
		}
		start, end := loc[2*pattern.group], loc[2*pattern.group+1]
		rest := title[:start] + title[end:]
		return Metric{
			Value:   title[start:end],
			Rest:    cleanRest(rest),
			Kind:    pattern.kind,
			Matched: true,
		}
	}
	return Metric{Rest: title}
}

func cleanRest(rest string) string {
	rest = strings.TrimLeftFunc(rest, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r) || r == '|'
	})
	return strings.Join(strings.Fields(rest), " ")
}
