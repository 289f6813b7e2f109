package jobparse

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

var whitespaceRE = regexp.MustCompile(`[\s\p{Z}\v]+`)

// noisePatterns are boilerplate fragments removed from extracted content.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`Cookie Policy`),
	regexp.MustCompile(`Privacy Policy`),
	regexp.MustCompile(`Terms of Service`),
	regexp.MustCompile(`Accept all cookies`),
	regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`),
	regexp.MustCompile(`Copyright © \d{4}`),
	regexp.MustCompile(`All rights reserved`),
}

// CleanText normalizes whitespace and strips known boilerplate from
// extracted content. It is idempotent: CleanText(CleanText(s)) == CleanText(s).
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = collapseWhitespace(text)
	text = dropBlankLines(text)

	// Removing a pattern can join fragments into a new match or leave a
	// double space behind, so repeat until the text is stable.
	for {
		next := removeNoise(text)
		if next == text {
			break
		}
		text = next
	}

	return strings.TrimSpace(text)
}

func collapseWhitespace(text string) string {
	return whitespaceRE.ReplaceAllString(text, " ")
}

func dropBlankLines(text string) string {
	lines := lo.Map(strings.Split(text, "\n"), func(line string, _ int) string {
		return strings.TrimSpace(line)
	})
	return strings.Join(lo.Compact(lines), "\n")
}

func removeNoise(text string) string {
	for _, re := range noisePatterns {
		text = re.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(collapseWhitespace(text))
}
