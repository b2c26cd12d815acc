// ABOUTME: Keyword density analysis over page text
// ABOUTME: Case-insensitive occurrence counting via regular expressions

package density

import (
	"regexp"
	"strings"
)

// Count returns the number of occurrences of each keyword in text.
// Matching is case-insensitive and keywords are counted independently;
// overlapping keywords do not interfere with each other's counts.
//
// The result is diagnostic only. Nothing in the system acts on it.
func Count(text string, keywords []string) map[string]int {
	lowered := strings.ToLower(text)
	counts := make(map[string]int, len(keywords))

	for _, keyword := range keywords {
		re := regexp.MustCompile(regexp.QuoteMeta(strings.ToLower(keyword)))
		counts[keyword] = len(re.FindAllStringIndex(lowered, -1))
	}

	return counts
}

// WordCount returns the approximate number of words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
