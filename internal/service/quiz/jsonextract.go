package quiz

import "regexp"

// Models wrap their JSON in markdown fences or surround it with prose; both
// patterns run over the whole reply.
var (
	fencedArrayPattern = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(\\[.*?\\])\\s*```")
	bareArrayPattern   = regexp.MustCompile(`(?s)\[[\s\S]*\]`)
)

// ExtractJSONArray pulls a JSON array out of a model reply. A fenced code
// block wins over a bare bracket span, and the first fenced block is taken
// when there are several. The bare span is greedy, first "[" to last "]".
// Returns the empty string when no array is found.
func ExtractJSONArray(content string) string {
	if matches := fencedArrayPattern.FindStringSubmatch(content); len(matches) > 1 {
		return matches[1]
	}
	return bareArrayPattern.FindString(content)
}
