package csvmap

import "strings"

// delimiter candidates in priority order; the first one reaching the highest
// count wins because the comparison is strict.
var delimiterCandidates = []rune{';', ',', '\t'}

// DetectDelimiter picks the most plausible field separator for one line of
// raw text. An empty line yields ';' with zero occurrences, which is still a
// usable default, not an error.
func DetectDelimiter(line string) rune {
	best := ';'
	bestCount := -1
	for _, d := range delimiterCandidates {
		if n := strings.Count(line, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}
