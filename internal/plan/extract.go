// internal/plan/extract.go
package plan

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSONFound is returned when the generated text contains no JSON object
// to extract.
var ErrNoJSONFound = errors.New("no JSON object found in generated text")

// Repair heuristics for malformed generated JSON. Each is independent and
// idempotent; they are applied in a fixed order.
var (
	// "reps": "8-12" -> "reps": 8 (lower bound kept as the single value)
	repsRangeRe = regexp.MustCompile(`"reps":\s*"(\d+)\s*-\s*(\d+)"`)
	// { name: ... -> { "name": ...
	unquotedKeyRe = regexp.MustCompile(`([{,])\s*([a-zA-Z]+):`)
	// }{ -> },{
	missingCommaRe = regexp.MustCompile(`}\s*{`)
	// trailing commas before ] or }
	trailingCommaArrRe = regexp.MustCompile(`,\s*]`)
	trailingCommaObjRe = regexp.MustCompile(`,\s*}`)
)

// ExtractJSON locates the JSON object embedded in raw generated text: the
// substring from the first '{' to the last '}' inclusive. The reps-range fix
// is applied eagerly since it is the most frequent shape issue; the remaining
// heuristics only run through RepairJSON when a parse attempt fails.
func ExtractJSON(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end < start {
		return "", ErrNoJSONFound
	}
	candidate := text[start : end+1]
	return fixRepsRanges(candidate), nil
}

// RepairJSON applies the full repair heuristic set. Running it on already
// valid JSON leaves the text unchanged.
func RepairJSON(jsonText string) string {
	jsonText = fixRepsRanges(jsonText)
	jsonText = unquotedKeyRe.ReplaceAllString(jsonText, `$1"$2":`)
	jsonText = missingCommaRe.ReplaceAllString(jsonText, "},{")
	jsonText = trailingCommaArrRe.ReplaceAllString(jsonText, "]")
	jsonText = trailingCommaObjRe.ReplaceAllString(jsonText, "}")
	return jsonText
}

func fixRepsRanges(jsonText string) string {
	return repsRangeRe.ReplaceAllString(jsonText, `"reps": $1`)
}
