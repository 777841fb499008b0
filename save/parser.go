// fleetdesk/save/parser.go
package save

import (
	"regexp"
	"strconv"
	"strings"
)

// RawFields are the values scraped from a save before assembly.
// The slices are never nil.
type RawFields struct {
	Level    uint32
	Skills   []string
	Cities   []string
	Trailers []string
}

// Parser extracts RawFields from save text. Parsers never fail: absent or
// malformed fields fall back to defaults.
type Parser interface {
	Parse(text string) RawFields
}

// NewParser returns the parser registered under name ("pattern" or "line").
// Unknown names get the pattern parser.
func NewParser(name string) Parser {
	if name == "line" {
		return LineParser{}
	}
	return PatternParser{}
}

const defaultLevel = 1

// utf8BOM is stripped from the start of the text so a first-line key still matches.
const utf8BOM = "\ufeff"

func emptyFields() RawFields {
	return RawFields{
		Level:    defaultLevel,
		Skills:   []string{},
		Cities:   []string{},
		Trailers: []string{},
	}
}

// parseLevel converts a run of digits to a level, falling back to the
// default on overflow or zero.
func parseLevel(digits string) uint32 {
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil || n == 0 {
		return defaultLevel
	}
	return uint32(n)
}

var (
	levelRe    = regexp.MustCompile(`(?m)^[ \t]*level:[ \t]*(\d+)`)
	skillRe    = regexp.MustCompile(`(?m)^[ \t]*skill_points\[\d+\]:[ \t]*(\S+)`)
	cityRe     = regexp.MustCompile(`(?m)^[ \t]*city_discovered\[\d+\]:[ \t]*([a-z0-9_.]+)[ \t]*\r?$`)
	trailersRe = regexp.MustCompile(`(?m)^[ \t]*owned_trailer\[\d+\]:[ \t]*([a-z0-9_.]+)[ \t]*\r?$`)
)

// PatternParser scrapes each field independently with a line-anchored
// regular expression over the whole text.
type PatternParser struct{}

func (PatternParser) Parse(text string) RawFields {
	text = strings.TrimPrefix(text, utf8BOM)
	raw := emptyFields()
	if m := levelRe.FindStringSubmatch(text); m != nil {
		raw.Level = parseLevel(m[1])
	}
	raw.Skills = captureAll(skillRe, text)
	raw.Cities = captureAll(cityRe, text)
	raw.Trailers = captureAll(trailersRe, text)
	return raw
}

func captureAll(re *regexp.Regexp, text string) []string {
	out := []string{}
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		out = append(out, m[1])
	}
	return out
}
