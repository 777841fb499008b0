// fleetdesk/save/lineparser.go
package save

import (
	"bufio"
	"strings"
)

// LineParser tokenizes the save one line at a time into key, optional
// index and value, and dispatches on the key. It yields the same RawFields
// as PatternParser.
type LineParser struct{}

type entry struct {
	key     string
	indexed bool
	value   string
}

func (LineParser) Parse(text string) RawFields {
	text = strings.TrimPrefix(text, utf8BOM)
	raw := emptyFields()
	levelSet := false

	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), len(text)+1)
	for sc.Scan() {
		e, ok := tokenize(sc.Text())
		if !ok {
			continue
		}
		switch {
		case e.key == "level" && !e.indexed && !levelSet:
			if d := leadingDigits(e.value); d != "" {
				raw.Level = parseLevel(d)
				levelSet = true
			}
		case e.key == "skill_points" && e.indexed:
			if tok := leadingToken(e.value); tok != "" {
				raw.Skills = append(raw.Skills, tok)
			}
		case e.key == "city_discovered" && e.indexed:
			if v := strings.TrimRight(e.value, " \t"); isIdent(v) {
				raw.Cities = append(raw.Cities, v)
			}
		case e.key == "owned_trailer" && e.indexed:
			if v := strings.TrimRight(e.value, " \t"); isIdent(v) {
				raw.Trailers = append(raw.Trailers, v)
			}
		}
	}
	return raw
}

// tokenize splits "key: value" or "key[n]: value". Leading blanks before the
// key and after the colon are dropped.
func tokenize(line string) (entry, bool) {
	line = strings.TrimLeft(line, " \t")
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return entry{}, false
	}
	key := line[:colon]
	value := strings.TrimLeft(line[colon+1:], " \t")

	open := strings.IndexByte(key, '[')
	if open < 0 {
		return entry{key: key, value: value}, true
	}
	if !strings.HasSuffix(key, "]") {
		return entry{}, false
	}
	idx := key[open+1 : len(key)-1]
	if idx == "" || leadingDigits(idx) != idx {
		return entry{}, false
	}
	return entry{key: key[:open], indexed: true, value: value}, true
}

func leadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}

// leadingToken returns the run of bytes before the first ASCII blank.
func leadingToken(s string) string {
	end := strings.IndexAny(s, " \t\n\f\r")
	if end < 0 {
		return s
	}
	return s[:end]
}

// isIdent reports whether s is a non-empty run of [a-z0-9_.].
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_' || c == '.') {
			return false
		}
	}
	return true
}
