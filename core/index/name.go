package index

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/golang-module/carbon/v2"
)

// DefaultNamePattern produces names sortable by creation time.
const DefaultNamePattern = "{{YYYYMMdd}}-{{HHmmss}}"

var patternTokenRegex = regexp.MustCompile(`{{([^{}]*)}}`)

// date field symbols understood inside a {{TOKEN}}, mapped to carbon
// format characters. Longer runs of the same symbol are matched first.
// YYYY is the calendar year, not the ISO week-numbering year.
var dateSymbols = map[string]string{
	"yyyy": "Y",
	"YYYY": "Y",
	"yy":   "y",
	"YY":   "y",
	"MMMM": "F",
	"MMM":  "M",
	"MM":   "m",
	"M":    "n",
	"dd":   "d",
	"d":    "j",
	"HH":   "H",
	"H":    "G",
	"hh":   "h",
	"h":    "g",
	"mm":   "i",
	"ss":   "s",
	"EEEE": "l",
	"EEE":  "D",
	"a":    "A",
}

// symbols carbon has no format character for, written as literals.
var literalSymbols = map[string]func(time.Time) int{
	"m": time.Time.Minute,
	"s": time.Time.Second,
}

// NewName returns the physical index name for alias at the given time:
// "<alias>-<resolved pattern>". An empty pattern falls back to
// DefaultNamePattern.
func NewName(alias, pattern string, now time.Time) (string, error) {
	if pattern == "" {
		pattern = DefaultNamePattern
	}
	resolved, err := ResolvePattern(pattern, now)
	if err != nil {
		return "", err
	}
	return alias + "-" + resolved, nil
}

// ResolvePattern replaces every {{TOKEN}} in pattern with now, in UTC,
// formatted according to the token. Text outside tokens is kept as is.
// A token holding an unknown date symbol is an error.
func ResolvePattern(pattern string, now time.Time) (string, error) {
	var resolveErr error
	resolved := patternTokenRegex.ReplaceAllStringFunc(pattern, func(match string) string {
		if resolveErr != nil {
			return match
		}
		token := patternTokenRegex.FindStringSubmatch(match)[1]
		format, err := tokenFormat(token, now.UTC())
		if err != nil {
			resolveErr = PatternError{Pattern: pattern, Token: token}
			return match
		}
		return carbon.Time2Carbon(now).Format(format, carbon.UTC)
	})
	if resolveErr != nil {
		return "", resolveErr
	}
	return resolved, nil
}

// tokenFormat translates a date token such as "YYYYMMdd" into a carbon
// format string. Non-letter characters are escaped and kept literally.
func tokenFormat(token string, now time.Time) (string, error) {
	if token == "" {
		return "", fmt.Errorf("empty token")
	}

	var format strings.Builder
	for i := 0; i < len(token); {
		ch := token[i]
		if !isLetter(ch) {
			writeLiteral(&format, string(ch))
			i++
			continue
		}

		run := 1
		for i+run < len(token) && token[i+run] == ch {
			run++
		}

		// consume the run greedily, longest known symbol first
		for run > 0 {
			n := run
			for ; n > 0; n-- {
				if f, ok := dateSymbols[token[i:i+n]]; ok {
					format.WriteString(f)
					break
				}
				if field, ok := literalSymbols[token[i:i+n]]; ok {
					writeLiteral(&format, strconv.Itoa(field(now)))
					break
				}
			}
			if n == 0 {
				return "", fmt.Errorf("unknown date symbol %q", token[i:i+run])
			}
			i += n
			run -= n
		}
	}
	return format.String(), nil
}

func writeLiteral(format *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		format.WriteByte('\\')
		format.WriteByte(s[i])
	}
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
