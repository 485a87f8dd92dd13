package utils

import (
	"encoding/json"
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

var (
	reScript = regexp.MustCompile(`(?i)<script[^>]*>[\s\S]*?</script>`)
	reStyle  = regexp.MustCompile(`(?i)<style[^>]*>[\s\S]*?</style>`)
	reBreak  = regexp.MustCompile(`(?i)<br\s*/?>|</p>|</div>|</tr>|</li>`)
	reBlank  = regexp.MustCompile(`\n{3,}`)

	stripPolicy = bluemonday.StripTagsPolicy()
)

// HTMLToText turns an HTML mail body into plain text, keeping line structure.
func HTMLToText(s string) string {
	s = reScript.ReplaceAllString(s, "")
	s = reStyle.ReplaceAllString(s, "")
	s = reBreak.ReplaceAllString(s, "\n")

	s = stripPolicy.Sanitize(s)
	// bluemonday escapes entities on output; we want plain text
	s = html.UnescapeString(s)

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	s = strings.Join(lines, "\n")
	s = reBlank.ReplaceAllString(s, "\n\n")

	return strings.TrimSpace(s)
}

// CardText makes arbitrary text safe for a card text widget, which renders a
// subset of HTML. Newlines become <br>.
func CardText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = html.EscapeString(s)
	return strings.ReplaceAll(s, "\n", "<br>")
}

// TruncateRunes cuts s to at most limit characters. Strings within the limit
// are returned untouched; longer ones are NFC-normalized first so combining
// sequences are not split. The second return value reports whether anything
// was cut.
func TruncateRunes(s string, limit int) (string, bool) {
	if utf8.RuneCountInString(s) <= limit {
		return s, false
	}

	runes := []rune(norm.NFC.String(ToValidUTF8(s)))
	if len(runes) <= limit {
		return string(runes), false
	}
	return string(runes[:limit]), true
}

// ToValidUTF8 cleans strings to ensure they are valid UTF-8
func ToValidUTF8(s string) string {
	return strings.ToValidUTF8(s, "")
}

// ParseJSON parses a JSON string into a target interface
func ParseJSON(jsonStr string, target interface{}) error {
	return json.Unmarshal([]byte(jsonStr), target)
}
