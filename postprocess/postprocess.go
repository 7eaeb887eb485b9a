// Package postprocess normalizes raw model replies before they are stored
// or displayed.
package postprocess

import (
	"regexp"
	"strings"
)

var urlPattern = regexp.MustCompile(`https?://\S+`)

// Normalize strips literal bracket and parenthesis characters from a reply.
// The prompt forbids markdown links, but models still emit residual
// "[text](url)" syntax now and then.
func Normalize(raw string) string {
	replacer := strings.NewReplacer("[", "", "]", "", "(", "", ")", "")
	return replacer.Replace(raw)
}

// Linkify wraps every URL in an anchor fragment styled for the web UI.
// Text without URLs passes through unchanged. Web rendering path only;
// the CLI prints replies as-is.
func Linkify(s string) string {
	return urlPattern.ReplaceAllString(s, `<a href='$0' target='_blank' style='color:#008080;'>$0</a>`)
}
