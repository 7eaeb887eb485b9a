package postprocess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fitness-chatbot/postprocess"
)

func TestNormalizeStripsBrackets(t *testing.T) {
	out := postprocess.Normalize("a[b](c)")
	assert.Equal(t, "abc", out)
	assert.NotContains(t, out, "[")
	assert.NotContains(t, out, "]")
	assert.NotContains(t, out, "(")
	assert.NotContains(t, out, ")")
}

func TestNormalizeLeavesPlainTextAlone(t *testing.T) {
	assert.Equal(t, "do 3 sets of squats", postprocess.Normalize("do 3 sets of squats"))
}

func TestLinkifyNoURLs(t *testing.T) {
	assert.Equal(t, "hello", postprocess.Linkify("hello"))
}

func TestLinkifyWrapsURL(t *testing.T) {
	out := postprocess.Linkify("see https://x.com/y now")
	assert.Equal(t, "see <a href='https://x.com/y' target='_blank' style='color:#008080;'>https://x.com/y</a> now", out)
}

func TestLinkifyWrapsMultipleURLs(t *testing.T) {
	out := postprocess.Linkify("http://a.io and https://b.io")
	assert.Contains(t, out, "<a href='http://a.io'")
	assert.Contains(t, out, "<a href='https://b.io'")
}
