package feed

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	tabRuns    = regexp.MustCompile(`\t+`)
	spaceRuns  = regexp.MustCompile(` +`)
	blankLines = regexp.MustCompile(`(\r?\n[ \t]*){2,}`)
)

// cleanHTML flattens rich product copy to plain text: tags stripped, entities
// decoded, tab and space runs collapsed, blank-line runs collapsed to a
// single newline, surrounding whitespace trimmed.
func cleanHTML(content string) string {
	if content == "" {
		return ""
	}

	text := content
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(content)); err == nil {
		text = doc.Text()
	}

	text = tabRuns.ReplaceAllString(text, " ")
	text = spaceRuns.ReplaceAllString(text, " ")
	text = blankLines.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
