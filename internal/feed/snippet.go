package feed

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Snippet reduces a possibly-HTML description to a plain-text excerpt with
// collapsed whitespace. Plain input passes through untouched apart from
// trimming.
func Snippet(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	// Fast path: nothing tag-ish to strip.
	if !strings.Contains(text, "<") {
		return collapseSpace(text)
	}

	// Parse as a fragment so partial HTML from feeds works.
	ctx := &html.Node{Type: html.ElementNode, DataAtom: atom.Div, Data: "div"}
	nodes, err := html.ParseFragment(strings.NewReader(text), ctx)
	if err != nil {
		return collapseSpace(text)
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n == nil {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return collapseSpace(b.String())
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
