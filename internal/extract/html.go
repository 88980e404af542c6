package extract

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// fromHTML extracts readable text, preferring <main> or <article> over the
// whole <body> and skipping script, style, and navigation boilerplate.
// Block elements become paragraph breaks; the pipeline's normalizer
// collapses the rest.
func fromHTML(input []byte) string {
	node, err := html.Parse(bytes.NewReader(input))
	if err != nil || node == nil {
		return ""
	}
	root := findElement(node, "main")
	if root == nil {
		root = findElement(node, "article")
	}
	if root == nil {
		root = findElement(node, "body")
	}
	if root == nil {
		return ""
	}
	var sb strings.Builder
	collect(&sb, root)
	return sb.String()
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func collect(sb *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "nav", "footer", "aside", "iframe":
			return
		case "br":
			sb.WriteByte('\n')
		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "div":
			sb.WriteByte('\n')
		}
	}
	if n.Type == html.TextNode {
		sb.WriteString(strings.ReplaceAll(n.Data, "\t", " "))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collect(sb, c)
	}
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "div":
			sb.WriteString("\n\n")
		case "li":
			sb.WriteByte('\n')
		}
	}
}
