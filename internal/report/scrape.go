package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var skippedInputTypes = map[string]bool{
	"submit": true,
	"button": true,
	"reset":  true,
	"image":  true,
	"file":   true,
	"hidden": true,
}

// Scrape reads every input, select and textarea in a rendered form page and
// resolves each to a labelled value. It is the fallback path for pages that
// have no structured state behind them.
func Scrape(r io.Reader) ([]Field, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse form html: %w", err)
	}

	labels := make(map[string]string)
	walk(doc, func(n *html.Node) {
		if n.DataAtom != atom.Label {
			return
		}
		if id := attr(n, "for"); id != "" {
			if _, ok := labels[id]; !ok {
				labels[id] = labelText(n)
			}
		}
	})

	out := make([]Field, 0)
	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}

		var (
			value string
			ok    bool
		)
		switch n.DataAtom {
		case atom.Input:
			value, ok = inputValue(n)
		case atom.Select:
			value, ok = selectValue(n), true
		case atom.Textarea:
			value, ok = textContent(n), true
		default:
			return
		}
		if !ok {
			return
		}

		value = strings.TrimSpace(value)
		if value == "" {
			return
		}

		out = append(out, Field{Label: resolveLabel(n, labels), Value: value})
	})

	return out, nil
}

func inputValue(n *html.Node) (string, bool) {
	typ := strings.ToLower(attr(n, "type"))
	if skippedInputTypes[typ] {
		return "", false
	}
	_, checked := attrOK(n, "checked")

	switch typ {
	case "checkbox":
		return yesNo(checked), true
	case "radio":
		if !checked {
			return "", false
		}
		return attr(n, "value"), true
	}

	return attr(n, "value"), true
}

func selectValue(n *html.Node) string {
	options := make([]*html.Node, 0)
	walk(n, func(c *html.Node) {
		if c.DataAtom == atom.Option {
			options = append(options, c)
		}
	})
	if len(options) == 0 {
		return ""
	}

	selected := make([]string, 0)
	for _, o := range options {
		if _, ok := attrOK(o, "selected"); ok {
			selected = append(selected, optionValue(o))
		}
	}

	if len(selected) == 0 {
		if _, multi := attrOK(n, "multiple"); multi {
			return ""
		}
		return optionValue(options[0])
	}

	if _, multi := attrOK(n, "multiple"); !multi {
		return selected[len(selected)-1]
	}

	return strings.Join(selected, ", ")
}

func optionValue(o *html.Node) string {
	if v, ok := attrOK(o, "value"); ok {
		return v
	}
	return textContent(o)
}

func resolveLabel(n *html.Node, labels map[string]string) string {
	if id := attr(n, "id"); id != "" {
		if l := labels[id]; l != "" {
			return l
		}
	}

	for p := n.Parent; p != nil; p = p.Parent {
		if p.DataAtom == atom.Label {
			if l := labelText(p); l != "" {
				return l
			}
			break
		}
	}

	for _, key := range []string{"name", "placeholder", "type"} {
		if v := strings.TrimSpace(attr(n, key)); v != "" {
			return v
		}
	}

	return n.Data
}

// labelText is the label's own text, excluding the text of nested controls.
func labelText(n *html.Node) string {
	var b strings.Builder
	var fn func(*html.Node)
	fn = func(c *html.Node) {
		switch {
		case c.Type == html.TextNode:
			b.WriteString(c.Data)
			b.WriteByte(' ')
		case c.DataAtom == atom.Select, c.DataAtom == atom.Textarea:
			return
		}
		for k := c.FirstChild; k != nil; k = k.NextSibling {
			fn(k)
		}
	}
	fn(n)
	return strings.TrimSuffix(strings.Join(strings.Fields(b.String()), " "), ":")
}

func textContent(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func attrOK(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func attr(n *html.Node, key string) string {
	v, _ := attrOK(n, key)
	return v
}
