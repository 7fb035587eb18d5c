// Package components renders the view pieces that sit next to the widget
// bindings: a sortable table keyed by row content, table rows, labels and
// data-bound checkboxes. Output is a tree of golang.org/x/net/html nodes.
package components

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Text returns a text node.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Element returns an element node with attrs and children. Children that
// already have a parent are moved.
func Element(tag string, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag)), Attr: attrs}
	appendChildren(n, children)
	return n
}

// Attr is shorthand for an html.Attribute.
func Attr(name, value string) html.Attribute {
	return html.Attribute{Key: name, Val: value}
}

// Render serializes nodes to HTML.
func Render(nodes ...*html.Node) (string, error) {
	var b strings.Builder
	for _, n := range nodes {
		if err := html.Render(&b, n); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func appendChildren(parent *html.Node, children []*html.Node) {
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.Parent != nil {
			c.Parent.RemoveChild(c)
		}
		parent.AppendChild(c)
	}
}

func addClass(n *html.Node, class string) {
	for i, a := range n.Attr {
		if a.Key == "class" {
			if a.Val == "" {
				n.Attr[i].Val = class
			} else {
				n.Attr[i].Val = a.Val + " " + class
			}
			return
		}
	}
	n.Attr = append(n.Attr, Attr("class", class))
}
