package components

import "golang.org/x/net/html"

// Label renders <label>text</label>.
func Label(text string) *html.Node {
	return Element("label", nil, Text(text))
}

// TableRow renders a <tr> around children.
func TableRow(children ...*html.Node) *html.Node {
	return Element("tr", nil, children...)
}
