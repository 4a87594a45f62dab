// Package dom builds and inspects HTML node trees.
package dom

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Option configures an element under construction
type Option func(*html.Node)

// El creates an element node
func El(tag string, opts ...Option) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// TextNode creates a text node
func TextNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Attr sets an attribute
func Attr(key, val string) Option {
	return func(n *html.Node) {
		SetAttr(n, key, val)
	}
}

// ID sets the id attribute
func ID(id string) Option {
	return Attr("id", id)
}

// Class sets the class attribute from the non-empty names given
func Class(names ...string) Option {
	return func(n *html.Node) {
		parts := make([]string, 0, len(names))
		for _, name := range names {
			if name = strings.TrimSpace(name); name != "" {
				parts = append(parts, name)
			}
		}
		if len(parts) > 0 {
			SetAttr(n, "class", strings.Join(parts, " "))
		}
	}
}

// If applies opt only when cond holds
func If(cond bool, opt Option) Option {
	return func(n *html.Node) {
		if cond {
			opt(n)
		}
	}
}

// Text appends a text child
func Text(s string) Option {
	return func(n *html.Node) {
		n.AppendChild(TextNode(s))
	}
}

// Children appends the non-nil nodes as children
func Children(children ...*html.Node) Option {
	return func(n *html.Node) {
		Append(n, children...)
	}
}

// Append adds the non-nil nodes to parent and returns parent
func Append(parent *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.Parent != nil {
			c.Parent.RemoveChild(c)
		}
		parent.AppendChild(c)
	}
	return parent
}

// SetAttr sets or replaces an attribute
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// AttrValue returns an attribute's value
func AttrValue(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasClass reports whether n carries the class name
func HasClass(n *html.Node, class string) bool {
	v, ok := AttrValue(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// Find returns every element under root (root included) matching pred, in document order
func Find(root *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && pred(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}

// FindByClass returns elements carrying the class
func FindByClass(root *html.Node, class string) []*html.Node {
	return Find(root, func(n *html.Node) bool { return HasClass(n, class) })
}

// FindByID returns the first element with the id, or nil
func FindByID(root *html.Node, id string) *html.Node {
	found := Find(root, func(n *html.Node) bool {
		v, ok := AttrValue(n, "id")
		return ok && v == id
	})
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

// TextContent returns the concatenated text under n with whitespace collapsed
func TextContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if n != nil {
		walk(n)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Render serializes nodes in order
func Render(nodes ...*html.Node) (string, error) {
	var buf bytes.Buffer
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("render %s: %w", n.Data, err)
		}
	}
	return buf.String(), nil
}

// Parse parses an HTML fragment as children of a <div>
func Parse(fragment string) ([]*html.Node, error) {
	ctx := El("div")
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}
	return nodes, nil
}
