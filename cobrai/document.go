/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package cobrai

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a parsed rounds page. Lookups are by tag name and an
// optional class; any lookup may come back empty.
type Document struct {
	root Node
}

// Node is an element handle within a Document.
type Node struct {
	sel *goquery.Selection
}

func ParseDocument(page Page) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("cobrai.parse: %w", err)
	}

	return &Document{root: Node{sel: doc.Selection}}, nil
}

func selector(tag, class string) string {
	if class == "" {
		return tag
	}
	return tag + "." + class
}

// FindAll returns every matching element in document order.
func (d *Document) FindAll(tag, class string) []Node {
	return d.root.FindAll(tag, class)
}

// FindOutermost is FindAll without the matches nested inside another match.
func (d *Document) FindOutermost(tag, class string) []Node {
	sel := selector(tag, class)
	var nodes []Node
	d.root.sel.Find(sel).Each(func(_ int, s *goquery.Selection) {
		if s.ParentsFiltered(sel).Length() == 0 {
			nodes = append(nodes, Node{sel: s})
		}
	})

	return nodes
}

// FindAll returns the matching descendants of n in document order.
func (n Node) FindAll(tag, class string) []Node {
	var nodes []Node
	n.sel.Find(selector(tag, class)).Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, Node{sel: s})
	})

	return nodes
}

// FindFirst returns the first matching descendant of n, or an error
// wrapping ErrStructure.
func (n Node) FindFirst(tag, class string) (Node, error) {
	first := n.sel.Find(selector(tag, class)).First()
	if first.Length() == 0 {
		if class == "" {
			return Node{}, fmt.Errorf("%w: no <%v> element", ErrStructure, tag)
		}
		return Node{}, fmt.Errorf("%w: no <%v class=%q> element", ErrStructure,
			tag, class)
	}

	return Node{sel: first}, nil
}

// Text returns the combined text of n and its descendants.
func (n Node) Text() string {
	return n.sel.Text()
}

// FirstText returns n's first child, trimmed, which must be a text node.
func (n Node) FirstText() (string, error) {
	if n.sel == nil || n.sel.Length() == 0 {
		return "", fmt.Errorf("%w: empty selection", ErrStructure)
	}
	child := n.sel.Get(0).FirstChild
	if child == nil {
		return "", fmt.Errorf("%w: <%v> has no content", ErrStructure,
			goquery.NodeName(n.sel))
	}
	if child.Type != html.TextNode {
		return "", fmt.Errorf("%w: <%v> does not start with text", ErrStructure,
			goquery.NodeName(n.sel))
	}

	return strings.TrimSpace(child.Data), nil
}
