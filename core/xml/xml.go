// Package xml provides a pure Go XML DOM with XPath support for song documents.
//
// Namespace handling: element names are exposed through Name(), which is the
// local tag name with any namespace prefix already separated by the parser.
// The parsed tree is never mutated, so one Document can serve multiple passes.
package xml

import (
	"bytes"
	"fmt"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// Document represents a parsed XML document.
type Document struct {
	root *xmlquery.Node
}

// Node represents an XML node (element, text, attribute, etc.).
type Node struct {
	node *xmlquery.Node
}

// NodeKind classifies a node for callers that walk raw child lists.
type NodeKind int

const (
	// KindElement is an element node.
	KindElement NodeKind = iota
	// KindText is a text or CDATA node.
	KindText
	// KindOther is any other node type (comments, declarations).
	KindOther
)

// Parse parses XML data and returns a Document.
func Parse(data []byte) (*Document, error) {
	reader := bytes.NewReader(data)
	root, err := xmlquery.Parse(reader)
	if err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}
	return &Document{root: root}, nil
}

// Root returns the root element of the document.
func (d *Document) Root() *Node {
	if d.root == nil {
		return nil
	}
	// Find the first element child
	for child := d.root.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			return &Node{node: child}
		}
	}
	return nil
}

// XPath executes an XPath query and returns matching nodes.
func (d *Document) XPath(expr string) ([]*Node, error) {
	// Compile the expression to check for errors
	_, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid xpath: %w", err)
	}

	nodes, err := xmlquery.QueryAll(d.root, expr)
	if err != nil {
		return nil, fmt.Errorf("xpath query failed: %w", err)
	}

	result := make([]*Node, len(nodes))
	for i, n := range nodes {
		result[i] = &Node{node: n}
	}
	return result, nil
}

// XPathFirst executes an XPath query and returns the first matching node.
func (d *Document) XPathFirst(expr string) (*Node, error) {
	// Compile the expression to check for errors
	_, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid xpath: %w", err)
	}

	node, err := xmlquery.Query(d.root, expr)
	if err != nil {
		return nil, fmt.Errorf("xpath query failed: %w", err)
	}
	if node == nil {
		return nil, nil
	}
	return &Node{node: node}, nil
}

// Kind returns the node's classification.
func (n *Node) Kind() NodeKind {
	if n.node == nil {
		return KindOther
	}
	switch n.node.Type {
	case xmlquery.ElementNode:
		return KindElement
	case xmlquery.TextNode, xmlquery.CharDataNode:
		return KindText
	default:
		return KindOther
	}
}

// Name returns the element's local name, without any namespace prefix.
func (n *Node) Name() string {
	if n.node == nil {
		return ""
	}
	return n.node.Data
}

// Text returns the text content of the node and its descendants.
func (n *Node) Text() string {
	if n.node == nil {
		return ""
	}
	return n.node.InnerText()
}

// Children returns the child element nodes.
func (n *Node) Children() []*Node {
	if n.node == nil {
		return nil
	}

	var children []*Node
	for child := n.node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			children = append(children, &Node{node: child})
		}
	}
	return children
}

// ChildNodes returns all child nodes in document order, including text runs.
// Callers that interleave text with inline elements walk this list.
func (n *Node) ChildNodes() []*Node {
	if n.node == nil {
		return nil
	}

	var children []*Node
	for child := n.node.FirstChild; child != nil; child = child.NextSibling {
		children = append(children, &Node{node: child})
	}
	return children
}

// Attr returns the value of a specific attribute.
func (n *Node) Attr(name string) string {
	if n.node == nil {
		return ""
	}
	return n.node.SelectAttr(name)
}

// HasAttr reports whether the attribute is present on the node.
func (n *Node) HasAttr(name string) bool {
	if n.node == nil {
		return false
	}
	for _, attr := range n.node.Attr {
		if attr.Name.Local == name {
			return true
		}
	}
	return false
}
