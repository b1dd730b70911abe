// Package browsertest provides an in-memory page for exercising page objects
// without a browser, in the spirit of net/http/httptest.
//
// A page is a tree of Nodes. Children are keyed by the description of the
// query that finds them (see Role, Label, Placeholder, Text and plain CSS
// selectors), so a locator built from the same query resolves to them.
package browsertest

import (
	"strings"

	"practice_automation/domain/entities"
)

// Node is one element of the fake document
type Node struct {
	Text   string
	Value  string
	Hidden bool

	Children map[string][]*Node
	Frames   map[string]*Node

	// OnClick runs when the node is clicked
	OnClick func(p *Page)
}

// NewNode returns a visible node with text
func NewNode(text string) *Node {
	return &Node{Text: text}
}

// Add appends children under key and returns n for chaining
func (n *Node) Add(key string, children ...*Node) *Node {
	if n.Children == nil {
		n.Children = make(map[string][]*Node)
	}
	n.Children[key] = append(n.Children[key], children...)
	return n
}

// Set replaces the children under key
func (n *Node) Set(key string, children ...*Node) *Node {
	if n.Children == nil {
		n.Children = make(map[string][]*Node)
	}
	if len(children) == 0 {
		delete(n.Children, key)
		return n
	}
	n.Children[key] = children
	return n
}

// AddFrame attaches doc as the document of the iframe matching selector
func (n *Node) AddFrame(selector string, doc *Node) *Node {
	if n.Frames == nil {
		n.Frames = make(map[string]*Node)
	}
	n.Frames[selector] = doc
	return n
}

// Clicked sets the click hook and returns n
func (n *Node) Clicked(fn func(p *Page)) *Node {
	n.OnClick = fn
	return n
}

// Role is the child key for a role query
func Role(role, name string) string {
	return entities.Query{Strategy: entities.StrategyRole, Role: role, Value: name}.String()
}

// Label is the child key for a label query
func Label(text string) string {
	return entities.Query{Strategy: entities.StrategyLabel, Value: text}.String()
}

// Placeholder is the child key for a placeholder query
func Placeholder(text string) string {
	return entities.Query{Strategy: entities.StrategyPlaceholder, Value: text}.String()
}

// Text is the child key for a visible text query
func Text(text string) string {
	return entities.Query{Strategy: entities.StrategyText, Value: text}.String()
}

// Row builds a table row node whose cells are found with "td"
func Row(cells ...string) *Node {
	row := NewNode(strings.Join(cells, "\t"))
	for _, c := range cells {
		row.Add("td", NewNode(c))
	}
	return row
}

func (n *Node) visible() bool {
	return n != nil && !n.Hidden
}
