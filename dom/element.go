// Package dom provides the DOM rendering surface: elements with mutable
// attributes, inline styles and HTML content. Entities with the DOM
// capability own one element each; the stage mirrors entity state into it
// every frame.
package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attr is a single element attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is a node in the element tree.
type Element struct {
	tag      string
	attrs    []Attr
	style    *CSSStyleDeclaration
	parent   *Element
	children []*Element

	// Parsed HTML content, set through SetInnerHTML.
	content []*html.Node
}

// NewElement creates a detached element with the given tag name.
func NewElement(tag string) *Element {
	e := &Element{tag: strings.ToLower(tag)}
	e.style = NewCSSStyleDeclaration(e)
	return e
}

// TagName returns the tag name in uppercase.
func (e *Element) TagName() string {
	return strings.ToUpper(e.tag)
}

// GetAttribute returns the value of the named attribute, or "" if absent.
func (e *Element) GetAttribute(name string) string {
	name = strings.ToLower(name)
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// HasAttribute reports whether the named attribute is present.
func (e *Element) HasAttribute(name string) bool {
	name = strings.ToLower(name)
	for _, a := range e.attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// SetAttribute sets an attribute, preserving first-set order.
func (e *Element) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	for i, a := range e.attrs {
		if a.Name == name {
			e.attrs[i].Value = value
			if name == "style" {
				e.style.refreshFromAttribute()
			}
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
	if name == "style" {
		e.style.refreshFromAttribute()
	}
}

// RemoveAttribute removes the named attribute if present.
func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	for i, a := range e.attrs {
		if a.Name == name {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			if name == "style" {
				e.style.refreshFromAttribute()
			}
			return
		}
	}
}

// setAttributeRaw sets an attribute without re-parsing the style object.
// Used by the style declaration when syncing itself to the attribute.
func (e *Element) setAttributeRaw(name, value string) {
	for i, a := range e.attrs {
		if a.Name == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
}

// Style returns the element's inline style declaration.
func (e *Element) Style() *CSSStyleDeclaration {
	return e.style
}

// AppendChild appends a child element, detaching it from any previous parent.
func (e *Element) AppendChild(child *Element) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
}

// RemoveChild removes a child element. Unknown children are ignored.
func (e *Element) RemoveChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Parent returns the parent element, or nil for a detached element.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns the child elements in append order.
func (e *Element) Children() []*Element {
	return e.children
}

// InnerHTML returns the serialized HTML content of the element.
func (e *Element) InnerHTML() string {
	var sb strings.Builder
	for _, n := range e.content {
		// Render to a strings.Builder cannot fail
		_ = html.Render(&sb, n)
	}
	for _, c := range e.children {
		sb.WriteString(c.OuterHTML())
	}
	return sb.String()
}

// SetInnerHTML replaces the element's HTML content with the parsed
// fragment. The markup is injected literally, as a browser would; callers
// that need escaping must escape before calling.
func (e *Element) SetInnerHTML(markup string) error {
	e.content = nil
	if markup == "" {
		return nil
	}

	contextNode := &html.Node{
		Type:     html.ElementNode,
		Data:     e.tag,
		DataAtom: atom.Lookup([]byte(e.tag)),
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), contextNode)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		// Detach from the parse context so Render sees free-standing nodes
		n.Parent = nil
		n.PrevSibling = nil
		n.NextSibling = nil
		e.content = append(e.content, n)
	}
	return nil
}

// TextContent returns the concatenated text of the element's content.
func (e *Element) TextContent() string {
	var sb strings.Builder
	for _, n := range e.content {
		collectText(n, &sb)
	}
	for _, c := range e.children {
		sb.WriteString(c.TextContent())
	}
	return sb.String()
}

// SetTextContent replaces the element's content with a single text node.
func (e *Element) SetTextContent(text string) {
	e.content = []*html.Node{{Type: html.TextNode, Data: text}}
}

// OuterHTML returns the serialized element including its own tag.
func (e *Element) OuterHTML() string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(e.tag)
	for _, a := range e.attrs {
		sb.WriteString(" ")
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(a.Value))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	sb.WriteString(e.InnerHTML())
	sb.WriteString("</")
	sb.WriteString(e.tag)
	sb.WriteString(">")
	return sb.String()
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
