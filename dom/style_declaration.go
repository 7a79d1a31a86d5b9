package dom

import "strings"

// CSSStyleDeclaration represents an element's inline style. Properties are
// kept in first-set order and mirrored into the element's style attribute.
type CSSStyleDeclaration struct {
	element      *Element
	declarations map[string]string
	order        []string
}

// NewCSSStyleDeclaration creates a style declaration for an element.
func NewCSSStyleDeclaration(element *Element) *CSSStyleDeclaration {
	sd := &CSSStyleDeclaration{
		element:      element,
		declarations: make(map[string]string),
	}
	if element != nil && element.HasAttribute("style") {
		sd.parse(element.GetAttribute("style"))
	}
	return sd
}

// GetPropertyValue returns the value of a CSS property, or "" if unset.
func (sd *CSSStyleDeclaration) GetPropertyValue(property string) string {
	return sd.declarations[normalizeCSSPropertyName(property)]
}

// SetProperty sets a CSS property. An empty value removes the property.
func (sd *CSSStyleDeclaration) SetProperty(property, value string) {
	property = normalizeCSSPropertyName(property)
	if property == "" {
		return
	}
	if value == "" {
		sd.RemoveProperty(property)
		return
	}
	if _, exists := sd.declarations[property]; !exists {
		sd.order = append(sd.order, property)
	}
	sd.declarations[property] = value
	sd.syncToAttribute()
}

// RemoveProperty removes a CSS property and returns its old value.
func (sd *CSSStyleDeclaration) RemoveProperty(property string) string {
	property = normalizeCSSPropertyName(property)
	old, ok := sd.declarations[property]
	if !ok {
		return ""
	}
	delete(sd.declarations, property)
	for i, p := range sd.order {
		if p == property {
			sd.order = append(sd.order[:i], sd.order[i+1:]...)
			break
		}
	}
	sd.syncToAttribute()
	return old
}

// Length returns the number of properties set.
func (sd *CSSStyleDeclaration) Length() int {
	return len(sd.declarations)
}

// Item returns the property name at the given index.
func (sd *CSSStyleDeclaration) Item(index int) string {
	if index < 0 || index >= len(sd.order) {
		return ""
	}
	return sd.order[index]
}

// CSSText returns the textual representation of the declaration block.
func (sd *CSSStyleDeclaration) CSSText() string {
	var parts []string
	for _, prop := range sd.order {
		if v, ok := sd.declarations[prop]; ok {
			parts = append(parts, prop+": "+v)
		}
	}
	return strings.Join(parts, "; ")
}

// SetCSSText replaces all properties from a CSS text string.
func (sd *CSSStyleDeclaration) SetCSSText(cssText string) {
	sd.declarations = make(map[string]string)
	sd.order = nil
	sd.parse(cssText)
	sd.syncToAttribute()
}

// parse parses a style attribute string into declarations.
func (sd *CSSStyleDeclaration) parse(styleAttr string) {
	for _, part := range strings.Split(styleAttr, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		colonIdx := strings.Index(part, ":")
		if colonIdx == -1 {
			continue
		}
		property := normalizeCSSPropertyName(strings.TrimSpace(part[:colonIdx]))
		value := strings.TrimSpace(part[colonIdx+1:])
		if property == "" || value == "" {
			continue
		}
		if _, exists := sd.declarations[property]; !exists {
			sd.order = append(sd.order, property)
		}
		sd.declarations[property] = value
	}
}

// syncToAttribute mirrors the declarations into the element's style attribute.
func (sd *CSSStyleDeclaration) syncToAttribute() {
	if sd.element == nil {
		return
	}
	cssText := sd.CSSText()
	if cssText == "" {
		sd.element.RemoveAttribute("style")
		return
	}
	sd.element.setAttributeRaw("style", cssText)
}

// refreshFromAttribute reloads declarations after an external attribute change.
func (sd *CSSStyleDeclaration) refreshFromAttribute() {
	sd.declarations = make(map[string]string)
	sd.order = nil
	if sd.element != nil && sd.element.HasAttribute("style") {
		sd.parse(sd.element.GetAttribute("style"))
	}
}

// normalizeCSSPropertyName converts camelCase to kebab-case and lowercases.
// Already-hyphenated names (including vendor prefixes like
// "-webkit-user-select") are lowercased as-is.
func normalizeCSSPropertyName(name string) string {
	if name == "" {
		return ""
	}
	if strings.Contains(name, "-") {
		return strings.ToLower(name)
	}

	var result strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				result.WriteByte('-')
			}
			result.WriteByte(byte(r - 'A' + 'a'))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
