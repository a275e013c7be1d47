package document

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// Document is a parsed XML file supporting element lookups by tag name.
// It is the concrete form of the parsing collaborator the currency gate
// delegates to.
type Document struct {
	path string
	root *Element
}

// Element is a single XML element
type Element struct {
	// Name is the local element name, namespace prefix stripped
	Name     string
	Children []*Element

	text strings.Builder
}

// Text returns the character data directly inside the element
func (e *Element) Text() string {
	return e.text.String()
}

// Parse reads and parses the XML file at path
func Parse(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	root, err := decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &Document{path: path, root: root}, nil
}

// decode builds the element tree from an XML token stream
func decode(r io.Reader) (*Element, error) {
	decoder := xml.NewDecoder(r)

	var root *Element
	var stack []*Element

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			element := &Element{Name: t.Name.Local}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("multiple root elements")
				}
				root = element
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, element)
			}
			stack = append(stack, element)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("no root element")
	}
	return root, nil
}

// Path returns the file the document was parsed from
func (d *Document) Path() string {
	return d.path
}

// Root returns the document's root element
func (d *Document) Root() *Element {
	return d.root
}

// ElementsByTag returns all elements named tag in document order
func (d *Document) ElementsByTag(tag string) []*Element {
	var matched []*Element
	var walk func(e *Element)
	walk = func(e *Element) {
		if e.Name == tag {
			matched = append(matched, e)
		}
		for _, child := range e.Children {
			walk(child)
		}
	}
	walk(d.root)
	return matched
}

// FirstText returns the text content of the first element named tag.
// The second return value reports whether any such element exists.
func (d *Document) FirstText(tag string) (string, bool) {
	elements := d.ElementsByTag(tag)
	if len(elements) == 0 {
		return "", false
	}
	return elements[0].Text(), true
}
