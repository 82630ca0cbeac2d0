package dispatch

import (
	"fmt"
	"html"
	"io"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Attr is a single HTML attribute.
type Attr struct {
	Key   string
	Value string
}

// AttrSet is an ordered list of attributes. In YAML it is written as a
// mapping whose key order is preserved.
type AttrSet []Attr

// UnmarshalYAML decodes a mapping node keeping the key order.
func (a *AttrSet) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: attributes must be a mapping", node.Line)
	}
	set := make(AttrSet, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		set = append(set, Attr{Key: node.Content[i].Value, Value: node.Content[i+1].Value})
	}
	*a = set
	return nil
}

// HeadTag describes elements placed in the document <head>.
// A tag with Text renders as <name>text</name>; otherwise one void element
// is rendered per attribute set, e.g. several <meta> tags.
type HeadTag struct {
	Name  string    `yaml:"name"`
	Text  string    `yaml:"text,omitempty"`
	Attrs []AttrSet `yaml:"attrs,omitempty"`
}

// HeadTags is the per-request collection of head tags. It starts with the
// dispatcher's static tags; renderers may append to it.
type HeadTags struct {
	mu   sync.Mutex
	tags []HeadTag
}

// NewHeadTags returns a collection seeded with a copy of tags.
func NewHeadTags(tags ...HeadTag) *HeadTags {
	return &HeadTags{tags: append([]HeadTag(nil), tags...)}
}

// Add appends tags.
func (h *HeadTags) Add(tags ...HeadTag) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tags = append(h.tags, tags...)
}

// Title appends a <title> element.
func (h *HeadTags) Title(title string) {
	h.Add(HeadTag{Name: "title", Text: title})
}

// Meta appends a <meta> element with the given attributes.
func (h *HeadTags) Meta(attrs ...Attr) {
	h.Add(HeadTag{Name: "meta", Attrs: []AttrSet{attrs}})
}

// Render writes every tag on its own line prefixed by indent.
// Double quotes are stripped from attribute values.
func (h *HeadTags) Render(indent string) string {
	h.mu.Lock()
	tags := append([]HeadTag(nil), h.tags...)
	h.mu.Unlock()

	var b strings.Builder
	for _, tag := range tags {
		if tag.Name == "" {
			continue
		}
		if tag.Text != "" {
			fmt.Fprintf(&b, "%s<%s>%s</%s>\n", indent, tag.Name, html.EscapeString(tag.Text), tag.Name)
			continue
		}
		for _, set := range tag.Attrs {
			b.WriteString(indent)
			b.WriteString("<")
			b.WriteString(tag.Name)
			for _, attr := range set {
				fmt.Fprintf(&b, ` %s="%s"`, attr.Key, strings.ReplaceAll(attr.Value, `"`, ""))
			}
			b.WriteString(">\n")
		}
	}
	return b.String()
}

// ParseHeadTagsYAML reads a list of head tags:
//
//	- name: title
//	  text: Pagekit
//	- name: meta
//	  attrs:
//	    - name: description
//	      content: Server rendered pages
//	    - name: viewport
//	      content: width=device-width, initial-scale=1
func ParseHeadTagsYAML(r io.Reader) ([]HeadTag, error) {
	var tags []HeadTag
	if err := yaml.NewDecoder(r).Decode(&tags); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "parse head tags")
	}
	return tags, nil
}
