package features

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
)

// Element names of the structural nodes in the tagger's descriptor schema.
const (
	elemGenerators = "generators"
	elemCache      = "cache"
	elemWindow     = "window"
)

// XML serializes the descriptor to the external tagger's configuration
// format: a "generators" root holding one "cache" node holding one
// "generators" node with the ordered generator list. Node nesting is the
// compatibility contract; indentation is cosmetic.
func (d *Descriptor) XML() (string, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	if err := encodeNode(enc, d.Root); err != nil {
		return "", fmt.Errorf("serialize descriptor: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return "", fmt.Errorf("serialize descriptor: %w", err)
	}
	return buf.String(), nil
}

func encodeNode(enc *xml.Encoder, n Node) error {
	switch v := n.(type) {
	case Aggregate:
		start := xml.StartElement{Name: xml.Name{Local: elemGenerators}}
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		for _, child := range v.Children {
			if err := encodeNode(enc, child); err != nil {
				return err
			}
		}
		return enc.EncodeToken(start.End())
	case Cache:
		start := xml.StartElement{Name: xml.Name{Local: elemCache}}
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		if err := encodeNode(enc, v.Child); err != nil {
			return err
		}
		return enc.EncodeToken(start.End())
	case Window:
		start := xml.StartElement{
			Name: xml.Name{Local: elemWindow},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "prevLength"}, Value: strconv.Itoa(v.PrevLength)},
				{Name: xml.Name{Local: "nextLength"}, Value: strconv.Itoa(v.NextLength)},
			},
		}
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		if err := encodeNode(enc, v.Child); err != nil {
			return err
		}
		return enc.EncodeToken(start.End())
	case Leaf:
		attrs := make([]xml.Attr, len(v.Attrs))
		for i, a := range v.Attrs {
			attrs[i] = xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value}
		}
		start := xml.StartElement{Name: xml.Name{Local: v.Kind}, Attr: attrs}
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		return enc.EncodeToken(start.End())
	default:
		return fmt.Errorf("unknown node type %T", n)
	}
}
