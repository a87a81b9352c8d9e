// Package svg reads SVG documents into the drawable elements converted by package outline.
package svg

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/outline"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
	"github.com/tdewolff/parse/v2/xml"
	"golang.org/x/net/html/charset"
)

// hidden are the containers whose content is never drawn directly.
var hidden = map[string]bool{
	"defs":     true,
	"clipPath": true,
	"mask":     true,
	"symbol":   true,
	"marker":   true,
	"pattern":  true,
}

// Document is an SVG document reduced to its drawable elements in document order.
type Document struct {
	Width, Height float64      // size of the root element in pixels, zero when unset
	ViewBox       outline.Rect // zero when unset
	Elements      []outline.Element
}

// Size returns the size of the drawing area in user units. It uses the viewBox, the width and height of the root element, or the bounds of the given paths, in that order of preference.
func (doc *Document) Size(paths []*outline.Path) outline.Rect {
	if 0.0 < doc.ViewBox.W && 0.0 < doc.ViewBox.H {
		return doc.ViewBox
	} else if 0.0 < doc.Width && 0.0 < doc.Height {
		return outline.Rect{X: 0.0, Y: 0.0, W: doc.Width, H: doc.Height}
	}

	var bounds outline.Rect
	for i, p := range paths {
		if i == 0 {
			bounds = p.Bounds()
		} else {
			bounds = bounds.Add(p.Bounds())
		}
	}
	return bounds
}

// Convert converts the elements of the document concurrently.
func (doc *Document) Convert(opts outline.Options) *outline.Result {
	return outline.ConvertParallel(doc.Elements, opts)
}

// Read reads an SVG document. Documents in other encodings than UTF-8 are decoded using the encoding of their XML declaration.
func Read(r io.Reader) (*Document, error) {
	r, err := decode(r)
	if err != nil {
		return nil, err
	}

	z := parse.NewInput(r)
	defer z.Restore()

	l := xml.NewLexer(z)
	doc := &Document{}
	root := false
	skip := []bool{} // per open element, whether it is hidden
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return nil, fmt.Errorf("svg: %w", l.Err())
			} else if !root {
				return nil, fmt.Errorf("svg: expected svg tag")
			}
			return doc, nil
		case xml.StartTagToken:
			attrs := map[string]string{}
			for {
				tt, _ = l.Next()
				if tt != xml.AttributeToken {
					break
				}
				val := l.AttrVal()
				if 2 <= len(val) && (val[0] == '"' || val[0] == '\'') {
					val = val[1 : len(val)-1]
				}
				attrs[localName(string(l.Text()))] = string(val)
			}

			tag := localName(string(data[1:]))
			hide := hidden[tag] || 0 < len(skip) && skip[len(skip)-1]
			if tag == "svg" && !root {
				root = true
				if err := doc.setRoot(attrs); err != nil {
					return nil, fmt.Errorf("svg: %w", err)
				}
			} else if !hide && outline.IsDrawable(tag) {
				doc.Elements = append(doc.Elements, outline.Element{Tag: tag, Attrs: attrs})
			}
			if tt != xml.StartTagCloseVoidToken {
				skip = append(skip, hide)
			}
		case xml.EndTagToken:
			if 0 < len(skip) {
				skip = skip[:len(skip)-1]
			}
		}
	}
}

func (doc *Document) setRoot(attrs map[string]string) error {
	if v, ok := attrs["viewBox"]; ok {
		vals := outline.Tokenize(v)
		if len(vals) != 4 {
			return fmt.Errorf("bad viewBox: %s", v)
		}
		doc.ViewBox = outline.Rect{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]}
	}
	var err error
	if doc.Width, err = parseDimension(attrs["width"], doc.ViewBox.W); err != nil {
		return err
	}
	if doc.Height, err = parseDimension(attrs["height"], doc.ViewBox.H); err != nil {
		return err
	}
	return nil
}

// parseDimension converts a length to pixels at 96 DPI. Percentages are relative to parent.
func parseDimension(v string, parent float64) (float64, error) {
	v = strings.TrimSpace(v)
	if len(v) == 0 {
		return 0.0, nil
	}

	nn, _ := parse.Dimension([]byte(v))
	num, n := strconv.ParseFloat([]byte(v[:nn]))
	if n == 0 || n != nn {
		return 0.0, fmt.Errorf("bad dimension: %s", v)
	}

	dim := v[nn:]
	switch strings.ToLower(dim) {
	case "cm":
		return num * 10.0 * 96.0 / 25.4, nil
	case "mm":
		return num * 96.0 / 25.4, nil
	case "q":
		return num * 0.25 * 96.0 / 25.4, nil
	case "in":
		return num * 96.0, nil
	case "pc":
		return num * 96.0 / 6.0, nil
	case "pt":
		return num * 96.0 / 72.0, nil
	case "", "px":
		return num, nil
	case "%":
		return num * parent / 100.0, nil
	}
	return 0.0, fmt.Errorf("unknown dimension: %s", dim)
}

// localName strips the namespace prefix of a tag or attribute name.
func localName(name string) string {
	if i := strings.IndexByte(name, ':'); i != -1 && !strings.HasPrefix(name, "xmlns") && !strings.HasPrefix(name, "xlink") {
		return name[i+1:]
	}
	return name
}

// decode wraps r in a decoder when the XML declaration names an encoding other than UTF-8.
func decode(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(1024)
	label := encodingLabel(head)
	if label == "" || strings.EqualFold(label, "utf-8") || strings.EqualFold(label, "utf8") {
		return br, nil
	}
	dr, err := charset.NewReaderLabel(label, br)
	if err != nil {
		return nil, fmt.Errorf("svg: %w", err)
	}
	return dr, nil
}

// encodingLabel returns the encoding of the XML declaration at the start of head.
func encodingLabel(head []byte) string {
	head = bytes.TrimLeft(head, "\xef\xbb\xbf \t\r\n")
	l := xml.NewLexer(parse.NewInputBytes(append([]byte{}, head...)))
	if tt, data := l.Next(); tt != xml.StartTagPIToken || string(data) != "<?xml" {
		return ""
	}
	for {
		tt, _ := l.Next()
		if tt != xml.AttributeToken {
			return ""
		} else if string(l.Text()) == "encoding" {
			return strings.Trim(string(l.AttrVal()), "\"'")
		}
	}
}
