package x3d

import (
	"encoding/xml"
	"io"

	"github.com/vk/landmarkgrid/internal/scene"
)

const doctype = `DOCTYPE X3D PUBLIC "ISO//Web3D//DTD X3D 3.3//EN" "https://www.web3d.org/specifications/x3d-3.3.dtd"`

func name(local string) xml.Name { return xml.Name{Local: local} }

func attr(n, v string) xml.Attr { return xml.Attr{Name: name(n), Value: v} }

func encodeXML(w io.Writer, s *scene.Scene, opts Options) error {
	// Routes are resolved first so a bad one fails before anything is written.
	routes := s.Routes()
	routeAttrs := make([][]xml.Attr, len(routes))
	for i, r := range routes {
		from, to, err := routeNames(s, r)
		if err != nil {
			return err
		}
		routeAttrs[i] = []xml.Attr{
			attr("fromNode", from), attr("fromField", r.SrcField),
			attr("toNode", to), attr("toField", r.DstField),
		}
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	tokens := []xml.Token{
		xml.ProcInst{Target: "xml", Inst: []byte(`version="1.0" encoding="UTF-8"`)},
		xml.CharData("\n"),
		xml.Directive(doctype),
		xml.CharData("\n"),
		xml.StartElement{Name: name("X3D"), Attr: []xml.Attr{attr("profile", Profile), attr("version", Version)}},
		xml.StartElement{Name: name("head")},
		xml.StartElement{Name: name("component"), Attr: []xml.Attr{attr("name", "Geometry2D"), attr("level", "1")}},
		xml.EndElement{Name: name("component")},
	}
	for _, m := range metas(opts) {
		tokens = append(tokens,
			xml.StartElement{Name: name("meta"), Attr: []xml.Attr{attr("name", m.name), attr("content", m.content)}},
			xml.EndElement{Name: name("meta")},
		)
	}
	tokens = append(tokens,
		xml.EndElement{Name: name("head")},
		xml.StartElement{Name: name("Scene")},
	)
	if err := encodeTokens(enc, tokens); err != nil {
		return err
	}

	if err := encodeNode(enc, s, s.Root()); err != nil {
		return err
	}
	for _, a := range routeAttrs {
		if err := encodeTokens(enc, []xml.Token{
			xml.StartElement{Name: name("ROUTE"), Attr: a},
			xml.EndElement{Name: name("ROUTE")},
		}); err != nil {
			return err
		}
	}

	if err := encodeTokens(enc, []xml.Token{
		xml.EndElement{Name: name("Scene")},
		xml.EndElement{Name: name("X3D")},
	}); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func encodeTokens(enc *xml.Encoder, tokens []xml.Token) error {
	for _, t := range tokens {
		if err := enc.EncodeToken(t); err != nil {
			return err
		}
	}
	return nil
}

func encodeNode(enc *xml.Encoder, s *scene.Scene, h scene.Handle) error {
	n, _ := s.Node(h)
	start := xml.StartElement{Name: name(n.Kind.String())}
	if n.Name != "" {
		start.Attr = append(start.Attr, attr("DEF", n.Name))
	}
	for _, f := range n.Fields {
		start.Attr = append(start.Attr, attr(f.Name, f.Value.String()))
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := encodeNode(enc, s, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
