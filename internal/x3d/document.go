package x3d

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/vk/landmarkgrid/internal/scene"
)

// Format selects the document encoding.
type Format string

const (
	FormatXML  Format = "xml"
	FormatJSON Format = "json"
)

// Document header values.
const (
	Version   = "3.3"
	Profile   = "Immersive"
	Generator = "landmarkgrid"
)

// ErrNotFrozen is returned when asked to encode a scene still under
// construction.
var ErrNotFrozen = errors.New("x3d: scene is not frozen")

// Options tweak the document header.
type Options struct {
	// Title is written as a meta element when set.
	Title string
}

// Encode writes s to w in the given format.
func Encode(w io.Writer, s *scene.Scene, format Format, opts Options) error {
	if !s.Frozen() {
		return ErrNotFrozen
	}
	switch format {
	case FormatXML, "":
		return encodeXML(w, s, opts)
	case FormatJSON:
		return encodeJSON(w, s, opts)
	default:
		return fmt.Errorf("x3d: unknown format %q", format)
	}
}

// Marshal returns the encoded document.
func Marshal(s *scene.Scene, format Format, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, s, format, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type meta struct{ name, content string }

func metas(opts Options) []meta {
	m := []meta{{"generator", Generator}}
	if opts.Title != "" {
		m = append(m, meta{"title", opts.Title})
	}
	return m
}

// routeNames resolves the DEF names a ROUTE refers to.
func routeNames(s *scene.Scene, r scene.Route) (from, to string, err error) {
	src, _ := s.Node(r.Src)
	dst, _ := s.Node(r.Dst)
	if src.Name == "" || dst.Name == "" {
		return "", "", fmt.Errorf("x3d: route %s.%s -> %s.%s joins an unnamed node",
			src.Kind, r.SrcField, dst.Kind, r.DstField)
	}
	return src.Name, dst.Name, nil
}
