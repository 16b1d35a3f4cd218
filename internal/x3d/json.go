package x3d

import (
	"encoding/json"
	"io"

	"github.com/vk/landmarkgrid/internal/scene"
)

// jsonObject relies on encoding/json sorting map keys for stable output.
type jsonObject = map[string]any

func encodeJSON(w io.Writer, s *scene.Scene, opts Options) error {
	children := []any{jsonObject{scene.KindTransform.String(): jsonNode(s, s.Root())}}
	for _, r := range s.Routes() {
		from, to, err := routeNames(s, r)
		if err != nil {
			return err
		}
		children = append(children, jsonObject{"ROUTE": jsonObject{
			"@fromNode":  from,
			"@fromField": r.SrcField,
			"@toNode":    to,
			"@toField":   r.DstField,
		}})
	}

	metaList := make([]any, 0, 2)
	for _, m := range metas(opts) {
		metaList = append(metaList, jsonObject{"@name": m.name, "@content": m.content})
	}

	doc := jsonObject{"X3D": jsonObject{
		"encoding": "UTF-8",
		"@profile": Profile,
		"@version": Version,
		"head": jsonObject{
			"component": []any{jsonObject{"@name": "Geometry2D", "@level": 1}},
			"meta":      metaList,
		},
		"Scene": jsonObject{"-children": children},
	}}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// jsonNode encodes a node body. Children are grouped under "-<containerField>";
// only the "children" field holds a list.
func jsonNode(s *scene.Scene, h scene.Handle) jsonObject {
	n, _ := s.Node(h)
	obj := jsonObject{}
	if n.Name != "" {
		obj["@DEF"] = n.Name
	}
	for _, f := range n.Fields {
		obj["@"+f.Name] = f.Value.JSON()
	}
	var list []any
	for _, c := range n.Children {
		cv, _ := s.Node(c)
		wrapped := jsonObject{cv.Kind.String(): jsonNode(s, c)}
		if field := cv.Kind.ContainerField(); field != "children" {
			obj["-"+field] = wrapped
			continue
		}
		list = append(list, wrapped)
	}
	if len(list) > 0 {
		obj["-children"] = list
	}
	return obj
}
