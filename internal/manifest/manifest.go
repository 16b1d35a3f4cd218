// Package manifest writes the YAML index that accompanies a generated
// document: one entry per interactive cell with its asset, label, node
// identifiers and grid position.
package manifest

import (
	"bytes"
	"fmt"
	"io"

	"github.com/vk/landmarkgrid/internal/builder"
	"github.com/vk/landmarkgrid/internal/nodeid"
	"gopkg.in/yaml.v3"
)

// Manifest is the sidecar document.
type Manifest struct {
	Generator string  `yaml:"generator"`
	Document  string  `yaml:"document,omitempty"`
	Columns   int     `yaml:"columns"`
	Rows      int     `yaml:"rows"`
	Stats     Stats   `yaml:"stats"`
	Cells     []Entry `yaml:"cells"`
}

// Stats mirrors builder.Stats.
type Stats struct {
	Cells       int `yaml:"cells"`
	Routes      int `yaml:"routes"`
	RowLabels   int `yaml:"row_labels"`
	Identifiers int `yaml:"identifiers"`
}

// Entry describes one cell.
type Entry struct {
	Row      int        `yaml:"row"`
	Column   int        `yaml:"column"`
	Category string     `yaml:"category"`
	Asset    string     `yaml:"asset"`
	Label    string     `yaml:"label"`
	IDs      ChainIDs   `yaml:"ids"`
	Position [2]float64 `yaml:"position,flow"`
	Sentinel bool       `yaml:"sentinel,omitempty"`
}

// ChainIDs lists the registry names of a cell's chain.
type ChainIDs struct {
	Sensor    string `yaml:"sensor"`
	Selector  string `yaml:"selector"`
	Sequencer string `yaml:"sequencer"`
	Trigger   string `yaml:"trigger"`
}

// New builds a manifest from a build result. document is the path of the
// generated scene document, if any.
func New(generator, document string, columns, rows int, res *builder.Result) (*Manifest, error) {
	m := &Manifest{
		Generator: generator,
		Document:  document,
		Columns:   columns,
		Rows:      rows,
		Stats: Stats{
			Cells:       res.Stats.Cells,
			Routes:      res.Stats.Routes,
			RowLabels:   res.Stats.RowLabels,
			Identifiers: res.Stats.Identifiers,
		},
		Cells: make([]Entry, 0, len(res.Cells)),
	}
	for _, c := range res.Cells {
		ids, err := resolveIDs(c.Cell.Label, c.IDs)
		if err != nil {
			return nil, fmt.Errorf("manifest: cell %q: %w", c.Cell.Label, err)
		}
		m.Cells = append(m.Cells, Entry{
			Row:      c.Cell.Row,
			Column:   c.Cell.Column,
			Category: c.Cell.Category.Name,
			Asset:    c.Cell.Asset,
			Label:    c.Cell.Label,
			IDs:      ids,
			Position: [2]float64{c.Cell.Position.X, c.Cell.Position.Y},
			Sentinel: c.Cell.Category.Sentinel,
		})
	}
	return m, nil
}

// resolveIDs sorts a cell's identifiers into their roles. The sensor is the
// bare base derived from label; the others are told apart by suffix.
func resolveIDs(label string, ids []string) (ChainIDs, error) {
	var out ChainIDs
	base := nodeid.FromLabel(label)
	for _, id := range ids {
		if id == base {
			out.Sensor = id
			continue
		}
		addr, err := nodeid.Parse(id)
		if err != nil {
			return ChainIDs{}, err
		}
		if addr.Base != base {
			return ChainIDs{}, fmt.Errorf("identifier %q does not belong to base %q", id, base)
		}
		switch addr.Role {
		case nodeid.Selector:
			out.Selector = id
		case nodeid.Sequencer:
			out.Sequencer = id
		case nodeid.Trigger:
			out.Trigger = id
		}
	}
	if err := out.validate(); err != nil {
		return ChainIDs{}, err
	}
	return out, nil
}

// validate checks that every role is present and derived from the sensor's
// identifier.
func (c ChainIDs) validate() error {
	if c.Sensor == "" {
		return fmt.Errorf("sensor identifier is missing")
	}
	roles := []struct {
		role nodeid.Role
		id   string
	}{
		{nodeid.Selector, c.Selector},
		{nodeid.Sequencer, c.Sequencer},
		{nodeid.Trigger, c.Trigger},
	}
	for _, r := range roles {
		if r.id == "" {
			return fmt.Errorf("%s identifier is missing", r.role)
		}
		addr, err := nodeid.Parse(r.id)
		if err != nil {
			return err
		}
		if !addr.Equal(nodeid.New(c.Sensor, r.role)) {
			return fmt.Errorf("%s identifier %q does not match sensor %q", r.role, r.id, c.Sensor)
		}
	}
	return nil
}

// Encode writes m as YAML.
func (m *Manifest) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("manifest: encode: %w", err)
	}
	return enc.Close()
}

// Marshal returns m as YAML bytes.
func (m *Manifest) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Parse decodes a manifest and checks that every cell's identifiers form a
// consistent chain.
func Parse(data []byte) (*Manifest, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("manifest: payload is empty")
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}
	for i, e := range m.Cells {
		if err := e.IDs.validate(); err != nil {
			return nil, fmt.Errorf("manifest: cell %d (%q): %w", i, e.Label, err)
		}
	}
	return &m, nil
}
