package stroke

import (
	"fmt"

	"github.com/npillmayer/strokegeom"
	"gopkg.in/yaml.v3"
)

// A stroke is persisted as the list of its control points:
//
//	- [x, y, pressure, weight]
//	- [x, y, pressure, weight]
//
// The weight may be omitted and defaults to 0.5.

// MarshalYAML is part of interface yaml.Marshaler.
func (l *Line) MarshalYAML() (interface{}, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, c := range l.controls {
		var row yaml.Node
		if err := row.Encode([]float64{c.Point.X(), c.Point.Y(), c.Pressure, c.Weight}); err != nil {
			return nil, err
		}
		row.Style = yaml.FlowStyle
		seq.Content = append(seq.Content, &row)
	}
	return seq, nil
}

// UnmarshalYAML is part of interface yaml.Unmarshaler.
func (l *Line) UnmarshalYAML(value *yaml.Node) error {
	var rows [][]float64
	if err := value.Decode(&rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("%w: line %d", ErrEmptyStroke, value.Line)
	}
	cs := make([]Control, len(rows))
	for i, r := range rows {
		if len(r) < 3 || len(r) > 4 {
			return fmt.Errorf("control point %d (line %d): expected [x, y, pressure, weight], got %d values",
				i, value.Line, len(r))
		}
		if r[2] < 0 {
			return fmt.Errorf("%w: control point %d has pressure %g", ErrInvalidPressure, i, r[2])
		}
		cs[i] = C(strokegeom.P(r[0], r[1]), r[2])
		if len(r) == 4 {
			cs[i].Weight = r[3]
		}
	}
	*l = *New(cs...)
	return nil
}
