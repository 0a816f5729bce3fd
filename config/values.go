package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Flag is boolean which could be specified in YAML as a string: "yes", "On",
// "False", "1" and so on.
type Flag bool

func ParseFlag(s string) (Flag, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on", "y":
		return true, nil
	case "0", "false", "no", "off", "n", "":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean value %q", s)
}

func (f *Flag) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: boolean value expected", node.Line)
	}
	v, err := ParseFlag(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*f = v
	return nil
}

func (f Flag) MarshalYAML() (any, error) {
	return bool(f), nil
}

// RGBA is non-premultiplied color. In YAML it is either "r,g,b,a" string or
// list of 4 integers, every component in 0-255 range.
type RGBA [4]uint8

func (c RGBA) Color() color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

func (c RGBA) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", c[0], c[1], c[2], c[3])
}

// ParseRGBA parses "r,g,b,a" string.
func ParseRGBA(s string) (RGBA, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return RGBA{}, fmt.Errorf("color %q must have 4 components", s)
	}
	return rgbaFromStrings(parts)
}

func rgbaFromStrings(parts []string) (RGBA, error) {
	var c RGBA
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("color component %q must be in 0-255 range: %w", p, err)
		}
		c[i] = uint8(v)
	}
	return c, nil
}

func (c *RGBA) UnmarshalYAML(node *yaml.Node) error {
	var (
		v   RGBA
		err error
	)
	switch node.Kind {
	case yaml.ScalarNode:
		v, err = ParseRGBA(node.Value)
	case yaml.SequenceNode:
		if len(node.Content) != 4 {
			return fmt.Errorf("line %d: color must have 4 components", node.Line)
		}
		parts := make([]string, 0, 4)
		for _, n := range node.Content {
			parts = append(parts, n.Value)
		}
		v, err = rgbaFromStrings(parts)
	default:
		return fmt.Errorf("line %d: color must be a string or a list", node.Line)
	}
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = v
	return nil
}

func (c RGBA) MarshalYAML() (any, error) {
	return c.String(), nil
}

// EndLine is end mark entry. In YAML it could be plain scalar or a mapping
// with "value" (or "text") and optional "stacked" keys. Anything else is
// turned into its string form and has no placement preference.
type EndLine struct {
	Value   string
	Stacked *bool
}

func (l *EndLine) UnmarshalYAML(node *yaml.Node) error {
	*l = EndLine{}
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() != "!!null" {
			l.Value = node.Value
		}
		return nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			switch key.Value {
			case "value", "text":
				if val.Kind == yaml.ScalarNode && val.ShortTag() != "!!null" {
					l.Value = val.Value
				} else if val.Kind != yaml.ScalarNode {
					l.Value = coerce(val)
				}
			case "stacked":
				if val.Kind != yaml.ScalarNode {
					return fmt.Errorf("line %d: stacked: boolean value expected", val.Line)
				}
				if val.ShortTag() == "!!null" {
					continue
				}
				f, err := ParseFlag(val.Value)
				if err != nil {
					return fmt.Errorf("line %d: stacked: %w", val.Line, err)
				}
				b := bool(f)
				l.Stacked = &b
			}
		}
		return nil
	default:
		l.Value = coerce(node)
		return nil
	}
}

func (l EndLine) MarshalYAML() (any, error) {
	if l.Stacked == nil {
		return l.Value, nil
	}
	return struct {
		Value   string `yaml:"value"`
		Stacked bool   `yaml:"stacked"`
	}{l.Value, *l.Stacked}, nil
}

// EndLines keeps one entry per list item, null items included, so positions
// of following entries never shift.
type EndLines []EndLine

func (ls *EndLines) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() == "!!null" {
		*ls = nil
		return nil
	}
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: list of end lines expected", node.Line)
	}
	out := make(EndLines, len(node.Content))
	for i, item := range node.Content {
		if err := out[i].UnmarshalYAML(item); err != nil {
			return err
		}
	}
	*ls = out
	return nil
}

// coerce returns string form of arbitrary YAML value.
func coerce(node *yaml.Node) string {
	var v any
	if err := node.Decode(&v); err != nil {
		return node.Value
	}
	return fmt.Sprint(v)
}
