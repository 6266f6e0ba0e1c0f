package fx

import (
	"fmt"
	"io"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// Styles is a named set of effects, applied with Context.Style.
type Styles map[string]*Effect

// styleSheet is the TOML layout read by LoadStyles:
//
//	[style.faded]
//	alpha = 0.4
//	blend = "multiply"
//
//	[style.lifted.shadow]
//	color = "#00000080"
//	blur = 6
//	offset = [4, 4]
type styleSheet struct {
	Style map[string]styleEntry `toml:"style"`
}

type styleEntry struct {
	Alpha  *float64     `toml:"alpha"`
	Blend  string       `toml:"blend"`
	Shadow *shadowEntry `toml:"shadow"`
}

type shadowEntry struct {
	Color  any       `toml:"color"`
	Blur   *float64  `toml:"blur"`
	Offset []float64 `toml:"offset"`
}

// LoadStyles reads a TOML style sheet. Unknown keys are rejected.
func LoadStyles(r io.Reader) (Styles, error) {
	var sheet styleSheet
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&sheet); err != nil {
		return nil, fmt.Errorf("fx: decode style sheet: %w", err)
	}

	styles := make(Styles, len(sheet.Style))
	for name, entry := range sheet.Style {
		e, err := entry.effect()
		if err != nil {
			return nil, fmt.Errorf("fx: style %q: %w", name, err)
		}
		styles[name] = e
	}
	return styles, nil
}

func (s styleEntry) effect() (*Effect, error) {
	var opts []EffectOption
	if s.Alpha != nil {
		opts = append(opts, WithAlpha(*s.Alpha))
	}
	if s.Blend != "" {
		opts = append(opts, WithBlend(s.Blend))
	}
	if s.Shadow != nil {
		sh, err := s.Shadow.shadow()
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithShadow(sh))
	}
	return NewEffect(opts...)
}

func (s shadowEntry) shadow() (*Shadow, error) {
	c := Black
	if s.Color != nil {
		var err error
		if c, err = ParseColor(s.Color); err != nil {
			return nil, err
		}
	}
	var opts []ShadowOption
	if s.Blur != nil {
		opts = append(opts, WithBlur(*s.Blur))
	}
	if s.Offset != nil {
		off, err := parseOffset(s.Offset)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithOffset(off.X, off.Y))
	}
	return NewShadow(c, opts...)
}

// Names returns the style names in sorted order.
func (s Styles) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a copy of the named style.
func (s Styles) Lookup(name string) (*Effect, error) {
	e, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return e.Copy(), nil
}
