package autolayout

import (
	"github.com/matzehuels/autoframe/pkg/errors"
)

// Overrides are explicit user choices that replace computed values.
// A nil field means "use the computed value".
type Overrides struct {
	ItemSpacing *int             `json:"itemSpacing,omitempty" toml:"item_spacing,omitempty"`
	Padding     *PaddingOverride `json:"padding,omitempty" toml:"padding,omitempty"`
}

// PaddingOverride replaces any subset of the four padding sides.
type PaddingOverride struct {
	Top    *int `json:"top,omitempty" toml:"top,omitempty"`
	Right  *int `json:"right,omitempty" toml:"right,omitempty"`
	Bottom *int `json:"bottom,omitempty" toml:"bottom,omitempty"`
	Left   *int `json:"left,omitempty" toml:"left,omitempty"`
}

// IsZero reports whether no side is overridden.
func (p *PaddingOverride) IsZero() bool {
	return p == nil || (p.Top == nil && p.Right == nil && p.Bottom == nil && p.Left == nil)
}

// apply returns base with the present sides replaced.
func (p *PaddingOverride) apply(base Padding) Padding {
	if p == nil {
		return base
	}
	if p.Top != nil {
		base.Top = *p.Top
	}
	if p.Right != nil {
		base.Right = *p.Right
	}
	if p.Bottom != nil {
		base.Bottom = *p.Bottom
	}
	if p.Left != nil {
		base.Left = *p.Left
	}
	return base
}

// IsZero reports whether nothing is overridden.
func (o Overrides) IsZero() bool {
	return o.ItemSpacing == nil && o.Padding.IsZero()
}

// WithDefaults fills every field o leaves unset from fallback, side by side
// for padding. o always wins where both are set.
func (o Overrides) WithDefaults(fallback Overrides) Overrides {
	out := o
	if out.ItemSpacing == nil {
		out.ItemSpacing = fallback.ItemSpacing
	}
	if fallback.Padding.IsZero() {
		return out
	}
	merged := PaddingOverride{}
	if o.Padding != nil {
		merged = *o.Padding
	}
	if merged.Top == nil {
		merged.Top = fallback.Padding.Top
	}
	if merged.Right == nil {
		merged.Right = fallback.Padding.Right
	}
	if merged.Bottom == nil {
		merged.Bottom = fallback.Padding.Bottom
	}
	if merged.Left == nil {
		merged.Left = fallback.Padding.Left
	}
	out.Padding = &merged
	return out
}

// Config is the auto-layout configuration to write onto a container and its
// children.
type Config struct {
	LayoutMode    Direction  `json:"layout_mode"`
	PrimarySizing SizingMode `json:"primary_axis_sizing_mode"`
	CounterSizing SizingMode `json:"counter_axis_sizing_mode"`
	ItemSpacing   int        `json:"item_spacing"`
	Padding       Padding    `json:"padding"`
	ChildAlign    Align      `json:"child_align"`
}

// Resolve turns a measured analysis into an applicable configuration.
//
// A [Mixed] analysis is rejected with an ErrCodeMixedLayout error. Otherwise
// the container hugs its contents on both axes, spacing and padding are
// clamped to zero, and children stretch across the cross axis.
//
// An ItemSpacing override replaces the spacing verbatim, without clamping. A
// padding override replaces only the sides it sets; the rest keep their
// clamped computed values.
func Resolve(a Analysis, o Overrides) (Config, error) {
	if !a.Direction.IsAxis() {
		return Config{}, errors.New(errors.ErrCodeMixedLayout, "could not determine a consistent layout pattern")
	}
	cfg := Config{
		LayoutMode:    a.Direction,
		PrimarySizing: SizingAuto,
		CounterSizing: SizingAuto,
		ItemSpacing:   max(0, a.Spacing),
		Padding:       a.Paddings.Clamped(),
		ChildAlign:    AlignStretch,
	}
	if o.ItemSpacing != nil {
		cfg.ItemSpacing = *o.ItemSpacing
	}
	cfg.Padding = o.Padding.apply(cfg.Padding)
	return cfg, nil
}
