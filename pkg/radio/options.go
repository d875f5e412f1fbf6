package radio

import (
	"strconv"
	"sync/atomic"
)

// LabelPosition places a button label before or after the control.
// The zero value means unset and defers to the group.
type LabelPosition string

const (
	LabelBefore LabelPosition = "before"
	LabelAfter  LabelPosition = "after"
)

// Palette is a theme color name. The zero value means unset.
type Palette string

const (
	PalettePrimary Palette = "primary"
	PaletteAccent  Palette = "accent"
	PaletteWarn    Palette = "warn"
)

// Valid reports whether p names a known palette.
func (p Palette) Valid() bool {
	switch p {
	case PalettePrimary, PaletteAccent, PaletteWarn:
		return true
	}
	return false
}

// Defaults holds provider-supplied fallbacks consulted after the group.
type Defaults struct {
	Color Palette
}

// DefaultOptions returns the built-in provider defaults.
func DefaultOptions() Defaults {
	return Defaults{Color: PaletteAccent}
}

// Resolve returns the first non-zero value of local, group, provider and
// fallback. Button property getters call it on every read so that group
// changes are seen immediately by buttons without a local override.
func Resolve[V comparable](local, group, provider, fallback V) V {
	var zero V
	switch {
	case local != zero:
		return local
	case group != zero:
		return group
	case provider != zero:
		return provider
	}
	return fallback
}

var nextUniqueID atomic.Int64

func newUniqueID() string {
	return "radio-" + strconv.FormatInt(nextUniqueID.Add(1), 10)
}

// Option configures a [Button] at construction.
type Option func(*buttonOptions)

type buttonOptions struct {
	id            *string
	name          string
	color         Palette
	labelPosition LabelPosition
	disabled      bool
	required      bool
	defaults      *Defaults
	onRefresh     func()
}

// WithID overrides the generated unique id.
func WithID(id string) Option {
	return func(o *buttonOptions) { o.id = &id }
}

// WithName sets a local name overriding the group name.
func WithName(name string) Option {
	return func(o *buttonOptions) { o.name = name }
}

// WithColor sets a local palette overriding group and provider defaults.
func WithColor(color Palette) Option {
	return func(o *buttonOptions) { o.color = color }
}

// WithLabelPosition sets a local label position overriding the group.
func WithLabelPosition(pos LabelPosition) Option {
	return func(o *buttonOptions) { o.labelPosition = pos }
}

// Disabled creates the button disabled.
func Disabled() Option {
	return func(o *buttonOptions) { o.disabled = true }
}

// Required creates the button required.
func Required() Option {
	return func(o *buttonOptions) { o.required = true }
}

// WithDefaults supplies provider defaults for property fallback.
func WithDefaults(d Defaults) Option {
	return func(o *buttonOptions) { o.defaults = &d }
}

// OnRefresh registers a hook called whenever the button needs re-rendering.
func OnRefresh(fn func()) Option {
	return func(o *buttonOptions) { o.onRefresh = fn }
}
