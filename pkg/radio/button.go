package radio

// Button is one selectable option. It may belong to a [Group], fixed at
// construction, or stand alone.
//
// Label position, color and name are overridable: each getter returns the
// local setting if set, else the group's, else the provider default, else a
// built-in default, evaluated on every read.
type Button[T comparable] struct {
	id       string
	uniqueID string
	value    T
	checked  bool
	disabled bool
	required bool

	labelPosition LabelPosition
	color         Palette
	name          string
	defaults      *Defaults

	disableRipple   bool
	ariaLabel       string
	ariaLabelledBy  string
	ariaDescribedBy string

	group      *Group[T]
	changes    listenerSet[Change[T]]
	generation int
	onRefresh  func()
}

// NewButton creates a button with the given value. If group is non-nil the
// button registers itself as a member and immediately takes its checked
// state from the group value.
func NewButton[T comparable](group *Group[T], value T, opts ...Option) *Button[T] {
	var o buttonOptions
	for _, opt := range opts {
		opt(&o)
	}
	b := &Button[T]{
		uniqueID:      newUniqueID(),
		value:         value,
		disabled:      o.disabled,
		required:      o.required,
		labelPosition: o.labelPosition,
		color:         o.color,
		name:          o.name,
		defaults:      o.defaults,
		group:         group,
		onRefresh:     o.onRefresh,
	}
	b.id = b.uniqueID
	if o.id != nil {
		b.id = *o.id
	}
	if group != nil {
		group.members.Register(b)
	}
	return b
}

// Group returns the group the button was created for, or nil.
func (b *Button[T]) Group() *Group[T] { return b.group }

// Detach removes the button from its group's membership, as a renderer does
// when the button leaves the tree. It is a no-op for standalone buttons.
func (b *Button[T]) Detach() {
	if b.group != nil {
		b.group.members.Unregister(b)
	}
}

// ID returns the button id.
func (b *Button[T]) ID() string { return b.id }

// SetID overrides the button id.
func (b *Button[T]) SetID(id string) { b.id = id }

// InputID returns the id of the underlying input control.
func (b *Button[T]) InputID() string {
	id := b.id
	if id == "" {
		id = b.uniqueID
	}
	return id + "-input"
}

// Value returns the button value.
func (b *Button[T]) Value() T { return b.value }

// SetValue changes the button value. Inside a group the button then checks
// or unchecks itself according to the group value; it never pushes the new
// value up to the group.
func (b *Button[T]) SetValue(v T) {
	if b.value == v {
		return
	}
	b.value = v
	if b.group == nil || !b.group.members.Contains(b) {
		return
	}
	matched := b.group.matches(v)
	b.syncChecked(matched)
	b.group.memberValueChanged(b, matched)
}

// Checked reports whether the button is checked.
func (b *Button[T]) Checked() bool { return b.checked }

// SetChecked changes the checked state as a user interaction would.
//
// Checking a group member selects it in the group, unchecking the others;
// unchecking the selected member clears the group selection but keeps the
// group value. The button change event fires on every actual change, with
// or without a group.
func (b *Button[T]) SetChecked(checked bool) {
	if b.checked == checked {
		return
	}
	b.checked = checked
	b.updateGroupSelection()
	b.changes.emit("radio.Button.change", Change[T]{Source: b, Value: b.value})
	b.markForCheck()
}

func (b *Button[T]) updateGroupSelection() {
	g := b.group
	if g == nil || !g.members.Contains(b) {
		return
	}
	switch {
	case b.checked && g.selected != b:
		g.selectButton(b, true)
	case !b.checked && g.selected == b:
		g.release(b)
	}
}

// syncChecked is the write path used by the group. It neither reports back
// to the group nor emits a change event.
func (b *Button[T]) syncChecked(checked bool) {
	if b.checked == checked {
		return
	}
	b.checked = checked
	b.markForCheck()
}

// OnInputToggle mirrors the checked state observed on the underlying input.
func (b *Button[T]) OnInputToggle(checked bool) { b.SetChecked(checked) }

// OnFocus marks the group as touched.
func (b *Button[T]) OnFocus() {
	if b.group != nil {
		b.group.Touch()
	}
}

// OnChange subscribes fn to the button change event and returns an
// unsubscribe func.
func (b *Button[T]) OnChange(fn func(Change[T])) func() {
	return b.changes.add(fn)
}

// Disabled reports whether the button is disabled.
func (b *Button[T]) Disabled() bool { return b.disabled }

// SetDisabled enables or disables the button.
func (b *Button[T]) SetDisabled(disabled bool) {
	if b.disabled == disabled {
		return
	}
	b.disabled = disabled
	b.markForCheck()
}

// Required reports whether a selection is required.
func (b *Button[T]) Required() bool { return b.required }

// SetRequired sets whether a selection is required.
func (b *Button[T]) SetRequired(required bool) {
	if b.required == required {
		return
	}
	b.required = required
	b.markForCheck()
}

// LabelPosition returns the effective label position.
func (b *Button[T]) LabelPosition() LabelPosition {
	var group LabelPosition
	if b.group != nil {
		group = b.group.labelPosition
	}
	return Resolve(b.labelPosition, group, "", LabelAfter)
}

// SetLabelPosition sets the local label position. Empty defers to the group.
func (b *Button[T]) SetLabelPosition(pos LabelPosition) { b.labelPosition = pos }

// Color returns the effective palette.
func (b *Button[T]) Color() Palette {
	var group, provider Palette
	if b.group != nil {
		group = b.group.color
	}
	if b.defaults != nil {
		provider = b.defaults.Color
	}
	return Resolve(b.color, group, provider, PaletteAccent)
}

// SetColor sets the local palette. Empty defers to group and provider.
func (b *Button[T]) SetColor(color Palette) { b.color = color }

// Name returns the effective name.
func (b *Button[T]) Name() string {
	var group string
	if b.group != nil {
		group = b.group.name
	}
	return Resolve(b.name, group, "", "")
}

// SetName sets the local name. Empty defers to the group.
func (b *Button[T]) SetName(name string) { b.name = name }

// DisableRipple reports whether the touch ripple is turned off.
func (b *Button[T]) DisableRipple() bool { return b.disableRipple }

// SetDisableRipple turns the touch ripple off or on.
func (b *Button[T]) SetDisableRipple(disabled bool) { b.disableRipple = disabled }

// AriaLabel returns the accessible label.
func (b *Button[T]) AriaLabel() string     { return b.ariaLabel }
func (b *Button[T]) SetAriaLabel(v string) { b.ariaLabel = v }

// AriaLabelledBy returns the id of the labelling element.
func (b *Button[T]) AriaLabelledBy() string     { return b.ariaLabelledBy }
func (b *Button[T]) SetAriaLabelledBy(v string) { b.ariaLabelledBy = v }

// AriaDescribedBy returns the id of the describing element.
func (b *Button[T]) AriaDescribedBy() string     { return b.ariaDescribedBy }
func (b *Button[T]) SetAriaDescribedBy(v string) { b.ariaDescribedBy = v }

// Generation counts refresh requests; renderers compare it to decide whether
// to redraw.
func (b *Button[T]) Generation() int { return b.generation }

func (b *Button[T]) markForCheck() {
	b.generation++
	if b.onRefresh != nil {
		b.onRefresh()
	}
}
