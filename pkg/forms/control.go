package forms

import (
	stderrors "errors"

	"github.com/go-drift/radio/pkg/errors"
)

var (
	// ErrAlreadyBound is returned when binding a control that already has an
	// accessor.
	ErrAlreadyBound = stderrors.New("control is already bound to an accessor")
	// ErrNilAccessor is returned when binding to a nil accessor.
	ErrNilAccessor = stderrors.New("accessor is nil")
)

// Control holds the model value of one form field and keeps a bound
// [ValueAccessor] in step with it.
//
// Values flow both ways: SetValue and Reset write to the accessor, user
// changes reported by the accessor update the control, mark it dirty and
// notify its form.
type Control[T comparable] struct {
	// OnChanged is called with the new value after the user changes it.
	OnChanged func(T)
	// OnSaved is called by Save.
	OnSaved func(T)
	// Autovalidate validates the control when the user changes it.
	Autovalidate bool

	initial    T
	value      T
	validators []Validator[T]
	errorText  string
	dirty      bool
	touched    bool
	disabled   bool

	accessor ValueAccessor[T]
	form     *Form
}

// NewControl returns a control holding initial.
func NewControl[T comparable](initial T, validators ...Validator[T]) *Control[T] {
	return &Control[T]{initial: initial, value: initial, validators: validators}
}

// Bind connects the control to acc: the current value and disabled state are
// written to it and its callbacks are taken over by the control.
func (c *Control[T]) Bind(acc ValueAccessor[T]) error {
	if c.accessor != nil {
		return errors.New("forms.Control.Bind", errors.KindBinding, ErrAlreadyBound)
	}
	if acc == nil {
		return errors.New("forms.Control.Bind", errors.KindBinding, ErrNilAccessor)
	}
	c.accessor = acc
	acc.WriteValue(c.value)
	acc.RegisterOnChange(c.didChange)
	acc.RegisterOnTouched(c.markTouched)
	if c.disabled {
		acc.SetDisabledState(true)
	}
	return nil
}

// Unbind releases the accessor, clearing the callbacks it holds.
func (c *Control[T]) Unbind() {
	if c.accessor == nil {
		return
	}
	c.accessor.RegisterOnChange(nil)
	c.accessor.RegisterOnTouched(nil)
	c.accessor = nil
}

// Bound reports whether the control has an accessor.
func (c *Control[T]) Bound() bool { return c.accessor != nil }

// Value returns the current model value.
func (c *Control[T]) Value() T { return c.value }

// SetValue sets the model value and writes it to the accessor. It does not
// mark the control dirty.
func (c *Control[T]) SetValue(v T) {
	c.value = v
	if c.accessor != nil {
		c.accessor.WriteValue(v)
	}
}

func (c *Control[T]) didChange(v T) {
	c.value = v
	c.dirty = true
	if c.OnChanged != nil {
		c.OnChanged(v)
	}
	if c.form != nil {
		c.form.NotifyChanged()
	}
	if (c.form != nil && c.form.Autovalidate) || c.Autovalidate {
		c.Validate()
	}
}

func (c *Control[T]) markTouched() { c.touched = true }

// Dirty reports whether the user changed the value since the last reset.
func (c *Control[T]) Dirty() bool { return c.dirty }

// Touched reports whether the accessor was touched since the last reset.
func (c *Control[T]) Touched() bool { return c.touched }

// Disabled reports whether the control is disabled.
func (c *Control[T]) Disabled() bool { return c.disabled }

// Disable disables the control and its accessor. Disabled controls skip
// validation and save.
func (c *Control[T]) Disable() { c.setDisabled(true) }

// Enable enables the control and its accessor.
func (c *Control[T]) Enable() { c.setDisabled(false) }

func (c *Control[T]) setDisabled(disabled bool) {
	c.disabled = disabled
	if disabled {
		c.errorText = ""
	}
	if c.accessor != nil {
		c.accessor.SetDisabledState(disabled)
	}
}

// Validate runs the validators in order and keeps the first message.
func (c *Control[T]) Validate() bool {
	c.errorText = ""
	if c.disabled {
		return true
	}
	for _, v := range c.validators {
		if msg := v(c.value); msg != "" {
			c.errorText = msg
			return false
		}
	}
	return true
}

// ErrorText returns the message of the last failed validation.
func (c *Control[T]) ErrorText() string { return c.errorText }

// HasError reports whether the last validation failed.
func (c *Control[T]) HasError() bool { return c.errorText != "" }

// Save calls OnSaved with the current value unless the control is disabled.
func (c *Control[T]) Save() {
	if c.disabled {
		return
	}
	if c.OnSaved != nil {
		c.OnSaved(c.value)
	}
}

// Reset restores the initial value and clears dirty, touched and errors.
func (c *Control[T]) Reset() {
	c.SetValue(c.initial)
	c.dirty = false
	c.touched = false
	c.errorText = ""
}

func (c *Control[T]) attach(f *Form) {
	if c.form != nil && c.form != f {
		c.form.Unregister(c)
	}
	c.form = f
}

func (c *Control[T]) detach(f *Form) {
	if c.form == f {
		c.form = nil
	}
}
