package forms

// Field is implemented by everything a [Form] coordinates.
type Field interface {
	Validate() bool
	Save()
	Reset()
}

// Form groups fields and provides coordinated validation, save and reset.
//
// Autovalidate behavior:
//   - When Autovalidate is true, a field validates itself when the user
//     changes its value.
//   - Untouched fields are not validated, avoiding premature error display.
//   - Call Validate() explicitly to validate all fields (e.g., on submit).
//
// Form keeps a generation counter that increments on validation, reset and
// field changes once the first field has registered, so renderers can tell
// when to redraw.
type Form struct {
	// Autovalidate runs a field's validators when the user changes it.
	Autovalidate bool
	// OnChanged is called when any field changes.
	OnChanged func()

	fields        []Field
	generation    int
	isInitialized bool
}

// NewForm returns an empty form.
func NewForm() *Form {
	return &Form{}
}

// Register adds field to the form. Registering a field twice is a no-op.
// A [Control] moves to this form if it belonged to another one.
func (f *Form) Register(field Field) {
	for _, existing := range f.fields {
		if existing == field {
			return
		}
	}
	if c, ok := field.(interface{ attach(*Form) }); ok {
		c.attach(f)
	}
	f.fields = append(f.fields, field)
	f.isInitialized = true
}

// Unregister removes field from the form.
func (f *Form) Unregister(field Field) {
	for i, existing := range f.fields {
		if existing == field {
			f.fields = append(f.fields[:i], f.fields[i+1:]...)
			if c, ok := field.(interface{ detach(*Form) }); ok {
				c.detach(f)
			}
			return
		}
	}
}

// Len returns the number of registered fields.
func (f *Form) Len() int { return len(f.fields) }

// Validate runs validators on all fields and reports whether all passed.
func (f *Form) Validate() bool {
	valid := true
	for _, field := range f.fields {
		if !field.Validate() {
			valid = false
		}
	}
	f.bumpGeneration()
	return valid
}

// Save calls Save on all fields.
func (f *Form) Save() {
	for _, field := range f.fields {
		field.Save()
	}
}

// Reset resets all fields to their initial values.
func (f *Form) Reset() {
	for _, field := range f.fields {
		field.Reset()
	}
	f.bumpGeneration()
}

// NotifyChanged informs listeners that a field changed.
// When autovalidate is enabled, the calling field is expected to validate itself
// rather than having the form validate all fields (which would show errors on
// untouched fields).
func (f *Form) NotifyChanged() {
	if f.OnChanged != nil {
		f.OnChanged()
	}
	f.bumpGeneration()
}

// Generation returns the change counter.
func (f *Form) Generation() int { return f.generation }

func (f *Form) bumpGeneration() {
	if !f.isInitialized {
		return
	}
	f.generation++
}
