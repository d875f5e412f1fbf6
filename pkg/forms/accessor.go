// Package forms provides a form model that drives value accessors such as
// radio groups.
//
// A [Control] holds the model value of one field and binds to a
// [ValueAccessor], the adapter a selection component exposes. A [Form]
// groups controls for coordinated validation, save and reset.
//
// Example:
//
//	group := radio.NewGroup[string]()
//	radio.NewButton(group, "email")
//	radio.NewButton(group, "sms")
//
//	contact := forms.NewControl("email", forms.Required[string]("pick one"))
//	if err := contact.Bind(group); err != nil {
//	    return err
//	}
//
//	form := forms.NewForm()
//	form.Register(contact)
package forms

// ValueAccessor is the adapter between a control and a component that
// displays and edits its value.
//
// The component calls the registered on-change callback only for changes
// made by the user, never for values written through WriteValue.
type ValueAccessor[T comparable] interface {
	// WriteValue shows v in the component.
	WriteValue(v T)
	// RegisterOnChange stores the callback for user changes.
	RegisterOnChange(fn func(T))
	// RegisterOnTouched stores the callback for touches (focus or blur).
	RegisterOnTouched(fn func())
	// SetDisabledState enables or disables the component.
	SetDisabledState(disabled bool)
}
