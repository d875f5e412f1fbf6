// Package radio implements the state model behind a single-selection radio
// group: a [Group] that owns the authoritative value, the [Button] items that
// take part in it, and the [Membership] tracker through which a structural
// renderer reports which buttons currently belong to a group.
//
// # Consistency
//
// After any mutating call returns, at most one member is checked (except for
// members sharing a value, see below), and if one is, [Group.Selected] refers
// to it and [Group.Value] equals its value. A group value that matches no
// member is kept ("sticky") and selects a member registered later with that
// value.
//
// When several members share the group value, a value-driven resync checks
// all of them and the last one in membership order becomes the selection.
//
// # Notifications
//
// Programmatic writes ([Group.SetValue], [Group.WriteValue],
// [Group.SetSelected]) update the members silently. Only a user driven change
// reaching [Button.SetChecked] invokes the form on-change callback and emits
// the group change event, the latter only once the group has resolved its
// membership at least once.
//
// Example:
//
//	group := radio.NewGroup[string]()
//	group.RegisterOnChange(func(v string) { model.Size = v })
//
//	small := radio.NewButton(group, "small")
//	large := radio.NewButton(group, "large")
//
//	group.WriteValue("small") // small is checked, no callback
//	large.OnInputToggle(true) // user click: small unchecked, callback("large")
package radio
