// Package validator builds form validation from small Rule values.
//
// A Rule pairs a Check with the ValidationError reported when the check
// fails. Apply runs every rule and returns ValidationErrors, which is an
// error, so handlers can return it directly:
//
//	err := validator.Apply(
//	    validator.Required("email", form.Email),
//	    validator.Email("email", form.Email),
//	    validator.OneOf("type_unit", form.TypeUnit, "apartment", "villa", "office"),
//	)
//
// Every ValidationError carries a translation key ("validation.required")
// and string parameters so the message can be rendered in the visitor's
// language with Localize.
package validator
