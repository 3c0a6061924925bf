// Package binder fills request structs for handler.Wrap.
//
// Each binder handles one struct tag:
//
//   - Form(): `form:"name"` from urlencoded or multipart bodies
//   - Query(): `query:"name"` from the URL query
//   - Path(chi.URLParam): `path:"name"` from route parameters
//   - Signals(): Datastar signals through their `json` tags
//
// Form and Signals return ErrBinderNotApplicable when the request is not
// theirs, so they can be listed together:
//
//	handler.Wrap(h.SubmitContact, handler.WithBinders(binder.Form(), binder.Signals()))
//
// Untagged fields are never touched.
package binder
