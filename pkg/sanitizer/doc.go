// Package sanitizer cleans user input and upstream text before it is
// validated, sent or rendered.
//
// Every function has the shape func(string) string (or is easily adapted)
// so pipelines can be built with Apply and Compose:
//
//	clean := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.Trim)
//	name := clean(r.FormValue("name"))
package sanitizer
