// Package site serves the IMIC Decor website: the pages, the section
// fragments behind "Try Again", the contact and meeting forms, the
// carousels and the language switch.
//
// Every page is made of sections. A section wraps one upstream resource
// in a loader.Resource and renders it as loading, loaded or failed. All
// sections of a page load at once; a failing section never affects the
// others. Datastar requests receive element or signal patches over SSE,
// plain requests receive full pages.
//
// Services follow one shape: construct with their dependencies and views,
// then mount Handle() through Router:
//
//	r.Mount("/", site.Router(site.RouterOptions{
//		Pages:    pages,
//		Sections: sections,
//		Forms:    forms,
//		Carousel: carousels,
//		Language: language,
//		Assets:   assets,
//		Static:   views.Static(),
//	}))
//
// Views are plain functions returning templ components, so tests can
// replace any of them. The views subpackage provides the site's markup.
package site
