// Package carousel holds the navigation state of a slide carousel: the
// selected index over a fixed number of slides, looping or clamped at the
// ends, plus an optional autoplay timer.
//
// The package knows nothing about rendering. Subscribers registered with On
// are told about "select" and "reInit" events and push the new index to
// the browser.
package carousel
