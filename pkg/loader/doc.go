// Package loader implements the fetch lifecycle of a page section:
//
//	loading --succeed--> loaded
//	loading --fail-----> error --retry--> loading
//
// A Resource calls its fetch function once per loading phase and keeps
// either the data or a display message. Start runs Load on its own
// goroutine so sections of one page load independently; Group waits for
// all of them without letting one failure affect the others.
package loader
