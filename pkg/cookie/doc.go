// Package cookie writes and reads the site's cookies: the plain language
// preference and short-lived signed flash messages shown after a form
// redirect.
//
// Signed values are base64(value)|base64(HMAC-SHA256(value)). Several
// secrets may be configured (comma separated) to rotate keys: the first
// signs, all of them verify.
package cookie
