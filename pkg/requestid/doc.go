// Package requestid assigns every incoming request an identifier and makes
// it available to logs and to outgoing upstream API calls.
//
// Middleware reuses a well-formed X-Request-ID header or generates a UUID,
// echoes it on the response and stores it in the request context. The API
// client forwards it upstream so one page view can be traced across both
// systems.
package requestid
