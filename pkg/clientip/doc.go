// Package clientip resolves the visitor address used as the rate limit
// key and attached to request logs.
//
// Proxy headers are consulted in a fixed order (CF-Connecting-IP,
// DO-Connecting-IP, X-Forwarded-For, X-Real-IP) before falling back to
// RemoteAddr. Deployments that are not behind those proxies should build
// a Resolver with only the headers their edge sets, since any client can
// send them.
package clientip
