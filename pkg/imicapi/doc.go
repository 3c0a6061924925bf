// Package imicapi is the client for the IMIC content API.
//
// Every endpoint answers with the envelope
//
//	{"status": true, "data": ..., "message": "..."}
//
// A call fails when the transport status is not 2xx or when status is not
// true; a missing status field counts as false. The client never retries,
// caches or de-duplicates requests.
//
//	api := imicapi.New("https://www.test.nia.com.eg/imic/public/api")
//	services, err := api.Services(ctx)
//
// Entities keep both halves of every bilingual field pair (name_en and
// name_ar for example); callers choose one for the active language.
package imicapi
