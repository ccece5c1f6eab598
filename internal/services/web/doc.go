// Package web serves the password sheet over HTTP.
//
// Routes:
//
//	GET /              information page (en, ja)
//	GET /api/generate  fresh sheet as a PDF attachment
//	GET /healthz       liveness probe
//
// Every download draws a new sheet; nothing is cached between requests.
package web
