// Package server serves a dataset over HTTP with Relay-style pagination.
//
//	GET /items?first=10&after=<cursor>
//	GET /health
//	GET /version
//
// /items answers with the connection JSON (edges, pageInfo, totalCount) or
// a problem body from net/resp carrying the trace id. Each response carries
// an X-Trace-ID header.
package server
