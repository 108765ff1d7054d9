// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds permissive CORS headers and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithRecover: Turns a panicking handler into a logged 500 JSON response.
//   - WithTimeout: Bounds request handling with http.TimeoutHandler and a JSON body.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
//   - WriteJSON: Writes a jx-encodable value with a status code.
package controller
