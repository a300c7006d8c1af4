// Package server provides HTTP routing, middleware, and the JSON API handlers.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # API Handlers
//
// [TokenHandler] serves POST /token/get (session token issuance gated on
// the external credential validator). [IconsHandler] serves POST
// /icons/get and POST /icons/set (merged reads and token-gated whole-blob
// writes). [RedirectHandler] serves the informational redirects on / and
// /icons.
//
// Every domain failure is converted at this boundary into a soft
// {"success":false,"error":...} JSON payload; internal errors are logged
// as warnings and soft-failed the same way. Nothing propagates to the
// client as a stack trace.
package server
