// Package session owns the console's persisted login: one JSON record
// (identity and bearer token) kept under a single key of a local medium.
//
// Nothing else reads the medium. Callers ask the Store whether someone is
// logged in (Current), what their role is, and for the Authorization header
// to attach to API calls. Storage trouble never surfaces as an error: an
// unreadable or missing medium simply means nobody is logged in. An old or
// foreign record shape decodes as absent for the same reason.
package session
