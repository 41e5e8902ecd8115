// Package transport is the console's single HTTP request path to the
// marketplace API.
//
// A Client is bound to one base address for its whole lifetime. Send issues
// exactly one round trip per call (no retries) and classifies every failure
// into one of three kinds, matched with errors.Is:
//
//   - ErrNetwork: the server did not answer (refused, reset, timeout, cancelled).
//   - ErrStatus:  the server answered outside 200–299; the error carries a
//     best-effort message taken from the response body.
//   - ErrDecode:  a 2xx response whose body is not valid JSON for the target.
//
// JSON bodies get a default application/json content type. A *Multipart body
// is encoded by the transport, which also owns its Content-Type so the
// boundary always matches; callers only contribute other headers such as
// Authorization.
package transport
