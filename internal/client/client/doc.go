// Package client talks to the marketplace API on behalf of the console.
//
// # Overview
//
// The package provides:
//  1. The Client contract: register, login and listing CRUD.
//  2. HTTPClient, which composes the request transport with the session's
//     Authorization header for the calls that need one.
//  3. Local database bootstrap (InitDatabase, RunMigrations) for the sqlite
//     session medium, with embedded goose migrations.
//
// # Error Handling
//
// Failures are tagged with sentinels callers match with errors.Is:
// ErrUnavailable (no answer from the server), ErrUnauthorized (401/403) and
// ErrNotFound (404). The underlying transport error is kept in the chain.
// Other status and decode failures are returned unchanged.
//
// No call is retried.
package client
