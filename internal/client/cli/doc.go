// Package cli provides the interactive marketplace console.
//
// It wires configuration, the session store, API services and an access gate
// into a REPL. Anyone can browse listings; the admin screens (admin, create,
// edit, delete) are mounted behind a gate that requires the admin role and
// sends everyone else back home.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
