// Package viewmodels holds the UI-facing collection view-models. Each
// view-model exclusively owns one in-memory ordered collection
// mirroring remote state: mutations apply to the collection
// synchronously and persistence is issued fire-and-forget, so a failed
// save leaves the optimistic state in place with no rollback. Load
// replaces a collection wholesale from the remote store.
package viewmodels

// PrincipalProvider supplies the currently signed-in principal id, or
// an empty string when nobody is signed in.
type PrincipalProvider interface {
	PrincipalID() string
}
