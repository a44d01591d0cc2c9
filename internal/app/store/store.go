// Package store is the remote store adapter: it maps planner entities
// to and from schemaless per-principal documents, one logical
// sub-collection per entity kind. The store is the system of record
// but is only ever read for bulk reloads; rendering reads the
// view-models' in-memory collections.
package store

import "context"

// Kind names a logical sub-collection under a principal.
type Kind string

const (
	KindCourses     Kind = "courses"
	KindAssignments Kind = "assignments"
	KindStudyGoals  Kind = "studyGoals"
	KindSettings    Kind = "settings"
)

// SettingsDocID is the fixed document id of the per-user settings
// singleton.
const SettingsDocID = "app_settings"

// Document is a schemaless entity encoding. Dates are epoch seconds,
// enums their string tag; missing fields default on decode.
type Document map[string]any

// Store persists documents per principal. Implementations must treat
// an empty principal id as "not signed in": reads return an empty
// result and writes are silently skipped, neither raises. Writes are
// last-writer-wins at single-document granularity.
type Store interface {
	FetchAll(ctx context.Context, principalID string, kind Kind) ([]Document, error)
	Save(ctx context.Context, principalID string, kind Kind, docID string, doc Document) error
	Delete(ctx context.Context, principalID string, kind Kind, docID string) error
}
