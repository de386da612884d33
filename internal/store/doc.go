// Package store persists the host state as a small key-value document.
//
// Two backends implement [KeyValueStore]: a JSON file rewritten atomically
// on every write, and a SQL table (SQLite or PostgreSQL) selected by DSN.
// [ParticipantRepository] keeps the participant collection under a single
// key on top of either backend.
package store
