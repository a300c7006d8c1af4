// Package tasks orchestrates the two behavioral cores of the server.
//
// # Session Issuance
//
// [SessionEngine.IssueToken] gates token issuance on the external
// credential validator: validation failure aborts before storage is
// touched, success persists a fresh 40-hex-character token through a
// field-scoped upsert that preserves any stored icon data.
//
// # Icon Data
//
// [IconEngine.Get] computes effective icon customization per account
// and per requested type by overlaying the shared entries onto the
// type-specific entries (shared wins per mod identifier). Accounts with
// no record yield empty results, never errors, and each account in a
// batch is computed independently.
//
// [IconEngine.Set] is the only write path for icon data: it validates
// the submitted shape, requires an exact match against the stored
// session token, and replaces the stored blob wholesale. No partial
// merge is ever persisted.
//
// Both engines depend on the [PlayerStore] interface rather than the
// concrete repository so tests can substitute storage.
package tasks
