// Package repositories implements SQLite persistence for player records.
//
// The players table holds one row per account with two independently
// written fields: the issued session token and the JSON icon data blob.
// Both writes are field-scoped upserts (INSERT ... ON CONFLICT DO UPDATE
// SET <field>), so issuing a token never blanks stored icon data and
// replacing icon data never invalidates the token. SQLite serializes the
// statements, which gives the per-row atomicity the two write paths need
// when they race on the same account.
package repositories
