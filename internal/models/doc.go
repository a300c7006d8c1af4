// Package models defines the icon customization data model.
//
// The central type is [IconData]: a mapping from icon type (cube, ship,
// ball, ufo, wave, robot, spider, swing, jetpack) to per-mod
// customization entries, plus the distinguished "shared" pseudo-type.
// Shared entries are never stored per type and never returned as their
// own key; they exist only to be overlaid onto every other type at read
// time, winning per mod identifier.
//
// Mod identifiers are namespaced strings of the form "namespace.name"
// (lowercase alphanumerics, underscores and hyphens on both sides).
//
// [Player] is the persistent entity backing all of this: one row per
// account holding the issued session token and the raw icon data blob.
package models
