package render

// Package render keeps the rendered side of a diffable list: it applies edit
// scripts to its own row model in one batch, holds the applied snapshot, and
// answers position lookups so taps resolve to items rather than raw indices.
