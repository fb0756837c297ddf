package model

// Package model defines the video entries shown by the grid and the catalog
// they are loaded from. Video is the diffable item: its identity survives
// payload edits, its equality covers the whole record.
