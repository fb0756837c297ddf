// Package search narrows the video catalog to a query and feeds the result to
// the visual list as snapshots.
//
// Filtering is a case-folded substring match on the display title. The
// Controller serializes applies on a single worker and collapses queries that
// arrive while an apply is in flight, keeping only the newest.
package search
