// Package watcher re-runs a merge whenever the watched directory changes.
//
// Events are coalesced: a burst of writes produces a single merge once the
// directory has been quiet for the settle period, and merges never run more
// often than the configured interval.
package watcher
