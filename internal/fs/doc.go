// Package fs provides the filesystem seam used to write snapshot files.
//
//   - [FileSystem]: the open, rename and remove operations WriteAtomic needs
//   - [LocalFS]: production implementation using the os package
//   - [FaultyFS]: test utility that injects write, sync, close or rename errors
//
// WriteAtomic writes to a temporary sibling, syncs it and renames it over the
// target, so readers see either the old snapshot or the complete new one.
package fs
