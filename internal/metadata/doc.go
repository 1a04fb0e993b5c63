// Package metadata implements the tracked-entry records that keep the
// on-disk links, the per-repository bookkeeping and the source-side index
// mutually consistent.
//
// Two views of the same fact are stored:
//   - each repository carries a record (.gitbox.yaml, committed alongside the
//     links) listing the entries it tracks
//   - a single source index under the gitbox state directory lists, per
//     absolute source path, the repositories tracking it
//
// Load policy: a missing file reads as an empty record; a file that fails to
// parse is an error (ErrMetadataCorrupt). Saves are atomic (temp file then
// rename) so an interrupted process never leaves a half-written record.
//
// There is no locking. Concurrent invocations writing the same record race,
// and the last writer wins: one invocation's entries can be lost, but the
// atomic save guarantees the file itself is never torn.
package metadata
