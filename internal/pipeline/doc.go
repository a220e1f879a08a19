// Package pipeline orchestrates file discovery, per-file processing, and
// batch summary reporting for both tools.
//
// Layout:
//   - discover.go: non-recursive *.pdf enumeration in natural order, plus
//     output-file exclusion for the merger.
//   - merge.go: RunMerge, a tolerant sequential merge with a single final write.
//   - stamp.go: RunStamp, per-file title stamping with skip-and-continue.
//   - stats.go: RunStats aggregate counters.
package pipeline
