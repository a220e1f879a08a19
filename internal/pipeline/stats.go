package pipeline

// RunStats tracks aggregate counters and output totals across a batch run.
// Processed counts inputs that made it into an output (stamped copies, or
// files whose pages entered the merge); Skipped counts unreadable inputs;
// Failed counts per-file processing errors.
type RunStats struct {
	Total       int
	Current     int
	Processed   int
	Skipped     int
	Failed      int
	OutputPages int
	OutputBytes int64
}
