package encryption

// Result represents the outcome of processing a single file.
type Result struct {
	// Input file path
	Input string

	// Output file path
	Output string

	// Input and output file sizes in bytes
	InputSize  int64
	OutputSize int64

	// Any error that occurred during processing
	Error error
}

// Summary aggregates the results of ProcessFiles.
type Summary struct {
	Processed int
	Errored   int
	Deleted   int

	InputSize  int64
	OutputSize int64
}
