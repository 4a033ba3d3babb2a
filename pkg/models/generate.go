package models

// GenerateOutcome classifies the result of an ADR generator invocation.
type GenerateOutcome int

const (
	// OutcomeSuccess means the generator exited zero; Output holds its stdout.
	OutcomeSuccess GenerateOutcome = iota
	// OutcomeGeneratorMissing means the generator script does not exist on
	// disk. No subprocess is started in this case.
	OutcomeGeneratorMissing
	// OutcomeGeneratorFailed means the generator exited non-zero; Stderr
	// holds its captured error output.
	OutcomeGeneratorFailed
	// OutcomeUnexpectedError means the subprocess could not be run at all
	// (e.g. the interpreter is not installed).
	OutcomeUnexpectedError
)

// String returns the outcome label used in event log entries.
func (o GenerateOutcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeGeneratorMissing:
		return "generator_missing"
	case OutcomeGeneratorFailed:
		return "generator_failed"
	case OutcomeUnexpectedError:
		return "unexpected_error"
	default:
		return "unknown"
	}
}

// GenerateResult is the outcome of one ADR generator invocation.
type GenerateResult struct {
	Outcome GenerateOutcome
	// Output is the generator's captured stdout on success.
	Output string
	// Stderr is the generator's captured error output on failure.
	Stderr string
	// Message is the diagnostic for missing-script and unexpected errors.
	Message string
}

// Succeeded reports whether the generator produced an ADR.
func (r GenerateResult) Succeeded() bool {
	return r.Outcome == OutcomeSuccess
}
