package domain

// ConnectResult reports the outcome of a connect operation. Connected is
// false when the daemon answered but had no keyboard to attach; that case
// is not an error.
type ConnectResult struct {
	Connected bool
}

// StepResult is the daemon's reply to a single brightness step. Success
// is false when the step had no effect, e.g. brightness already at its
// limit.
type StepResult struct {
	Success bool
}
