package control

import (
	"strings"

	"google.golang.org/grpc/status"
)

// Outcome classifies a failed connect call against the daemon.
type Outcome int

const (
	// OutcomeFailure is the safe default: anything not recognized below.
	OutcomeFailure Outcome = iota

	// OutcomeAlreadyConnected means the daemon is already attached to a
	// keyboard; the requested state already holds.
	OutcomeAlreadyConnected

	// OutcomeNoKeyboard means the daemon answered but had no keyboard
	// it could attach to.
	OutcomeNoKeyboard
)

// keymapd reports connect failures only as free-text diagnostics, so the
// only available signal is substring matching against its known wording.
// This is a fragile, unverified contract: if the daemon rephrases these
// messages the match fails silently and the outcome degrades to
// OutcomeFailure. Callers must not assume wording stability.
var (
	alreadyConnectedPhrases = []string{
		"already connected",
	}
	noKeyboardPhrases = []string{
		"no keyboard available",
		"no keyboards available",
	}
)

// ClassifyError classifies the diagnostic text carried by a failed call.
// The gRPC status code is used only to peel the message out of the error.
func ClassifyError(err error) Outcome {
	if err == nil {
		return OutcomeFailure
	}
	return ClassifyMessage(status.Convert(err).Message())
}

// ClassifyMessage matches a diagnostic message against the known phrase
// sets, case-insensitively.
func ClassifyMessage(msg string) Outcome {
	m := strings.ToLower(msg)

	for _, phrase := range alreadyConnectedPhrases {
		if strings.Contains(m, phrase) {
			return OutcomeAlreadyConnected
		}
	}
	for _, phrase := range noKeyboardPhrases {
		if strings.Contains(m, phrase) {
			return OutcomeNoKeyboard
		}
	}
	return OutcomeFailure
}
