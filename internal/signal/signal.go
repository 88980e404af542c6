package signal

// Severity classifies a Signal. A single error-severity signal stops a
// processing run; warnings accumulate; info entries are advisory.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Signal is a coded diagnostic message surfaced to the end user. The code
// taxonomy is a stable external contract: Exx codes are fatal, Wxx codes
// are warnings. Signals are immutable once created; a run accumulates them
// in insertion order, which is also the display order.
type Signal struct {
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Error constructs a fatal signal.
func Error(code, message string) Signal {
	return Signal{Code: code, Message: message, Severity: SeverityError}
}

// Warning constructs a non-fatal signal.
func Warning(code, message string) Signal {
	return Signal{Code: code, Message: message, Severity: SeverityWarning}
}

// Info constructs an advisory signal.
func Info(code, message string) Signal {
	return Signal{Code: code, Message: message, Severity: SeverityInfo}
}

// Outcome is the result of validating one document. Metadata carries
// derived measurements (character counts, detected-field presence) for
// diagnostics only; it never drives control flow once computed.
type Outcome struct {
	Accepted bool              `json:"accepted"`
	Signals  []Signal          `json:"signals"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// FirstFatal returns the first error-severity signal, if any.
func (o Outcome) FirstFatal() (Signal, bool) {
	for _, s := range o.Signals {
		if s.Severity == SeverityError {
			return s, true
		}
	}
	return Signal{}, false
}
