// Package draft defines the structured news concept produced for an
// accepted document.
package draft

// Source records which strategy produced a draft.
type Source string

const (
	// SourceExternal marks a draft from the external rewriting service.
	SourceExternal Source = "external"
	// SourceFallback marks a deterministically structured draft.
	SourceFallback Source = "fallback"
)

// Draft is produced exactly once per accepted document and is not mutated
// afterwards, except for the contact-block augmentation of the body. All
// three text fields are non-empty once a Draft exists: the fallback
// structurer guarantees this, and external drafts that fail the check are
// discarded in favor of the fallback.
type Draft struct {
	Headline string `json:"kop"`
	Intro    string `json:"intro"`
	Body     string `json:"body"`
	Source   Source `json:"source"`
}

// Complete reports whether all three text fields are non-empty.
func (d Draft) Complete() bool {
	return d.Headline != "" && d.Intro != "" && d.Body != ""
}
