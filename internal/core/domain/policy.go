package domain

import "strings"

// The refusal policy is one versioned contract: the prompt preamble mandates
// RefusalAnswer verbatim, and IsRefusal detects it through the two marker
// substrings below. Changing the wording on one side without the other
// breaks escalation.

// RefusalAnswer is the fixed answer the model must emit when the supplied
// material is insufficient. It contains both refusal markers.
const RefusalAnswer = "Maaf, saya tidak memiliki informasi mengenai hal tersebut dalam data yang tersedia. Silakan hubungi HR untuk bantuan lebih lanjut."

const (
	refusalNoInfoMarker    = "tidak memiliki informasi"
	refusalContactHRMarker = "hubungi HR"
)

// DefaultLanguage is the answer language used when the deployment does not
// configure one.
const DefaultLanguage = "Bahasa Indonesia"

// IsRefusal reports whether a generated answer is a non-answer that should be
// escalated to HR review. This is a deliberate string-containment check over
// the mandated refusal wording, not an intent classifier.
func IsRefusal(answer string) bool {
	return strings.Contains(answer, refusalNoInfoMarker) ||
		strings.Contains(answer, refusalContactHRMarker)
}
