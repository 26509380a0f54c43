package domain

// VerdictKind enumerates the three outcomes the oracle can assign to a
// service response.
type VerdictKind int

const (
	// VerdictPass - the service extracted text; substring checks still apply.
	VerdictPass VerdictKind = iota
	// VerdictExpectedRejection - the service refused the file through the
	// documented security contract. Treated as a passing outcome.
	VerdictExpectedRejection
	// VerdictFailure - anything outside the documented contract.
	VerdictFailure
)

func (k VerdictKind) String() string {
	switch k {
	case VerdictPass:
		return "pass"
	case VerdictExpectedRejection:
		return "expected-rejection"
	case VerdictFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Verdict is a tagged value: exactly one of the payload fields is meaningful,
// selected by Kind.
type Verdict struct {
	Kind VerdictKind

	ExtractedText string // VerdictPass
	Reason        string // VerdictExpectedRejection
	Detail        string // VerdictFailure
}

func Pass(extractedText string) Verdict {
	return Verdict{Kind: VerdictPass, ExtractedText: extractedText}
}

func ExpectedRejection(reason string) Verdict {
	return Verdict{Kind: VerdictExpectedRejection, Reason: reason}
}

func Failure(detail string) Verdict {
	return Verdict{Kind: VerdictFailure, Detail: detail}
}
