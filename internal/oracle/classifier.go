// Package oracle decides what a response from the OCR service means for a
// conformance case. A security rejection is a correct outcome, but only when
// it arrives through the documented error contract: status 400 carrying
// either a "malicious content" message or error "FileValidationError".
// Everything else outside a plain 200 is a failure.
package oracle

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/elnoro/ocr-conformance/internal/domain"
	"github.com/elnoro/ocr-conformance/internal/upload"
)

const (
	maliciousMarker     = "malicious content"
	validationErrorCode = "FileValidationError"

	unknownReason = "Unknown security reason"
)

// successBody is the documented success shape. extractedText is preferred,
// text is a fallback used by older service versions.
type successBody struct {
	ExtractedText string `json:"extractedText"`
	Text          string `json:"text"`
}

// rejectionBody is the documented validation-rejection shape.
type rejectionBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Classify maps a received response to exactly one verdict. It is total:
// any (status, body) combination yields a verdict and malformed JSON never
// produces an error.
func Classify(resp upload.Response) domain.Verdict {
	switch resp.StatusCode {
	case http.StatusOK:
		return classifySuccess(resp.Body)
	case http.StatusBadRequest:
		return classifyRejection(resp.Body)
	default:
		return domain.Failure(fmt.Sprintf("unexpected status code %d: %s", resp.StatusCode, resp.Body))
	}
}

func classifySuccess(body []byte) domain.Verdict {
	var parsed successBody
	_ = json.Unmarshal(body, &parsed) // non-JSON 200 counts as empty text

	extracted := parsed.ExtractedText
	if extracted == "" {
		extracted = parsed.Text
	}

	return domain.Pass(strings.ToLower(extracted))
}

func classifyRejection(body []byte) domain.Verdict {
	var parsed rejectionBody
	_ = json.Unmarshal(body, &parsed)

	// either marker alone is enough
	recognized := strings.Contains(parsed.Message, maliciousMarker) || parsed.Error == validationErrorCode
	if !recognized {
		return domain.Failure(string(body))
	}

	reason := parsed.Message
	if reason == "" {
		reason = unknownReason
	}

	return domain.ExpectedRejection(reason)
}
