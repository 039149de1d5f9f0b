package extract

import (
	"encoding/json"
	"time"

	"appeals/internal/domain"
)

// DateFormat is the single accepted format for date-valued extraction fields.
const DateFormat = "2006-01-02"

// DegradeReason explains why an extraction came back with defaults only.
type DegradeReason string

const (
	DegradeNone           DegradeReason = ""
	DegradeNoPayload      DegradeReason = "no_json_payload"
	DegradeInvalidPayload DegradeReason = "invalid_json_payload"
)

// Result carries a fully-populated extraction or a degraded one with the
// reason it degraded, so callers can tell the two apart without probing
// sentinel field values.
type Result struct {
	Extraction *domain.DenialExtraction
	Degraded   bool
	Reason     DegradeReason
}

// Normalize converts the raw text returned by a generation provider into a
// validated DenialExtraction. The provider output may wrap its JSON payload
// in prose or code fences; Normalize locates the first balanced {...} span
// and decodes it field by field, tolerating partially-structured data.
//
// Normalize never fails: on any malformation it returns a degraded Result
// whose extraction carries only the original source text and defaults.
func Normalize(sourceText, response string) Result {
	degraded := func(reason DegradeReason) Result {
		return Result{
			Extraction: domain.NewDenialExtraction(sourceText),
			Degraded:   true,
			Reason:     reason,
		}
	}

	payload, ok := locateJSONObject(response)
	if !ok {
		// No balanced span found; the whole response may still be JSON
		// (e.g. leading garbage confused the scanner).
		payload = response
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		if !ok {
			return degraded(DegradeNoPayload)
		}
		return degraded(DegradeInvalidPayload)
	}

	ex := domain.NewDenialExtraction(sourceText)
	if reason, found := decodeString(fields, "denial_reason"); found {
		ex.DenialReason = domain.ParseDenialReason(reason)
	}
	ex.PayerName = optionalString(fields, "payer_name")
	ex.DenialReasonText = optionalString(fields, "denial_reason_text")
	ex.MemberID = optionalString(fields, "member_id")
	ex.ClaimNumber = optionalString(fields, "claim_number")
	ex.DenialDate = optionalDate(fields, "denial_date")
	ex.AppealDeadline = optionalDate(fields, "appeal_deadline")
	ex.ProcedureCodes = stringList(fields, "procedure_codes")
	ex.DiagnosisCodes = stringList(fields, "diagnosis_codes")

	return Result{Extraction: ex}
}

// locateJSONObject returns the first balanced {...} span in s. The scan is
// string-aware so braces inside JSON string values do not skew the depth.
func locateJSONObject(s string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					return s[start : i+1], true
				}
			}
		}
	}
	return "", false
}

func decodeString(fields map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := fields[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// optionalString returns a pointer to the field's value, or nil when the
// field is absent, non-string, or blank.
func optionalString(fields map[string]json.RawMessage, key string) *string {
	s, ok := decodeString(fields, key)
	if !ok || s == "" {
		return nil
	}
	return &s
}

// optionalDate parses a date field in DateFormat. A value that fails to
// parse is treated as absent, not as an error.
func optionalDate(fields map[string]json.RawMessage, key string) *time.Time {
	s, ok := decodeString(fields, key)
	if !ok || s == "" {
		return nil
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return nil
	}
	return &t
}

// stringList copies a list-valued field verbatim, defaulting to an empty
// list when the field is absent or not a list of strings.
func stringList(fields map[string]json.RawMessage, key string) []string {
	raw, ok := fields[key]
	if !ok {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return []string{}
	}
	return items
}
