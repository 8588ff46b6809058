package datetext

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/en"
)

// RejectionKind tags why a date expression was not normalized.
type RejectionKind int

const (
	RejectPast RejectionKind = iota
	RejectUnparsable
)

// Rejection is a "not normalized" outcome carrying a reason that can be
// relayed into a conversation as-is. It satisfies error so callers can
// forward it through their usual error path and branch with errors.As.
type Rejection struct {
	Kind    RejectionKind
	Message string
}

func (r *Rejection) Error() string {
	return r.Message
}

// Normalizer resolves free-text date expressions against a reference day.
type Normalizer struct {
	parser *when.Parser
}

func NewNormalizer() *Normalizer {
	// only the English rules: the common slash rule reads dd/mm/yyyy
	// day-first, and ambiguous numerics must resolve month-first
	w := when.New(nil)
	w.Add(en.All...)
	return &Normalizer{parser: w}
}

// Normalize resolves text like "tomorrow", "next Thursday" or "2024-10-25"
// to a canonical YYYY-MM-DD string. Expressions that resolve to a day before
// today, or that cannot be resolved at all, come back as a Rejection value.
func (n *Normalizer) Normalize(text string, today time.Time) (string, *Rejection) {
	// "coming Friday" and the like parse better as "next Friday"
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(text)), "coming", "next")

	resolved, ok := n.resolve(normalized, today)
	if !ok {
		return "", &Rejection{
			Kind:    RejectUnparsable,
			Message: fmt.Sprintf("Error: Could not understand the date '%s'. Please provide a clear date like 'tomorrow', 'next Thursday', or '2024-10-25'.", text),
		}
	}

	day := time.Date(resolved.Year(), resolved.Month(), resolved.Day(), 0, 0, 0, 0, time.UTC)
	ref := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(ref) {
		return "", &Rejection{
			Kind:    RejectPast,
			Message: fmt.Sprintf("Error: Cannot book in the past. The date you provided (%s) is a past date.", day.Format("January 02, 2006")),
		}
	}

	return day.Format("2006-01-02"), nil
}

// resolve tries the natural-language rules first ("tomorrow", weekdays), then
// falls back to absolute formats. dateparse reads ambiguous numerics
// month-first, so "01/02/2026" is January 2nd.
func (n *Normalizer) resolve(text string, today time.Time) (time.Time, bool) {
	// a rule match counts only when it spans the whole expression; the rules
	// pick fragments out of dash dates like "2025-10-25" and would resolve
	// the rest of the input to the reference day
	if result, err := n.parser.Parse(text, today); err == nil && result != nil &&
		result.Index == 0 && len(result.Text) == len(text) {
		return result.Time, true
	}

	parsed, err := dateparse.ParseAny(text)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
