// Package audit checks produced tables for integrity problems: malformed
// destinations, dangling dice references, and drift between two snapshots
// of the effects table.
package audit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tomaszsb/gamedata/internal/classify"
	"github.com/tomaszsb/gamedata/internal/model"
)

// Severity ranks an issue. Errors fail validation; warnings do not.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue codes.
const (
	CodeQuestionInDestination = "QUESTION_IN_DESTINATION"
	CodeInvalidDestination    = "INVALID_DESTINATION"
	CodeMissingDiceOutcomes   = "MISSING_DICE_OUTCOMES"
	CodeNoDestinations        = "NO_DESTINATIONS"
	CodePossibleUnparsedLogic = "POSSIBLE_UNPARSED_LOGIC"
)

// Issue is one validation finding against a movement row.
type Issue struct {
	Space    string
	Visit    model.VisitType
	Code     string
	Severity Severity
	Detail   string
}

// Validator checks movement records against the dice-outcomes table.
type Validator struct {
	classifier *classify.Classifier
}

// NewValidator returns a Validator using the given name classifier.
func NewValidator(c *classify.Classifier) *Validator {
	return &Validator{classifier: c}
}

// Validate runs all checks over the movement table. Dice outcomes are keyed
// so dice-type rows can be cross-referenced.
func (v *Validator) Validate(movements []model.MovementRecord, outcomes []model.DiceOutcomeRecord) []Issue {
	outcomeKeys := make(map[model.SpaceKey]struct{}, len(outcomes))
	for _, o := range outcomes {
		outcomeKeys[model.SpaceKey{Space: o.Space, Visit: o.Visit}] = struct{}{}
	}

	var issues []Issue
	add := func(rec model.MovementRecord, code string, sev Severity, detail string) {
		issues = append(issues, Issue{
			Space:    rec.Space,
			Visit:    rec.Visit,
			Code:     code,
			Severity: sev,
			Detail:   detail,
		})
	}

	for _, rec := range movements {
		for _, dest := range rec.Destinations {
			if strings.Contains(dest, "?") {
				add(rec, CodeQuestionInDestination, SeverityError,
					fmt.Sprintf("destination contains %q: %s", "?", truncate(dest, 50)))
			}
			if !v.classifier.IsSpaceID(dest) {
				add(rec, CodeInvalidDestination, SeverityError,
					fmt.Sprintf("not a space identifier: %q", dest))
			}
			upper := strings.ToUpper(dest)
			if strings.Contains(upper, "YES") || strings.Contains(upper, "NO") || strings.Contains(dest, " or ") {
				add(rec, CodePossibleUnparsedLogic, SeverityWarning,
					fmt.Sprintf("destination may contain condition text: %s", truncate(dest, 50)))
			}
		}

		if rec.Type == model.MoveDice {
			if _, ok := outcomeKeys[rec.Key()]; !ok {
				add(rec, CodeMissingDiceOutcomes, SeverityError,
					"movement type is dice but no dice-outcomes row exists")
			}
		}

		if rec.Type != model.MoveNone && rec.Type != model.MoveDice && len(rec.Destinations) == 0 {
			add(rec, CodeNoDestinations, SeverityError,
				fmt.Sprintf("movement type is %q but no destinations specified", rec.Type))
		}
	}
	return issues
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	for _, is := range issues {
		if is.Severity == SeverityError {
			return true
		}
	}
	return false
}

// FormatReport renders issues grouped by severity, errors first.
func FormatReport(issues []Issue) string {
	if len(issues) == 0 {
		return "validation passed: no errors or warnings\n"
	}

	sorted := make([]Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Severity != sorted[j].Severity {
			return sorted[i].Severity == SeverityError
		}
		if sorted[i].Space != sorted[j].Space {
			return sorted[i].Space < sorted[j].Space
		}
		return sorted[i].Visit < sorted[j].Visit
	})

	var b strings.Builder
	var nErrors, nWarnings int
	for _, is := range sorted {
		if is.Severity == SeverityError {
			nErrors++
		} else {
			nWarnings++
		}
		fmt.Fprintf(&b, "%-7s %s (%s): %s: %s\n", is.Severity, is.Space, is.Visit, is.Code, is.Detail)
	}
	fmt.Fprintf(&b, "total: %d errors, %d warnings\n", nErrors, nWarnings)
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
