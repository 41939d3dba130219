package audit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomaszsb/gamedata/internal/classify"
	"github.com/tomaszsb/gamedata/internal/model"
)

func newValidator() *Validator {
	return NewValidator(classify.New(classify.DefaultExceptions()))
}

func codes(issues []Issue) []string {
	out := make([]string, 0, len(issues))
	for _, is := range issues {
		out = append(out, is.Code)
	}
	return out
}

func TestValidateCleanTable(t *testing.T) {
	movements := []model.MovementRecord{
		{Space: "OWNER-SCOPE-INITIATION", Visit: model.VisitFirst, Type: model.MoveFixed,
			Destinations: []string{"OWNER-FUND-INITIATION"}},
		{Space: "OWNER-FUND-INITIATION", Visit: model.VisitFirst, Type: model.MoveDice},
		{Space: "FINISH", Visit: model.VisitFirst, Type: model.MoveNone},
	}
	outcomes := []model.DiceOutcomeRecord{
		{Space: "OWNER-FUND-INITIATION", Visit: model.VisitFirst},
	}

	issues := newValidator().Validate(movements, outcomes)
	assert.Empty(t, issues)
	assert.False(t, HasErrors(issues))
}

func TestValidateQuestionInDestination(t *testing.T) {
	movements := []model.MovementRecord{
		{Space: "REG-FDNY-FEE-REVIEW", Visit: model.VisitFirst, Type: model.MoveFixed,
			Destinations: []string{"Did you pass? YES - CON-INITIATION"}},
	}

	issues := newValidator().Validate(movements, nil)
	assert.Contains(t, codes(issues), CodeQuestionInDestination)
	assert.Contains(t, codes(issues), CodeInvalidDestination)
	assert.Contains(t, codes(issues), CodePossibleUnparsedLogic)
	assert.True(t, HasErrors(issues))
}

func TestValidateMissingDiceOutcomes(t *testing.T) {
	movements := []model.MovementRecord{
		{Space: "ARCH-INITIATION", Visit: model.VisitSubsequent, Type: model.MoveDice},
	}

	issues := newValidator().Validate(movements, nil)
	assert.Equal(t, []string{CodeMissingDiceOutcomes}, codes(issues))
}

func TestValidateDiceOutcomeKeyMatchesVisit(t *testing.T) {
	movements := []model.MovementRecord{
		{Space: "ARCH-INITIATION", Visit: model.VisitSubsequent, Type: model.MoveDice},
	}
	// Outcome row exists for the other visit type only.
	outcomes := []model.DiceOutcomeRecord{
		{Space: "ARCH-INITIATION", Visit: model.VisitFirst},
	}

	issues := newValidator().Validate(movements, outcomes)
	assert.Equal(t, []string{CodeMissingDiceOutcomes}, codes(issues))
}

func TestValidateNoDestinations(t *testing.T) {
	movements := []model.MovementRecord{
		{Space: "ENG-SCOPE-CHECK", Visit: model.VisitFirst, Type: model.MoveChoice},
	}

	issues := newValidator().Validate(movements, nil)
	assert.Equal(t, []string{CodeNoDestinations}, codes(issues))
}

func TestValidateLogicWarningIsNotError(t *testing.T) {
	movements := []model.MovementRecord{
		{Space: "PM-DECISION-CHECK", Visit: model.VisitFirst, Type: model.MoveChoice,
			Destinations: []string{"ARCH-INITIATION or ENG-INITIATION"}},
	}

	issues := newValidator().Validate(movements, nil)
	assert.Contains(t, codes(issues), CodePossibleUnparsedLogic)
	// The "or" phrase also fails the identifier check, so this is still an error.
	assert.True(t, HasErrors(issues))
}

func TestFormatReport(t *testing.T) {
	issues := []Issue{
		{Space: "B", Visit: model.VisitFirst, Code: CodePossibleUnparsedLogic, Severity: SeverityWarning, Detail: "w"},
		{Space: "A", Visit: model.VisitFirst, Code: CodeNoDestinations, Severity: SeverityError, Detail: "e"},
	}
	report := FormatReport(issues)
	assert.Contains(t, report, "total: 1 errors, 1 warnings")
	// Errors are listed before warnings.
	assert.Less(t, strings.Index(report, CodeNoDestinations), strings.Index(report, CodePossibleUnparsedLogic))
}

func TestFormatReportEmpty(t *testing.T) {
	assert.Contains(t, FormatReport(nil), "validation passed")
}
