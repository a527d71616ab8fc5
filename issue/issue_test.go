package issue

import (
	"strings"
	"testing"

	"github.com/ausocean/iab/constraint"
)

func TestNewSetsSeverityFromCode(t *testing.T) {
	errIssue := New(constraint.CinemaST2098_2_2018, 0, "BedDefinition", 1, CodeBedDefinitionDuplicateMetaID, "dup")
	if errIssue.Severity != Error {
		t.Errorf("Severity = %v, want Error", errIssue.Severity)
	}
	warnIssue := New(constraint.CinemaST2098_2_2018, 0, "IAFrame", 0, CodeWarningFrameContainFrame, "nested")
	if warnIssue.Severity != Warning {
		t.Errorf("Severity = %v, want Warning", warnIssue.Severity)
	}
}

func TestIssueStringContainsKeyFields(t *testing.T) {
	iss := New(constraint.CinemaST2098_2_2018, 3, "BedDefinition", 7, CodeBedDefinitionDuplicateMetaID, "meta id %d duplicated", 7)
	s := iss.String()
	for _, want := range []string{"frame 3", "BedDefinition", "7"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestSeverityString(t *testing.T) {
	if Error.String() != "error" {
		t.Errorf("Error.String() = %q", Error.String())
	}
	if Warning.String() != "warning" {
		t.Errorf("Warning.String() = %q", Warning.String())
	}
}
