package closedswitch_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/sumcheck/closed/passes/closedswitch"
)

func Test(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), closedswitch.Analyzer, "sw")
}

func TestFix(t *testing.T) {
	analysistest.RunWithSuggestedFixes(t, analysistest.TestData(), closedswitch.Analyzer, "fill", "fillimp")
}
