package closedsuppress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/sumcheck/closed"
	"github.com/sumcheck/closed/passes/closedsuppress"
	"github.com/sumcheck/closed/passes/implswitch"
)

func Test(t *testing.T) {
	results := analysistest.Run(t, analysistest.TestData(), closedsuppress.Analyzer, "supp")
	require.Len(t, results, 1)

	sup := results[0].Result.(closed.Suppressions)
	require.Len(t, sup, 1, "only the exhaustive switch on a parameter is suppressed")
	assert.Equal(t, implswitch.Category, sup[0].ID)
	assert.Equal(t, "every variant of closed type supp.Shape is handled", sup[0].Justification)
	assert.Equal(t, 22, sup[0].Location.Line)

	_, ok := sup.Find(implswitch.Category, sup[0].Location)
	assert.True(t, ok)
}
