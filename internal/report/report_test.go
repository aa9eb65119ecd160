package report_test

import (
	"bytes"
	"errors"
	"go/token"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/checker"
	"golang.org/x/tools/go/packages"

	"github.com/sumcheck/closed"
	"github.com/sumcheck/closed/internal/report"
)

var (
	host       = &analysis.Analyzer{Name: "host"}
	suppressor = &analysis.Analyzer{Name: "suppressor"}
	sw         = &analysis.Analyzer{Name: "sw"}
)

type fixture struct {
	fset           *token.FileSet
	pkg, test      *packages.Package
	hostAt, swAt   token.Pos
	hostPos, swPos token.Position
}

func newFixture() *fixture {
	fset := token.NewFileSet()
	tf := fset.AddFile("a.go", -1, 60)
	tf.SetLines([]int{0, 20, 40})

	x := &fixture{
		fset:   fset,
		pkg:    &packages.Package{ID: "p", Fset: fset},
		test:   &packages.Package{ID: "p [p.test]", Fset: fset},
		hostAt: tf.Pos(22),
		swAt:   tf.Pos(5),
	}
	x.hostPos = fset.Position(x.hostAt)
	x.swPos = fset.Position(x.swAt)
	return x
}

func (x *fixture) graph() *checker.Graph {
	swDiag := analysis.Diagnostic{
		Pos:      x.swAt,
		Category: "CL0001",
		Message:  "dispatch over closed type p.T is not exhaustive: missing B",
		SuggestedFixes: []analysis.SuggestedFix{{
			Message: "Add cases for missing variants",
			TextEdits: []analysis.TextEdit{{
				Pos:     x.swAt,
				End:     x.swAt,
				NewText: []byte("case B:\n\t"),
			}},
		}},
	}
	return &checker.Graph{Roots: []*checker.Action{
		{
			Analyzer: host,
			Package:  x.pkg,
			IsRoot:   true,
			Diagnostics: []analysis.Diagnostic{{
				Pos:      x.hostAt,
				Category: "implswitch",
				Message:  "type switch on T is missing cases for c",
			}},
		},
		{
			Analyzer: suppressor,
			Package:  x.pkg,
			IsRoot:   true,
			Result: closed.Suppressions{{
				ID:            "implswitch",
				Location:      closed.Location{Pos: x.hostAt},
				Justification: "every variant of closed type p.T is handled",
			}},
		},
		{
			Analyzer:    sw,
			Package:     x.pkg,
			IsRoot:      true,
			Diagnostics: []analysis.Diagnostic{swDiag},
		},
		{
			Analyzer:    sw,
			Package:     x.test,
			IsRoot:      true,
			Diagnostics: []analysis.Diagnostic{swDiag},
		},
	}}
}

func TestCollect(t *testing.T) {
	x := newFixture()
	got, err := report.Collect(x.graph(), suppressor)
	require.NoError(t, err)

	want := []report.Finding{
		{
			Position: x.swPos,
			Category: "CL0001",
			Severity: closed.SeverityError,
			Message:  "dispatch over closed type p.T is not exhaustive: missing B",
			Fixes:    []string{"Add cases for missing variants\n\ta.go:1:6:\n\t+ case B:"},
		},
		{
			Position:   x.hostPos,
			Category:   "implswitch",
			Severity:   closed.SeverityWarning,
			Message:    "type switch on T is missing cases for c",
			Suppressed: "every variant of closed type p.T is handled",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Collect mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectErrors(t *testing.T) {
	x := newFixture()
	g := x.graph()
	boom := errors.New("boom")
	g.Roots = append(g.Roots, &checker.Action{Analyzer: sw, Package: x.pkg, IsRoot: true, Err: boom})

	fs, err := report.Collect(g, suppressor)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, fs, 2)
}

func TestPrint(t *testing.T) {
	x := newFixture()
	fs, err := report.Collect(x.graph(), suppressor)
	require.NoError(t, err)

	var buf bytes.Buffer
	n := report.Print(&buf, fs, report.Options{})
	assert.Equal(t, 1, n)
	assert.Equal(t, "a.go:1:6: error [CL0001] dispatch over closed type p.T is not exhaustive: missing B\n", buf.String())

	buf.Reset()
	n = report.Print(&buf, fs, report.Options{ShowSuppressed: true, ShowFixes: true})
	assert.Equal(t, 1, n)
	assert.Equal(t, "a.go:1:6: error [CL0001] dispatch over closed type p.T is not exhaustive: missing B\n"+
		"\tfix: Add cases for missing variants\n\ta.go:1:6:\n\t+ case B:\n"+
		"a.go:2:3: warning [implswitch] type switch on T is missing cases for c (suppressed: every variant of closed type p.T is handled)\n",
		buf.String())
}

func TestStats(t *testing.T) {
	x := newFixture()
	fs, err := report.Collect(x.graph(), suppressor)
	require.NoError(t, err)

	st := report.NewStats()
	st.Packages(2)
	st.Add(fs...)

	var buf bytes.Buffer
	st.Write(&buf)
	out := buf.String()
	assert.Contains(t, out, "closed_packages_total 2\n")
	assert.Contains(t, out, `closed_findings_total{category="CL0001"} 1`)
	assert.Contains(t, out, `closed_suppressed_total{category="implswitch"} 1`)
}
