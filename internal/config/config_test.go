package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumcheck/closed/gosym"
	"github.com/sumcheck/closed/internal/config"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want *config.Config
	}{
		{
			name: "empty",
			in:   "",
			want: &config.Config{Marker: "closed:union"},
		},
		{
			name: "full",
			in: `marker: "//sumtype:decl"
generated: true
exclude:
  - "**/*_gen.go"
  - "internal/fake/**"
tests: true
show_suppressed: true
`,
			want: &config.Config{
				Marker:         "sumtype:decl",
				Generated:      true,
				Exclude:        []string{"**/*_gen.go", "internal/fake/**"},
				Tests:          true,
				ShowSuppressed: true,
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := config.Decode(strings.NewReader(c.in))
			require.NoError(t, err)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("Decode mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, in := range []string{
		"markers: closed:union\n",
		"marker: closed union\n",
		"marker: nocolon\n",
		"exclude: 3\n",
	} {
		_, err := config.Decode(strings.NewReader(in))
		assert.Error(t, err, in)
	}
}

func TestLoadAndFind(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	_, ok := config.Find(sub)
	assert.False(t, ok)

	p := filepath.Join(root, config.FileName)
	require.NoError(t, os.WriteFile(p, []byte("generated: true\n"), 0o644))

	found, ok := config.Find(sub)
	require.True(t, ok)
	assert.Equal(t, p, found)

	c, err := config.Load(found)
	require.NoError(t, err)
	assert.True(t, c.Generated)
	assert.Equal(t, p, c.Path)

	_, err = config.Load(filepath.Join(root, "missing.yaml"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	var opts gosym.Options
	fs := flag.NewFlagSet("closedfact", flag.ContinueOnError)
	opts.Bind(fs)

	c := &config.Config{
		Marker:    "sumtype:decl",
		Generated: true,
		Exclude:   []string{"**/*_gen.go", "x/*.go"},
	}
	require.NoError(t, c.Apply(fs))

	want := gosym.Options{
		Marker:    "sumtype:decl",
		Generated: true,
		Exclude:   []string{"**/*_gen.go", "x/*.go"},
	}
	if diff := cmp.Diff(want, opts); diff != "" {
		t.Errorf("Apply mismatch (-want +got):\n%s", diff)
	}

	c.Exclude = []string{"**/{gen,mock}/*.go"}
	require.NoError(t, c.Apply(fs))
	assert.Equal(t, []string{"**/{gen,mock}/*.go"}, opts.Exclude, "applying again replaces the patterns")

	c.Exclude = []string{"[a-"}
	assert.Error(t, c.Apply(fs))
}

func TestLoadBracePattern(t *testing.T) {
	p := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(p, []byte("exclude: [\"**/{gen,mock}/*.go\"]\n"), 0o644))

	c, err := config.Load(p)
	require.NoError(t, err)

	var opts gosym.Options
	fs := flag.NewFlagSet("closedfact", flag.ContinueOnError)
	opts.Bind(fs)
	require.NoError(t, c.Apply(fs))
	assert.Equal(t, []string{"**/{gen,mock}/*.go"}, opts.Exclude)
}
