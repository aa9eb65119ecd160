package gosym

import (
	"flag"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/sumcheck/closed"
)

// Options control which declarations are closed and which files are checked.
type Options struct {
	// Marker is the directive, without the leading //, that marks a closed type.
	Marker string
	// Generated includes files with a "Code generated ... DO NOT EDIT." header.
	Generated bool
	// Exclude are doublestar patterns of files to skip.
	Exclude []string
}

// Bind registers the options as flags in fs.
func (o *Options) Bind(fs *flag.FlagSet) {
	if o.Marker == "" {
		o.Marker = closed.DefaultMarker
	}
	fs.StringVar(&o.Marker, "marker", o.Marker, "`directive` that marks a closed type")
	fs.BoolVar(&o.Generated, "generated", o.Generated, "also check generated files")
	fs.Var((*patterns)(&o.Exclude), "exclude", "comma-separated doublestar `patterns` of files to skip; repeatable, empty clears")
}

func (o *Options) marker() string {
	if o.Marker == "" {
		return closed.DefaultMarker
	}
	return o.Marker
}

// patterns is a flag.Value of glob patterns.
// Each Set adds to the list and an empty Set clears it.
type patterns []string

func (p *patterns) String() string {
	if p == nil {
		return ""
	}
	return strings.Join(*p, ",")
}

func (p *patterns) Set(s string) error {
	if strings.TrimSpace(s) == "" {
		*p = nil
		return nil
	}
	var acc []string
	for _, pat := range splitPatterns(s) {
		pat = strings.TrimSpace(pat)
		if pat == "" {
			continue
		}
		if !doublestar.ValidatePattern(pat) {
			return fmt.Errorf("bad exclude pattern %q", pat)
		}
		acc = append(acc, pat)
	}
	*p = append(*p, acc...)
	return nil
}

// splitPatterns splits s on the commas outside of {...} and [...]
// so alternations like **/{gen,mock}/*.go stay whole.
func splitPatterns(s string) []string {
	var acc []string
	braces, inClass, start := 0, false, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\\':
			i++
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
		case c == '{':
			braces++
		case c == '}' && braces > 0:
			braces--
		case c == ',' && braces == 0:
			acc = append(acc, s[start:i])
			start = i + 1
		}
	}
	return append(acc, s[start:])
}

// excluded reports whether filename matches any of pats.
// Patterns are matched against the slash separated path
// and against the base name.
func excluded(pats []string, filename string) bool {
	path := strings.ReplaceAll(filename, "\\", "/")
	base := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		base = path[i+1:]
	}
	for _, pat := range pats {
		if ok, _ := doublestar.Match(pat, path); ok {
			return true
		}
		if ok, _ := doublestar.Match(pat, base); ok {
			return true
		}
	}
	return false
}
