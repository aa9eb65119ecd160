// Command closed-explorer analyzes packages and prints their closed types to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"go/types"
	"log"
	"os"

	"golang.org/x/tools/go/packages"

	"github.com/sumcheck/closed"
	"github.com/sumcheck/closed/cmds/internal/closedutil"
	"github.com/sumcheck/closed/gosym"
)

func failOn(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

var (
	opts  gosym.Options
	only  = flag.String("type", "", "only print the closed type with this `name`")
	tests = flag.Bool("tests", false, "include test files")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("closed-explorer: ")

	opts.Bind(flag.CommandLine)
	flag.Parse()

	pkgs, err := closedutil.Load(context.Background(), *tests, flag.Args()...)
	failOn(err)

	if len(pkgs) == 1 {
		err := explore(pkgs[0].PkgPath, pkgs[0], skipImport)
		failOn(err)
		return
	}

	failed := false
	for _, p := range pkgs {
		err := explore(p.ID, p, showImportsAndIndent)
		if err != nil {
			log.Print(err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

type showImport bool

const (
	skipImport           showImport = false
	showImportsAndIndent showImport = true
)

func explore(id string, p *packages.Package, showImport showImport) error {
	ind := func() {
		if showImport {
			fmt.Print("\t")
		}
	}

	g, err := closedutil.Graph(p, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", id, err)
	}

	hs := closedutil.Hierarchies(g)
	if *only != "" {
		tn, ok := g.Package().Scope().Lookup(*only).(*types.TypeName)
		if !ok {
			return fmt.Errorf("%s: no type %s", id, *only)
		}
		h := closedutil.Find(tn, hs)
		if h == nil {
			return fmt.Errorf("%s: %s is not closed", id, *only)
		}
		hs = []*closed.Hierarchy{h}
	}

	if showImport {
		fmt.Printf("%s (%d)\n", id, len(hs))
	}

	for _, h := range hs {
		ind()
		fmt.Println("Closed iface:", h.Base.FullName())
		ind()
		fmt.Println("\tvariants:")
		for _, v := range h.Variants {
			ind()
			fmt.Printf("\t\t%s\n", types.TypeString(closedutil.VariantType(h.Base, v), types.RelativeTo(g.Package())))
		}

		tn, _ := gosym.TypeName(h.Base)
		if fms := g.FalseMembers(tn); len(fms) > 0 {
			ind()
			fmt.Println("\tfalse members:")
			for _, m := range fms {
				ind()
				fmt.Printf("\t\t%s\n", m.Name())
			}
		}

		if !closedutil.ExternallyExhaustible(h) {
			ind()
			fmt.Println("\tnot exhaustible outside its package")
		}
		fmt.Println()
	}
	return nil
}
