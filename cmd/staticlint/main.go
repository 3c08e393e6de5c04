// Package main implements the staticlint command, a multichecker-based
// static analysis tool for this repository. It aggregates standard
// analyzers from golang.org/x/tools, the staticcheck "SA" set and one
// "simple" analyzer from honnef.co/go/tools, and a local analyzer that
// forbids direct os.Exit calls in main.
//
// Usage:
//
//  1. Install the tool:
//     go install ./cmd/staticlint
//
//  2. Run it on the packages:
//     staticlint ./...
package main

import (
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unusedresult"

	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
)

func main() {
	analyzers := []*analysis.Analyzer{
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
		nilness.Analyzer,
		unusedresult.Analyzer,
		ExitMainAnalyzer,
	}

	for _, la := range staticcheck.Analyzers {
		if strings.HasPrefix(la.Analyzer.Name, "SA") {
			analyzers = append(analyzers, la.Analyzer)
		}
	}

	analyzers = append(analyzers, simple.Analyzers[1].Analyzer)

	multichecker.Main(analyzers...)
}
