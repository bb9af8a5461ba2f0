// Kommandolinjeverktøy som analyserer et lokalt repo og skriver resultatet
// som JSON til stdout. Nyttig for feilsøking og skripting uten server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jonmartinstorm/repodokka/internal/analyzer"
	"github.com/jonmartinstorm/repodokka/internal/logger"
)

func main() {
	debug := flag.Bool("debug", false, "slå på debug-logging")
	pretty := flag.Bool("pretty", true, "innrykk i JSON-utskriften")
	flag.Parse()

	logger.SetupLogger()
	logger.SetDebug(*debug)

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "bruk: %s [-debug] [-pretty] <sti-til-repo>\n", os.Args[0])
		os.Exit(2)
	}

	analysis, err := analyzer.Analyze(flag.Arg(0))
	if err != nil {
		slog.Error("Analysen feilet", "path", flag.Arg(0), "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(analysis); err != nil {
		slog.Error("Kunne ikke skrive resultatet", "error", err)
		os.Exit(1)
	}
}
