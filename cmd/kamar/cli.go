package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/kamar"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Analyzer kamar.Analyzer
	History  kamar.AnalysisStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"c" type:"path" help:"Pipeline config file (default: $XDG_CONFIG_HOME/kamar/config.yaml)"`
	Cache   string `type:"path" help:"Page cache and history database (default: $XDG_CACHE_HOME/kamar/kamar.db)"`
	Verbose bool   `short:"v" help:"Log debug output to stderr"`

	Analyze AnalyzeCmd `cmd:"" help:"Analyze a keyword and print content suggestions"`
	Serve   ServeCmd   `cmd:"" help:"Serve the web form and JSON API"`
	History HistoryCmd `cmd:"" help:"List or show past analyses"`
	Version VersionCmd `cmd:"" help:"Print the version"`
}

// AnalyzerFlags configure how analyses are performed.
type AnalyzerFlags struct {
	Provider  string `enum:"google,bing" default:"google" help:"Search provider (google, bing)"`
	Pages     int    `short:"p" default:"3" help:"Result pages read for the outline (0 disables)"`
	Extractor string `enum:"trafilatura,readability" default:"trafilatura" help:"Main content extractor (trafilatura, readability)"`
	Converter string `enum:"text,markdown" default:"text" help:"Page text converter (text, markdown)"`
	Browser   string `enum:"off,auto" default:"off" help:"Re-fetch thin or failed pages with headless Chrome (off, auto)"`
	NoCache   bool   `help:"Bypass the page cache"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	Keyword string `arg:"" help:"Keyword to analyze"`
	Format  string `short:"f" enum:"text,json,markdown" default:"text" help:"Output format (text, json, markdown)"`

	AnalyzerFlags `embed:""`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:"127.0.0.1:8080" help:"Listen address"`

	AnalyzerFlags `embed:""`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	ID      string `arg:"" optional:"" help:"Analysis ID to show"`
	Keyword string `short:"k" help:"Only list analyses of this keyword"`
	Limit   int    `short:"n" default:"20" help:"Maximum number of analyses listed"`
	Format  string `short:"f" enum:"text,json,markdown" default:"text" help:"Output format for a single analysis (text, json, markdown)"`
}

// VersionCmd is the "version" subcommand.
type VersionCmd struct{}
