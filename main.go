// code-audit: static code-audit toolkit.
//
// Four stateless operations over Python source and dependency manifests:
// quality analysis, documentation generation, vulnerability scanning, and
// unit-test skeleton generation. Available as CLI subcommands or as MCP
// tools over stdio for LLM orchestrators.
//
// Usage:
//
//	code-audit quality <file.py>
//	code-audit docs <file.py>
//	code-audit scan [-db table.yaml] <requirements.txt>
//	code-audit testgen <file.py> <function>
//	code-audit serve [-db table.yaml]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/hannajonsd/code-audit/audit"
	"github.com/hannajonsd/code-audit/mcptools"
	"github.com/hannajonsd/code-audit/vulnscan"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "quality":
		err = runQuality(os.Args[2:])
	case "docs":
		err = runDocs(os.Args[2:])
	case "scan":
		err = runScan(os.Args[2:])
	case "testgen":
		err = runTestGen(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runQuality(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: code-audit quality <file.py>")
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}

	return printJSON(audit.New().AnalyzeQuality(string(source)))
}

func runDocs(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: code-audit docs <file.py>")
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}

	return printJSON(audit.New().GenerateDocumentation(string(source), args[0]))
}

func runScan(args []string) error {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	dbPath := fs.String("db", "", "Path to a YAML vulnerability table (default: built-in)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: code-audit scan [-db table.yaml] <manifest>")
	}

	db, err := loadDatabase(*dbPath)
	if err != nil {
		return err
	}

	manifest, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("failed to read manifest %s: %w", fs.Arg(0), err)
	}

	return printJSON(vulnscan.New(db).Scan(string(manifest)))
}

func runTestGen(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: code-audit testgen <file.py> <function>")
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}

	return printJSON(audit.New().GenerateTestSkeleton(string(source), args[1]))
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	dbPath := fs.String("db", "", "Path to a YAML vulnerability table (default: built-in)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	db, err := loadDatabase(*dbPath)
	if err != nil {
		return err
	}

	// Stdio transport: stdout carries the protocol, so nothing else may
	// print there while serving.
	return server.ServeStdio(mcptools.NewServer(db))
}

func loadDatabase(path string) (vulnscan.Database, error) {
	if path == "" {
		return nil, nil // scanner falls back to the built-in table
	}
	return vulnscan.LoadDatabase(path)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `code-audit — static code audit toolkit

Usage:
  code-audit quality <file.py>                   Analyze code quality
  code-audit docs <file.py>                      Generate markdown documentation
  code-audit scan [-db table.yaml] <manifest>    Scan dependencies for known vulnerabilities
  code-audit testgen <file.py> <function>        Generate a unit-test skeleton
  code-audit serve [-db table.yaml]              Start the MCP server (stdio transport)
`)
}
