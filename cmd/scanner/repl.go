package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/hassan/scanner/internal/lexer"
	"github.com/hassan/scanner/internal/report"
)

const (
	historyFile = ".scanner_history"
	promptMain  = "==> "
	replName    = "repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Scan lines interactively",
	Long: "Read lines from the terminal and scan each one independently, printing the\n" +
		"tokens and any lexical errors. Type :quit or press Ctrl+D to exit.",
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		f.Close()
	}

	fmt.Println("mini-language scanner REPL")
	fmt.Println("Ctrl+C cancels input, Ctrl+D exits. Type :quit to exit.")

	for {
		line, err := ln.Prompt(promptMain)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err == io.EOF {
			fmt.Println()
			break
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" {
			break
		}
		ln.AppendHistory(line)

		// Each line is its own buffer: a fresh scanner means no token,
		// symbol, or error state leaks between inputs.
		scanner := lexer.New(line, replName)
		tokens := scanner.ScanTokens()

		report.Tokens(os.Stdout, tokens)
		if scanner.Errors().HasErrors() {
			report.Errors(os.Stdout, scanner.Errors())
		}
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		f.Close()
	}
	return nil
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}
