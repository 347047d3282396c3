package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hassan/scanner/internal/lexer"
	"github.com/hassan/scanner/internal/report"
)

var scanCmd = &cobra.Command{
	Use:   "scan <source-file>",
	Short: "Scan a source file and print the token listing",
	Long: "Read a mini-language source file, scan it, and print the tokens followed by\n" +
		"statistics, the symbol table, and the lexical error listing.",
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().Bool("tokens-only", false, "Print only the token listing")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	filename := args[0]
	verbose := viper.GetBool("verbose")
	tokensOnly, _ := cmd.Flags().GetBool("tokens-only")

	source, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading source file: %w", err)
	}

	scanner := lexer.New(string(source), filename)
	tokens := scanner.ScanTokens()

	if verbose {
		fmt.Fprintf(os.Stderr, "[scan] %s: %d tokens, %d lines, %d errors\n",
			filename, scanner.TotalTokens(), scanner.LinesProcessed(), scanner.Errors().Len())
	}

	report.Tokens(os.Stdout, tokens)

	if !tokensOnly {
		fmt.Println()
		report.Statistics(os.Stdout, scanner)
		fmt.Println()
		report.SymbolTable(os.Stdout, scanner.SymbolTable())
		fmt.Println()
		report.Errors(os.Stdout, scanner.Errors())
	}

	// A non-empty error list does not suppress the token listing, but it
	// does make the scan fail, compiler-style.
	if scanner.Errors().HasErrors() {
		return fmt.Errorf("%d lexical error(s) in %s", scanner.Errors().Len(), filename)
	}
	return nil
}
