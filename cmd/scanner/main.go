// Command scanner is the CLI front end for the lexical scanner. It scans
// source files of the mini language (uppercase-start identifiers, "##"
// comments, signed numeric literals) and prints token listings, statistics,
// the symbol table, and lexical errors.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
