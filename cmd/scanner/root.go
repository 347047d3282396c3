package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "scanner",
	Short: "Lexical scanner for the mini language",
	Long: "scanner tokenizes mini-language source files, reporting the token stream,\n" +
		"per-type statistics, the identifier symbol table, and classified lexical errors.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	viper.SetEnvPrefix("SCANNER")
	viper.AutomaticEnv()
}
