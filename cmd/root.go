package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fiveline",
	Short: "A five-line staff note editor",
	Long:  `fiveline places, edits and plays back notes on a rendered staff, in the terminal or over HTTP.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
