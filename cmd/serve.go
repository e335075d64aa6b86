package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"fiveline/api"
	"fiveline/config"
)

var serveScoreName string

func init() {
	serveCmd.Flags().StringVar(&serveScoreName, "score", "", "saved score to serve")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the score and auth API over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}

		ed, err := buildEditor(cfg, serveScoreName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		srv := api.NewServer(ed, cfg.API.Users)
		fmt.Printf("fiveline api on %s\n", cfg.API.Addr)
		log.Fatal(srv.ListenAndServe(cfg.API.Addr))
	},
}
