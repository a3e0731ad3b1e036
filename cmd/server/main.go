// Package main is the entry point for the rando-api server and its tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/junglerando/rando-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rando-api",
	Short: "Randomizer seed generation server",
	Long:  `rando-api generates randomized seeds on a worker pool and serves them as zipped ROM patches over HTTP.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(pricesCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
