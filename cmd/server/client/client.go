// Package client provides commands that talk to a running rando-api server
package client

import (
	"net/http"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

var (
	colorStatus = color.Style{color.FgCyan}
	colorDone   = color.Style{color.FgGreen, color.OpBold}
	colorFailed = color.Style{color.FgRed, color.OpBold}
	colorSubtle = color.Style{color.FgGray}
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the generation API",
	Long:  `Client commands submit generations to a running server and save the results.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "http://localhost:8000", "Generation server base URL")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Minute, "How long to wait for a seed")

	ClientCmd.AddCommand(generateCmd)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}
