// wfcgen synthesizes textures from a single example image: it learns
// overlapping pixel patterns from the input and collapses them into a
// new image of the requested size.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Logger()

var rootCmd = &cobra.Command{
	Use:           "wfcgen",
	Short:         "Texture synthesis from a single example image",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("wfcgen failed")
		os.Exit(1)
	}
}
