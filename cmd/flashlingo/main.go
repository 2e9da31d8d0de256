// Package main provides the flashlingo binary: a command line client for the
// FlashLingo language-learning service.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "flashlingo"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var flags appFlags

	cmd := &cobra.Command{
		Use:   appName,
		Short: "FlashLingo command line client",
		Long: `Flashlingo is a command line client for the FlashLingo
language-learning flashcard service.

It keeps a login session on disk, gates admin commands by role, and talks to
the FlashLingo REST API for flashcards, catalogs, word import, and the
waitlist.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flags.tokenFile, "token-file", "", "Path of the stored session token (default: user config dir)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		loginCmd(&flags),
		logoutCmd(&flags),
		whoamiCmd(&flags),
		cardsCmd(&flags),
		catalogsCmd(&flags),
		importCmd(&flags),
		waitlistCmd(&flags),
		usersCmd(&flags),
		versionCmd(),
	)

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	}
}
