package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"galadeck/internal/cli/scheme/colours"
	"galadeck/internal/config"
	"galadeck/internal/show"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {

	config.SetDefaults()
	if err := config.ReadInConfig(); err != nil {
		colours.Error.Printf("❌ Bad config file: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		colours.Error.Printf("❌ Bad config: %v\n", err)
		os.Exit(1)
	}

	if lvl, err := logrus.ParseLevel(cfg.LogLvl); err == nil {
		logrus.SetLevel(lvl)
	}

	app, err := show.NewGala(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to start galadeck")
	}

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		app.Close()
		fmt.Println("\n" + colours.Warning.Sprint("👋 Goodbye! See you next year! 🎆"))
		os.Exit(0)
	}()

	rootCmd := &cobra.Command{
		Use:   "galadeck",
		Short: "🎉 Presenter for the class gala",
		Long: `
┌─────────────────────────────────────┐
│  🎉 Welcome to GalaDeck! 🎆         │
│  Slides, a quiz board and credits   │
│  for the New Year gala              │
└─────────────────────────────────────┘

GalaDeck runs the gala slide show from your terminal, with a quiz board
round in the middle and music for the closing credits.
		`,
		Run: func(cmd *cobra.Command, args []string) {
			app.ShowWelcome()
		},
	}

	// Present command
	presentCmd := &cobra.Command{
		Use:   "present",
		Short: "🎬 Run the show",
		Long:  "Present the deck interactively. Type 'help' at the prompt for the controls.",
		Run:   app.Present,
	}

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "📋 List every slide",
		Long:  "Display the deck with slide ids, kinds and quiz roles",
		Run:   app.ListSlides,
	}

	// Reset command
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "🧹 Forget every edit",
		Long:  "Delete the saved slides and closing track and go back to the built-in show",
		Run:   app.Reset,
	}

	// Scale command
	scaleCmd := &cobra.Command{
		Use:   "scale WIDTH HEIGHT",
		Short: "📐 Preview the canvas scale",
		Long:  "Show how the fixed canvas fits a screen of the given size",
		Args:  cobra.ExactArgs(2),
		Run:   app.PreviewScale,
	}

	// Add flags
	presentCmd.Flags().IntP("rows", "r", 0, "Terminal height used to centre the credits")

	rootCmd.AddCommand(presentCmd, listCmd, resetCmd, scaleCmd)

	// Add edit and audio commands
	app.AddEditCommands(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		colours.Error.Printf("❌ Error: %v\n", err)
		app.Close()
		os.Exit(1)
	}
	app.Close()
}
