package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"voicerelay/internal/cli/scheme/colours"
	"voicerelay/internal/config"
	"voicerelay/internal/speech/studio"
)

func main() {

	config.SetDefaults()

	cfg, err := config.Load()
	if err != nil {
		colours.Error.Printf("❌ Error: %v\n", err)
		os.Exit(1)
	}
	config.SetupLogging(cfg.Logging)

	ctx := context.Background()
	app, err := studio.New(ctx, cfg)
	if err != nil {
		colours.Error.Printf("❌ Error: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		app.Stop()
		fmt.Println("\n" + colours.Warning.Sprint("👋 Phir milenge! See you soon! 🙏"))
		os.Exit(0)
	}()

	rootCmd := &cobra.Command{
		Use:   "voicerelay",
		Short: "🎙️ One phrase, eleven Indian languages",
		Long: `
┌─────────────────────────────────────┐
│  🎙️ Welcome to Voice Relay! 🌏      │
│  One phrase, eleven languages       │
│  Spoken one after another 🔊        │
└─────────────────────────────────────┘

Voice Relay plays a phrase in Hindi, Bengali, Tamil, Telugu, Gujarati,
Kannada, Malayalam, Marathi, Punjabi, Odia and English, in turn.
		`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			app.ShowWelcome()
		},
	}

	app.AddCommands(rootCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		colours.Error.Printf("❌ Error: %v\n", err)
		app.Close()
		os.Exit(1)
	}
}
