// Command composer is an interactive demo of the composition session
// library: a terminal message composer with three variants (channel post,
// thread reply, message edit) submitting into a local transcript.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/messagekit/composer/composer"
	"github.com/messagekit/composer/handler"
	"github.com/messagekit/composer/observability"
	"github.com/messagekit/composer/scope"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to composer config JSON file (optional)")
		variant    = flag.String("variant", "channel", "Composer variant: channel, thread, or edit")
		channel    = flag.String("channel", "general", "Channel identifier for channel/thread variants")
		thread     = flag.String("thread", "thread-1", "Thread identifier for the thread variant")
		message    = flag.String("message", "msg-1", "Message identifier for the edit variant")
		original   = flag.String("original", "", "Original content seeded by the edit variant")
		logFile    = flag.String("log", "", "Write structured logs to this file (default: discard)")
	)
	flag.Parse()

	// The TUI owns the terminal, so the default slog output goes to a file
	// or nowhere.
	logOut := io.Writer(io.Discard)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	// The registry captured the pre-redirect default logger at init.
	observability.RegisterObserver("slog", observability.NewSlogObserver(slog.Default()))

	transcript := newTranscript()
	if err := handler.Register("transcript", transcript.deliver); err != nil {
		log.Fatalf("Failed to register transcript handler: %v", err)
	}

	cfg, err := buildConfig(*configFile, *variant, *channel, *thread, *message, *original)
	if err != nil {
		log.Fatalf("Failed to build config: %v", err)
	}

	ctx := scope.Attach(context.Background(), scope.NewProvider(cfg))

	m := newModel(ctx, scope.Use(ctx), *variant, transcript)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("Composer demo failed: %v", err)
	}
}

// buildConfig assembles the variant's config: file config when given,
// defaults otherwise, with the variant identity stamped as bound extras.
func buildConfig(configFile, variant, channel, thread, message, original string) (*composer.Config, error) {
	var cfg *composer.Config
	if configFile != "" {
		loaded, err := composer.LoadConfig(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		defaults := composer.DefaultConfig()
		cfg = &defaults
	}

	if cfg.Handler == "" {
		cfg.Handler = "transcript"
	}

	if cfg.Extra == nil {
		cfg.Extra = make(map[string]any)
	}
	switch variant {
	case "channel":
		cfg.Extra[composer.ExtraChannel] = channel
	case "thread":
		cfg.Extra[composer.ExtraChannel] = channel
		cfg.Extra[composer.ExtraThread] = thread
	case "edit":
		cfg.Extra[composer.ExtraMessageID] = message
		cfg.Session.InitialContent = original
	default:
		return nil, fmt.Errorf("unknown variant %q (want channel, thread, or edit)", variant)
	}

	return cfg, nil
}
