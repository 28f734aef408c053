// Package cli implements the chainfeed command-line interface.
package cli

import (
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"chainfeed/internal/config"
	"chainfeed/internal/eventbus"
	"chainfeed/internal/feed"
	"chainfeed/internal/ui"
)

var (
	// Global flags
	configPath string
	endpoint   string
	limit      int
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "chainfeed [account]",
	Short: "Browse the on-chain activity of an account in the terminal",
	Long: `Chainfeed looks up the recent on-chain activities of a blockchain
account through the RSS3 data API and shows them as a scrollable list.

Type an account address and press enter, or pass the account as an
argument to look it up immediately:

  chainfeed 0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.Flags().StringVar(&endpoint, "endpoint", "", "activity API endpoint (overrides config)")
	rootCmd.Flags().IntVar(&limit, "limit", 0, "number of activities to fetch (overrides config)")
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func run(cmd *cobra.Command, args []string) error {
	// Set up logging; stdout belongs to the TUI renderer
	logFile, err := os.OpenFile("chainfeed.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	var cfg *config.Config
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flag overrides
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if limit > 0 {
		cfg.Limit = limit
	}

	// Diagnostic logging for the fetch lifecycle
	bus.Subscribe(eventbus.EventQuerySubmitted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.QuerySubmittedEvent); ok {
			log.Printf("Query submitted: %s (seq %d)", event.Account, event.Seq)
		}
	})
	bus.Subscribe(eventbus.EventActivitiesLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ActivitiesLoadedEvent); ok {
			log.Printf("Loaded %d activities for %s", event.Count, event.Account)
		}
	})
	bus.Subscribe(eventbus.EventFetchFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FetchFailedEvent); ok {
			log.Printf("Fetch failed for %s: %v", event.Account, event.Err)
		}
	})

	// Build client and UI model
	client := feed.NewClient(feed.Options{
		Endpoint:       cfg.Endpoint,
		RequestTimeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
		RatePerSecond:  cfg.RatePerSecond,
		Burst:          cfg.Burst,
	})

	model := ui.NewModel(bus, client, cfg.Limit, time.Duration(cfg.RequestTimeoutSeconds)*time.Second)
	if len(args) > 0 {
		model.SetInitialQuery(args[0])
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}

	return nil
}
