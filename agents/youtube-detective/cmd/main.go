package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	youtubedetective "video-detective/agents/youtube-detective"
	"video-detective/agents/youtube-detective/youtube"
	"video-detective/shared/ai"
	"video-detective/shared/config"
	"video-detective/shared/logging"
	"video-detective/shared/monitoring"
	"video-detective/shared/scheduler"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "video-detective",
		Short:         "Detective Jaime, the YouTube investigator bot",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the Telegram bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "investigate <youtube-url>",
		Short: "Investigate a single link and print the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInvestigate(cmd.Context(), cmd, args[0])
		},
	})

	return rootCmd
}

// setup loads configuration and builds the pipeline shared by both commands.
func setup(ctx context.Context, opts ...config.LoadOption) (*config.Config, *monitoring.Monitor, *youtubedetective.Detective, error) {
	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logging.Configure(logging.Config{Level: cfg.LogLevel})

	ytClient, err := youtube.NewClient(ctx, &cfg.YouTube)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create YouTube client: %w", err)
	}

	analyzer, err := ai.NewAnalyzer(ctx, &cfg.AI)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create AI analyzer: %w", err)
	}

	monitor := monitoring.NewMonitor()
	return cfg, monitor, youtubedetective.NewDetective(ytClient, analyzer, monitor), nil
}

func runServe(parent context.Context) error {
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, monitor, detective, err := setup(ctx)
	if err != nil {
		return err
	}
	logger := logging.WithComponent("main")

	if err := tgbotapi.SetLogger(youtubedetective.NewTelegramLogger(logging.WithComponent("telegram"))); err != nil {
		return fmt.Errorf("failed to set telegram logger: %w", err)
	}
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		return fmt.Errorf("failed to connect to Telegram: %w", err)
	}
	api.Debug = cfg.Telegram.Debug
	logger.Info().Str("bot", api.Self.UserName).Str("model", cfg.AI.Model).Msg("Telegram client initialized")

	monitoring.NewHealthServer(monitor, cfg.Monitoring.HealthPort).Start(ctx)

	stats := scheduler.New(cfg.Monitoring.StatsSchedule, monitoring.NewStatsJob(monitor))
	if err := stats.Start(ctx); err != nil {
		return fmt.Errorf("failed to start stats scheduler: %w", err)
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = cfg.Telegram.PollTimeoutSec
	updates := api.GetUpdatesChan(updateConfig)
	go func() {
		<-ctx.Done()
		api.StopReceivingUpdates()
	}()

	printBanner(detective.Name())

	youtubedetective.NewBot(api, detective, nil).Run(ctx, updates)
	logger.Info().Msg("Detective Jaime is off duty")
	return nil
}

func runInvestigate(parent context.Context, cmd *cobra.Command, link string) error {
	_, _, detective, err := setup(parent, config.WithoutTelegram())
	if err != nil {
		return err
	}

	report, err := detective.Investigate(parent, link, func(stage youtubedetective.Stage) {
		if stage == youtubedetective.StageAnalyzing {
			fmt.Fprintln(cmd.ErrOrStderr(), "🤖 Running analysis algorithms...")
		}
	})
	var invErr *youtubedetective.InvestigationError
	if errors.As(err, &invErr) {
		fmt.Fprintln(cmd.OutOrStdout(), invErr.UserMessage())
		return invErr
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), report)
	return nil
}

func printBanner(name string) {
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("🕵️ %s is active!\n", name)
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println("🐟 Status: Ready for investigations")
	fmt.Println("📋 Awaiting YouTube links...")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
}
