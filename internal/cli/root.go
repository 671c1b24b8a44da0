package cli

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/voxa-ai/voxa-go/internal/config"
	"github.com/voxa-ai/voxa-go/voxa"
)

var (
	cfgPath string
	isDebug bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "voxa",
	Short: "Voxa text-to-speech CLI",
	Long: `voxa drives the Voxa text-to-speech API: streaming synthesis,
async generation jobs, voice listing and reference audio uploads.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "voxa.yaml", "config file (default is voxa.yaml)")
	rootCmd.PersistentFlags().BoolVar(&isDebug, "debug", false, "enable debug logging")
	rootCmd.AddCommand(speakCmd, voicesCmd, uploadCmd, accountCmd, jobsCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	var err error
	cfg, err = config.Load(cfgPath)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if isDebug || cfg.Logging.Level == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
	})))

	return nil
}

func newClient() (*voxa.Client, error) {
	return voxa.New(voxa.Config{
		APIKey:       cfg.API.Key,
		BaseURL:      cfg.API.BaseURL,
		Timeout:      cfg.API.Timeout(),
		MaxRetries:   cfg.API.MaxRetries,
		PollInterval: cfg.API.PollInterval(),
	})
}
