package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ajugbo/aiq-platform/internal/config"
	"github.com/Ajugbo/aiq-platform/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "aiq",
	Short: "Measure how well you work with AI",
	Long: "AIQ scores free-text answers to five questions on clarity, depth, efficiency and creativity,\n" +
		"records the result with a certificate code and verifies codes later.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("store", "", "Result store backend: memory, file, sqlite or redis (overrides AIQ_STORE)")
	pf.String("db", "", "Path to SQLite database file (overrides AIQ_DB)")
	pf.String("file", "", "Path to JSON result file (overrides AIQ_FILE)")
	pf.String("redis-addr", "", "Redis address host:port (overrides AIQ_REDIS_ADDR)")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(resultCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies any flags set on cmd.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	if s, _ := cmd.Flags().GetString("store"); s != "" {
		b, err := config.ParseBackend(s)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Store.Backend = b
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.Store.DBPath = p
	}
	if p, _ := cmd.Flags().GetString("file"); p != "" {
		cfg.Store.FilePath = p
	}
	if a, _ := cmd.Flags().GetString("redis-addr"); a != "" {
		cfg.Store.RedisAddr = a
	}
	return cfg, nil
}

// openStore resolves configuration and opens the selected backend.
func openStore(cmd *cobra.Command) (store.ResultStore, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, config.Config{}, err
	}
	s, err := store.Open(cmd.Context(), cfg.Store)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("open %s store: %w", cfg.Store.Backend, err)
	}
	return s, cfg, nil
}
