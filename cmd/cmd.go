package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/docuflow/docuflow-cli/internal"
	"github.com/docuflow/docuflow-cli/pkg/logger"
)

var (
	cfgFile     string
	baseURLFlag string
)

var rootCmd = &cobra.Command{
	Use:   "docuflow",
	Short: "Docuflow document management",
	Long:  `Command-line client for the Docuflow document-management backend: upload and analyze documents, route them to departments, and track completion.`,

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cmd.SetContext(logger.With(cmd.Context(), "command", cmd.Name()))
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func loadConfig() (*internal.Config, error) {
	// .env is optional; real settings come from config file and environment
	_ = godotenv.Load()

	v := viper.New()
	defaults := internal.DefaultConfig()
	v.SetDefault("api.base_url", defaults.API.BaseURL)
	v.SetDefault("api.timeout", defaults.API.Timeout)
	v.SetDefault("session.file", defaults.Session.File)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".docuflow"))
		}
	}

	v.SetEnvPrefix("DOCUFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg internal.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if baseURLFlag != "" {
		cfg.API.BaseURL = baseURLFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	return &cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./config.yml or ~/.docuflow/config.yml)")
	rootCmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "backend base URL (overrides config)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(resetPasswordCmd)
	rootCmd.AddCommand(documentsCmd)
	rootCmd.AddCommand(departmentsCmd)
	rootCmd.AddCommand(employeesCmd)
	rootCmd.AddCommand(myDocumentsCmd)
	rootCmd.AddCommand(analyzeTextCmd)
}
