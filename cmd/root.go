package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nexmo-community/nexmo-go/auth"
	"github.com/nexmo-community/nexmo-go/config"
	"github.com/nexmo-community/nexmo-go/nexmo"
	"github.com/nexmo-community/nexmo-go/rest"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *nexmo.Client

	buildVersion = "dev"
	buildTime    = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nexmo",
	Short: "A developer CLI for the Nexmo APIs",
	Long: `nexmo is a command-line companion to the nexmo-go client library.
It reads credentials from a config file or the NEXMO_* environment
variables and exposes the account, messaging, verification, number,
and application APIs for quick inspection and testing.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion records build metadata injected by the linker.
func SetVersion(version, built string) {
	buildVersion = version
	buildTime = built
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, built)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	creds, err := cfg.Credentials()
	if err != nil {
		return fmt.Errorf("failed to build credentials: %w", err)
	}

	var opts []rest.Option
	if cfg.App.Name != "" {
		opts = append(opts, rest.WithAppInfo(cfg.App.Name, cfg.App.Version))
	}

	client, err = nexmo.New(creds, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// balanceCmd represents the balance command
var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the current account balance",
	RunE:  runBalance,
}

func runBalance(cmd *cobra.Command, args []string) error {
	balance, err := client.Account.GetBalance(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Balance: €%.4f\n", balance.Value)
	fmt.Printf("Auto-reload: %s\n", boolToStatus(balance.AutoReload))
	return nil
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the configured credentials",
	Long:  `Check which authentication methods the configured credentials support and verify key/secret access against the API.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	creds := client.Transport().Credentials()

	fmt.Println("Credential capabilities:")
	for _, m := range supportedMethods() {
		fmt.Printf("  • %-10s %s\n", m.name, boolToStatus(creds.Supports(m.method)))
	}

	selected, err := creds.Select()
	if err != nil {
		return err
	}
	fmt.Printf("\nPreferred method: %s\n", selected)
	fmt.Printf("User agent: %s\n", client.Transport().UserAgent())

	if balance, err := client.Account.GetBalance(context.Background()); err == nil {
		fmt.Printf("\n✓ Connection successful! Balance: €%.4f\n", balance.Value)
	} else {
		fmt.Printf("\nBalance check skipped: %v\n", err)
	}

	return nil
}

type namedMethod struct {
	name   string
	method auth.Method
}

func supportedMethods() []namedMethod {
	return []namedMethod{
		{"jwt", auth.MethodJWT},
		{"signature", auth.MethodSignature},
		{"key-secret", auth.MethodKeySecret},
	}
}

func boolToStatus(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
