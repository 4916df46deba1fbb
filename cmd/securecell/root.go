// Package main implements the securecell command-line tool, a thin
// driver over package securecell for sealing, protecting, and
// imprinting files from the shell.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"hermannm.dev/devlog"
)

var (
	masterSecretPath string
	passphrase       string
	passphraseSalt   string
	debug            bool
	logLevel         slog.LevelVar
	auditDBPath      string
)

var rootCmd = &cobra.Command{
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Use:   "securecell",
	Short: "Seal, protect, and imprint data with a symmetric master secret",
	Long: `securecell drives the three secure cell container modes from the
command line: seal (authenticated), protect (token-protect,
unauthenticated split output), and imprint (context-imprint,
unauthenticated single output).

The master secret is never accepted as a bare flag value: supply it
either as a file (--master-secret-file) or derive one from a
passphrase (--passphrase, --passphrase-salt) using PBKDF2. The
passphrase path is a CLI-only convenience, not a substitute for real
key management.
`,
}

// Execute adds all child commands to the root command and runs it.
// Called once by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	slog.SetDefault(slog.New(devlog.NewHandler(os.Stdout, &devlog.Options{
		Level: &logLevel,
	})))

	rootCmd.PersistentFlags().Bool("debug", false, "print debug-level diagnostics")
	rootCmd.PersistentFlags().String("master-secret-file", "", "path to a file holding the raw master secret")
	rootCmd.PersistentFlags().String("passphrase", "", "derive the master secret from this passphrase instead of a file")
	rootCmd.PersistentFlags().String("passphrase-salt", "", "salt for --passphrase derivation (required when --passphrase is set)")
	rootCmd.PersistentFlags().String("audit-db", "", "path to a sqlite database recording non-sensitive operation metadata; skipped if empty")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("master-secret-file", rootCmd.PersistentFlags().Lookup("master-secret-file"))
	_ = viper.BindPFlag("passphrase", rootCmd.PersistentFlags().Lookup("passphrase"))
	_ = viper.BindPFlag("passphrase-salt", rootCmd.PersistentFlags().Lookup("passphrase-salt"))
	_ = viper.BindPFlag("audit-db", rootCmd.PersistentFlags().Lookup("audit-db"))

	rootCmd.AddCommand(sealCmd)
	rootCmd.AddCommand(unsealCmd)
	rootCmd.AddCommand(protectCmd)
	rootCmd.AddCommand(unprotectCmd)
	rootCmd.AddCommand(imprintCmd)
	rootCmd.AddCommand(unimprintCmd)
	rootCmd.AddCommand(batchCmd)
}

// loadGlobalConfig reads the persistent flags through viper and
// enables debug logging. It's called from each subcommand's PreRunE
// rather than a single package init so tests can exercise subcommands
// with distinct flag values without viper's global state bleeding
// across them.
func loadGlobalConfig() error {
	debug = viper.GetBool("debug")
	if debug {
		logLevel.Set(slog.LevelDebug)
	}
	masterSecretPath = viper.GetString("master-secret-file")
	passphrase = viper.GetString("passphrase")
	passphraseSalt = viper.GetString("passphrase-salt")
	auditDBPath = viper.GetString("audit-db")

	if masterSecretPath == "" && passphrase == "" {
		return fmt.Errorf("one of --master-secret-file or --passphrase is required")
	}
	if passphrase != "" && passphraseSalt == "" {
		return fmt.Errorf("--passphrase-salt is required when --passphrase is set")
	}
	return nil
}
