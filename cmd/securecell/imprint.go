package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/backkem/securecell/pkg/securecell"
)

var (
	imprintInFile      string
	imprintContextFile string
	imprintOutFile     string
)

var imprintCmd = &cobra.Command{
	Use:   "imprint",
	Short: "Encrypt a file in context-imprint (unauthenticated, single-output) mode",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return loadGlobalConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		master, err := resolveMasterSecret()
		if err != nil {
			return err
		}
		plaintext, err := os.ReadFile(imprintInFile)
		if err != nil {
			return fmt.Errorf("reading input file: %w", err)
		}
		context, err := os.ReadFile(imprintContextFile)
		if err != nil {
			return fmt.Errorf("reading context file: %w", err)
		}

		ciphertext, err := securecell.Imprint(master, plaintext, context)
		recordAudit("imprint", err)
		if err != nil {
			return err
		}
		return writeOutput(imprintOutFile, ciphertext)
	},
}

func init() {
	imprintCmd.Flags().StringVar(&imprintInFile, "in", "", "plaintext input file (required)")
	imprintCmd.Flags().StringVar(&imprintContextFile, "context", "", "associated context file, raw bytes (required)")
	imprintCmd.Flags().StringVar(&imprintOutFile, "out", "", "where to write the ciphertext, base64-encoded (required)")
	_ = imprintCmd.MarkFlagRequired("in")
	_ = imprintCmd.MarkFlagRequired("context")
	_ = imprintCmd.MarkFlagRequired("out")
}
