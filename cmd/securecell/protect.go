package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/backkem/securecell/pkg/securecell"
)

var (
	protectInFile      string
	protectOutCtxFile  string
	protectOutDataFile string
)

var protectCmd = &cobra.Command{
	Use:   "protect",
	Short: "Encrypt a file in token-protect (unauthenticated, split-output) mode",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return loadGlobalConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		master, err := resolveMasterSecret()
		if err != nil {
			return err
		}
		plaintext, err := os.ReadFile(protectInFile)
		if err != nil {
			return fmt.Errorf("reading input file: %w", err)
		}

		ctx, ciphertext, err := securecell.Protect(master, plaintext, nil)
		if err != nil {
			recordAudit("protect", err)
			return err
		}
		recordAudit("protect", nil)

		if err := writeOutput(protectOutCtxFile, []byte(ctx)); err != nil {
			return err
		}
		return writeOutput(protectOutDataFile, ciphertext)
	},
}

func init() {
	protectCmd.Flags().StringVar(&protectInFile, "in", "", "plaintext input file (required)")
	protectCmd.Flags().StringVar(&protectOutCtxFile, "out-context", "", "where to write the protected context, base64-encoded (required)")
	protectCmd.Flags().StringVar(&protectOutDataFile, "out", "", "where to write the ciphertext, base64-encoded (required)")
	_ = protectCmd.MarkFlagRequired("in")
	_ = protectCmd.MarkFlagRequired("out-context")
	_ = protectCmd.MarkFlagRequired("out")
}
