package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backkem/securecell/pkg/securecell"
)

var (
	unprotectInCtxFile  string
	unprotectInDataFile string
	unprotectOutFile    string
)

var unprotectCmd = &cobra.Command{
	Use:   "unprotect",
	Short: "Decrypt a file produced by protect",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return loadGlobalConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		master, err := resolveMasterSecret()
		if err != nil {
			return err
		}
		ctx, err := readInput(unprotectInCtxFile)
		if err != nil {
			return err
		}
		ciphertext, err := readInput(unprotectInDataFile)
		if err != nil {
			return err
		}

		plaintext, err := securecell.Unprotect(master, securecell.Context(ctx), ciphertext)
		recordAudit("unprotect", err)
		if err != nil {
			return fmt.Errorf("unprotect: %w", err)
		}
		return writeOutput(unprotectOutFile, plaintext)
	},
}

func init() {
	unprotectCmd.Flags().StringVar(&unprotectInCtxFile, "in-context", "", "protected context file, base64-encoded (required)")
	unprotectCmd.Flags().StringVar(&unprotectInDataFile, "in", "", "ciphertext input file, base64-encoded (required)")
	unprotectCmd.Flags().StringVar(&unprotectOutFile, "out", "", "where to write the recovered plaintext, base64-encoded (required)")
	_ = unprotectCmd.MarkFlagRequired("in-context")
	_ = unprotectCmd.MarkFlagRequired("in")
	_ = unprotectCmd.MarkFlagRequired("out")
}
