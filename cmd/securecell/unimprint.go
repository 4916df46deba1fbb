package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/backkem/securecell/pkg/securecell"
)

var (
	unimprintInFile      string
	unimprintContextFile string
	unimprintOutFile     string
)

var unimprintCmd = &cobra.Command{
	Use:   "unimprint",
	Short: "Decrypt a file produced by imprint",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return loadGlobalConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		master, err := resolveMasterSecret()
		if err != nil {
			return err
		}
		ciphertext, err := readInput(unimprintInFile)
		if err != nil {
			return err
		}
		context, err := os.ReadFile(unimprintContextFile)
		if err != nil {
			return fmt.Errorf("reading context file: %w", err)
		}

		plaintext, err := securecell.Unimprint(master, context, ciphertext)
		recordAudit("unimprint", err)
		if err != nil {
			return fmt.Errorf("unimprint: %w", err)
		}
		return writeOutput(unimprintOutFile, plaintext)
	},
}

func init() {
	unimprintCmd.Flags().StringVar(&unimprintInFile, "in", "", "ciphertext input file, base64-encoded (required)")
	unimprintCmd.Flags().StringVar(&unimprintContextFile, "context", "", "associated context file, raw bytes (required)")
	unimprintCmd.Flags().StringVar(&unimprintOutFile, "out", "", "where to write the recovered plaintext, base64-encoded (required)")
	_ = unimprintCmd.MarkFlagRequired("in")
	_ = unimprintCmd.MarkFlagRequired("context")
	_ = unimprintCmd.MarkFlagRequired("out")
}
