package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backkem/securecell/pkg/securecell"
)

var (
	unsealInCtxFile  string
	unsealInDataFile string
	unsealOutFile    string
)

var unsealCmd = &cobra.Command{
	Use:   "unseal",
	Short: "Decrypt a file produced by seal",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return loadGlobalConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		master, err := resolveMasterSecret()
		if err != nil {
			return err
		}
		ctx, err := readInput(unsealInCtxFile)
		if err != nil {
			return err
		}
		ciphertext, err := readInput(unsealInDataFile)
		if err != nil {
			return err
		}

		plaintext, err := securecell.Unseal(master, securecell.Context(ctx), ciphertext)
		recordAudit("unseal", err)
		if err != nil {
			return fmt.Errorf("unseal: %w", err)
		}
		return writeOutput(unsealOutFile, plaintext)
	},
}

func init() {
	unsealCmd.Flags().StringVar(&unsealInCtxFile, "in-context", "", "sealed context file, base64-encoded (required)")
	unsealCmd.Flags().StringVar(&unsealInDataFile, "in", "", "ciphertext input file, base64-encoded (required)")
	unsealCmd.Flags().StringVar(&unsealOutFile, "out", "", "where to write the recovered plaintext, base64-encoded (required)")
	_ = unsealCmd.MarkFlagRequired("in-context")
	_ = unsealCmd.MarkFlagRequired("in")
	_ = unsealCmd.MarkFlagRequired("out")
}
