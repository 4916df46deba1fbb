package main

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/backkem/securecell/pkg/securecell"
)

var (
	sealInFile      string
	sealOutCtxFile  string
	sealOutDataFile string
)

var sealCmd = &cobra.Command{
	Use:   "seal",
	Short: "Encrypt a file in sealed (authenticated) mode",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return loadGlobalConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		master, err := resolveMasterSecret()
		if err != nil {
			return err
		}
		plaintext, err := os.ReadFile(sealInFile)
		if err != nil {
			return fmt.Errorf("reading input file: %w", err)
		}

		ctx, ciphertext, err := securecell.Seal(master, plaintext, nil)
		if err != nil {
			recordAudit("seal", err)
			return err
		}
		recordAudit("seal", nil)

		if err := writeOutput(sealOutCtxFile, []byte(ctx)); err != nil {
			return err
		}
		return writeOutput(sealOutDataFile, ciphertext)
	},
}

func init() {
	sealCmd.Flags().StringVar(&sealInFile, "in", "", "plaintext input file (required)")
	sealCmd.Flags().StringVar(&sealOutCtxFile, "out-context", "", "where to write the sealed context, base64-encoded (required)")
	sealCmd.Flags().StringVar(&sealOutDataFile, "out", "", "where to write the ciphertext, base64-encoded (required)")
	_ = sealCmd.MarkFlagRequired("in")
	_ = sealCmd.MarkFlagRequired("out-context")
	_ = sealCmd.MarkFlagRequired("out")
}

// writeOutput writes data to path base64-encoded, the same convention
// every subcommand uses for context and ciphertext files so they can
// round-trip through text-oriented tooling (git, editors, terminals)
// without corruption.
func writeOutput(path string, data []byte) error {
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(data)))
	base64.StdEncoding.Encode(encoded, data)
	if err := os.WriteFile(path, encoded, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// readInput reads a base64-encoded file written by writeOutput.
func readInput(path string) ([]byte, error) {
	encoded, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	data, err := base64.StdEncoding.DecodeString(string(encoded))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return data, nil
}
