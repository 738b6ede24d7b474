package cmd

import (
	"fmt"

	"github.com/PolarWolf314/echo-journal/internal/secrets"
	"github.com/PolarWolf314/echo-journal/internal/ui"
	"github.com/PolarWolf314/echo-journal/internal/workflows"
	"github.com/spf13/cobra"
)

var sealCmd = &cobra.Command{
	Use:   "seal",
	Short: "Encrypt any entries left unencrypted",
	Long: `Encrypts every note that is still in plaintext, without opening any entry.

Use this if echo-journal was killed before it could re-encrypt the journal. Notes
that are already encrypted are left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting seal command")

		result, err := workflows.Seal(cmd.Context(), workflows.SealOptions{
			Prompt:  promptPin,
			OnRetry: printRetry,
			Logger:  Logger,
		})
		if err != nil {
			fmt.Println(formatUnlockError(err))
			return shown(err)
		}

		encrypted := result.Summary.Count(secrets.OutcomeEncrypted)
		skipped := result.Summary.Count(secrets.OutcomeSkipped)
		Logger.Infof("Encrypted %d files, skipped %d", encrypted, skipped)

		fmt.Println(formatSealSummary(result.Root, result.Summary))
		fmt.Printf("%s %d encrypted, %d already encrypted\n", ui.Arrow(), encrypted, skipped)

		if n := result.Summary.Count(secrets.OutcomeFailed); n > 0 {
			return shown(fmt.Errorf("%d file(s) left unencrypted", n))
		}
		return nil
	},
}
