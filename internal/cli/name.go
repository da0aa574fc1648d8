package cli

import (
	"strings"

	"github.com/spf13/cobra"

	apperrors "mfinvestor/internal/errors"
	"mfinvestor/internal/logging"
	"mfinvestor/internal/names"
	"mfinvestor/internal/security"
)

func newNameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "name",
		Short: "Investor name helpers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "split <full name...>",
		Short:   "Split a full name into first, middle and last parts",
		Example: `  mfx name split "Jane Mary Doe Smith"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			full := security.SanitizeText(strings.Join(args, " "))
			parts := names.Split(full)
			if parts.IsEmpty() {
				return apperrors.NewValidationError("name", full, "no name tokens")
			}
			logger := logging.FromContext(contextOf(cmd))
			logger.Debug().Int("tokens", len(strings.Fields(full))).Msg("Name split")

			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(parts)
			}
			output.Printf("Name:   %s\n", parts.Full())
			output.Printf("First:  %s\n", orDash(parts.FirstName))
			output.Printf("Middle: %s\n", orDash(parts.MiddleName))
			output.Printf("Last:   %s\n", orDash(parts.LastName))
			return nil
		},
	})

	return cmd
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
