package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"mfinvestor/internal/currency"
	apperrors "mfinvestor/internal/errors"
)

func newCurrencyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "currency",
		Aliases: []string{"inr"},
		Short:   "Format and parse INR amounts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "format <amount>",
		Short:   "Format an amount with Indian digit grouping",
		Example: "  mfx currency format 1234567.5   # ₹12,34,567.50",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, "display", app.Formatter.ToDisplayString(amount))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "parse <display>",
		Short: "Parse a formatted amount back to a number",
		Long:  "Parse a formatted amount back to a number. Empty or unparseable input yields 0.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := app.Formatter.ToNumber(strings.Join(args, " "))
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(map[string]float64{"amount": v})
			}
			output.Println(strconv.FormatFloat(v, 'f', -1, 64))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "words <amount>",
		Short:   "Describe an amount in Thousands, Lakhs or Crores",
		Example: "  mfx currency words 250000   # 2.50 Lakhs",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, "words", currency.ToWordsString(amount))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "compact <amount>",
		Short: "Format an amount as L/Cr",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, "compact", currency.FormatCompact(amount))
		},
	})

	return cmd
}

// parseAmount accepts plain numbers as well as formatted display strings.
func parseAmount(s string) (float64, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	clean = strings.TrimPrefix(clean, currency.DefaultSymbol)
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("amount", s, fmt.Sprintf("not a number: %v", err))
	}
	return v, nil
}

func printResult(cmd *cobra.Command, key, value string) error {
	output := NewOutput(cmd)
	if output.IsJSON() {
		return output.JSON(map[string]string{key: value})
	}
	output.Println(value)
	return nil
}
