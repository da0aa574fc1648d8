package cli

import (
	"github.com/spf13/cobra"

	"mfinvestor/internal/logging"
	"mfinvestor/internal/status"
)

type classified struct {
	Code string `json:"code"`
	status.DisplayStyle
}

func newStatusCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Classify order and mandate status codes",
		Long: `Classify backend status codes into display badges.

Codes are case-insensitive. Codes the classifier does not know render as
"Unknown" in red. Use --dark or --light to pick a palette; otherwise the
stored theme preference is used.`,
	}

	for _, domain := range []status.Domain{status.DomainOrder, status.DomainMandate} {
		domain := domain
		cmd.AddCommand(&cobra.Command{
			Use:   string(domain) + " <code>...",
			Short: "Classify " + string(domain) + " status codes",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runClassify(cmd, app, domain, args)
			},
		})
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "list <order|mandate>",
		Short:     "List every known code of a domain with its badge",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(status.DomainOrder), string(status.DomainMandate)},
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, err := status.ParseDomain(args[0])
			if err != nil {
				return err
			}
			return runClassify(cmd, app, domain, status.Codes(domain))
		},
	})

	return cmd
}

func runClassify(cmd *cobra.Command, app *App, domain status.Domain, codes []string) error {
	dark := app.darkMode(cmd)
	logger := logging.FromContext(contextOf(cmd))

	results := make([]classified, 0, len(codes))
	for _, code := range codes {
		style := app.Classifier.Style(domain, code, dark)
		logging.LogClassification(logger, string(domain), code, style.Label, dark)
		results = append(results, classified{Code: code, DisplayStyle: style})
	}

	output := NewOutput(cmd)
	if output.IsJSON() {
		return output.JSON(results)
	}

	table := NewTable(output, "CODE", "STATUS", "BACKGROUND", "TEXT")
	for _, r := range results {
		table.AddRow(r.Code, output.Badge(r.DisplayStyle), string(r.BackgroundColor), string(r.TextColor))
	}
	table.Render()
	return nil
}
