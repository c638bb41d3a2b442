package cli

import (
	"encoding/json"
	"fmt"

	"github.com/depguard/depguard/internal/adapters/outbound/tui"
	"github.com/depguard/depguard/internal/application"
	"github.com/spf13/cobra"
)

func newExplainCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "explain [check-id|code]",
		Short: "Explain a check or finding code",
		Long:  "Show what a check detects, why it matters, and how to fix violations. Without arguments, lists every registered check.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewExplainService()

			if len(args) == 0 {
				return listChecks(cmd, svc, jsonOutput)
			}

			identifier := args[0]
			exp, ok := svc.Explain(identifier)
			if !ok {
				return fmt.Errorf("unknown check or code %q (run `depguard explain` to list checks)", identifier)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(exp)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderExplanation(identifier, exp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func listChecks(cmd *cobra.Command, svc *application.ExplainService, jsonOutput bool) error {
	infos := svc.ListChecks()

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	for _, info := range infos {
		fmt.Fprintf(cmd.OutOrStdout(), "%-36s %s\n", info.ID, info.Title)
	}
	return nil
}
