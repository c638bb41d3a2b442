package cli

import (
	"encoding/json"
	"fmt"
	"os"

	appconfig "github.com/depguard/depguard/internal/adapters/outbound/config"
	"github.com/depguard/depguard/internal/adapters/outbound/gitinfo"
	"github.com/depguard/depguard/internal/adapters/outbound/history"
	"github.com/depguard/depguard/internal/adapters/outbound/manifest"
	"github.com/depguard/depguard/internal/adapters/outbound/render"
	"github.com/depguard/depguard/internal/adapters/outbound/tui"
	"github.com/depguard/depguard/internal/application"
	"github.com/spf13/cobra"
)

func newCheckService() *application.CheckService {
	return application.NewCheckService(
		appconfig.New(),
		manifest.New(),
		gitinfo.New(),
		history.New(),
		application.ToolMeta{Name: "depguard", Version: version},
	)
}

func newCheckCmd() *cobra.Command {
	var (
		path          string
		profile       string
		scope         string
		base          string
		maxFindings   int
		format        string
		reportOut     string
		writeMarkdown string
		advisory      bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate workspace dependency declarations against the policy",
		Long:  "Scan the Cargo workspace, run every enabled check, and report findings. The exit code encodes the verdict: 0 pass, 1 warn, 2 fail.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newCheckService()

			report := svc.Check(application.CheckOptions{
				RepoRoot:    path,
				Profile:     profile,
				Scope:       scope,
				MaxFindings: maxFindings,
				Base:        base,
			})

			if err := renderReport(cmd, report, format); err != nil {
				return err
			}
			if reportOut != "" {
				if err := writeJSONFile(reportOut, report); err != nil {
					return fmt.Errorf("writing %s: %w", reportOut, err)
				}
			}
			if writeMarkdown != "" {
				if err := os.WriteFile(writeMarkdown, []byte(render.Markdown(report)), 0644); err != nil {
					return fmt.Errorf("writing %s: %w", writeMarkdown, err)
				}
			}

			if advisory {
				return nil
			}
			if code := report.Verdict.ExitCode(); code != 0 {
				return &exitError{code: code}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Repository root to scan")
	cmd.Flags().StringVar(&profile, "profile", "", "Policy profile (strict, warn, compat)")
	cmd.Flags().StringVar(&scope, "scope", "", "Scan scope (repo, diff)")
	cmd.Flags().StringVar(&base, "base", "", "Git revision diff scope compares against (default HEAD)")
	cmd.Flags().IntVar(&maxFindings, "max-findings", 0, "Cap on emitted findings (0 uses config)")
	cmd.Flags().StringVar(&format, "format", "tui", "Output format (tui, json, markdown, gha)")
	cmd.Flags().StringVar(&reportOut, "report-out", "", "Write the JSON report to a file")
	cmd.Flags().StringVar(&writeMarkdown, "write-markdown", "", "Write the markdown report to a file")
	cmd.Flags().BoolVar(&advisory, "advisory", false, "Report findings but always exit 0")

	return cmd
}

func renderReport(cmd *cobra.Command, report *application.ReportEnvelope, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "markdown":
		fmt.Fprint(cmd.OutOrStdout(), render.Markdown(report))
		return nil
	case "gha":
		fmt.Fprint(cmd.OutOrStdout(), render.Annotations(report))
		return nil
	case "tui":
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected tui, json, markdown, gha)", format)
	}
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
