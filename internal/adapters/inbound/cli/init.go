package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/depguard/depguard/internal/domain"
	"github.com/spf13/cobra"
)

const configFileName = ".depguard.yaml"

func newInitCmd() *cobra.Command {
	var (
		profile string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .depguard.yaml configuration file",
		Long:  "Create a .depguard.yaml starter config at the repository root.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			switch profile {
			case domain.ProfileStrict, domain.ProfileWarn, domain.ProfileCompat:
			default:
				return fmt.Errorf("unknown profile %q (valid: strict, warn, compat)", profile)
			}

			dest := filepath.Join(absPath, configFileName)
			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			if err := os.WriteFile(dest, []byte(generateConfig(profile)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", domain.ProfileStrict, "Policy profile (strict, warn, compat)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .depguard.yaml")

	return cmd
}

func generateConfig(profile string) string {
	result := fmt.Sprintf(`# depguard configuration

schema: depguard.config.v1
profile: %s

# scope: repo
# fail_on: error
# max_findings: 200

# Per-check overrides. Available checks:
`, profile)

	for _, id := range domain.AllCheckIDs() {
		result += fmt.Sprintf("#   %s\n", id)
	}

	result += `
# checks:
#   deps.no_wildcards:
#     severity: error
#     allow:
#       - internal-*
#   deps.optional_unused:
#     enabled: false
`

	return result
}
