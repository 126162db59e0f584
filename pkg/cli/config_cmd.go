package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jlrickert/namefmt/pkg/namefmt"
)

// NewConfigCmd returns the `namefmt config` command. By default it prints
// the effective configuration as YAML; --template prints the default config
// template and --path prints the resolved config file location.
func NewConfigCmd(deps *Deps) *cobra.Command {
	var template bool
	var showPath bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showPath {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), deps.ResolvedConfigPath)
				return err
			}
			if template {
				_, err := fmt.Fprint(cmd.OutOrStdout(), namefmt.DefaultConfigYAML)
				return err
			}
			data, err := deps.Config.ToYAML()
			if err != nil {
				return fmt.Errorf("unable to serialize config: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().BoolVar(&template, "template", false, "print the default config template")
	cmd.Flags().BoolVar(&showPath, "path", false, "print the config file location")
	return cmd
}
