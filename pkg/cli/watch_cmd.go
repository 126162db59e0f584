package cli

import (
	"github.com/spf13/cobra"

	"github.com/jlrickert/namefmt/pkg/namefmt"
)

// NewWatchCmd returns the `namefmt watch` command, which formats files as
// they appear under a directory until interrupted.
func NewWatchCmd(deps *Deps) *cobra.Command {
	var inplace bool
	var timestamp bool

	cmd := &cobra.Command{
		Use:   "watch [path]",
		Short: "watch a directory and format newly created files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			return deps.Formatter.Watch(cmd.Context(), namefmt.WatchOptions{
				Path:      path,
				InPlace:   inplace,
				Timestamp: timestamp,
				Out:       cmd.OutOrStdout(),
				ErrOut:    cmd.ErrOrStderr(),
			})
		},
	}

	cmd.Flags().BoolVarP(&inplace, "inplace", "i", false,
		"actually perform renames (default: dry-run mode)")
	cmd.Flags().BoolVar(&timestamp, "timestamp", false,
		"prefix YYYY_MM_DD__ to all filenames")
	return cmd
}
