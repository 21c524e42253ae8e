package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered service kinds and their required parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			builders := opts.newProvider(cfg, out).Registry().ListAllServices()
			sort.Slice(builders, func(i, j int) bool {
				return builders[i].Kind() < builders[j].Kind()
			})

			for _, builder := range builders {
				fmt.Fprintf(out, "%-8s %s\n", builder.Kind(), strings.Join(builder.RequiredParams(), ", "))
			}
			return nil
		},
	}
}
