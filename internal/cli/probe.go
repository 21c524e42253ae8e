package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/cecil-the-coder/music-provider-kit/pkg/types"
	"github.com/spf13/cobra"
)

func newProbeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "probe [kind...]",
		Short: "Get each service kind, test its connection and compare instance identity",
		Long: `probe gets every requested service kind (all kinds when none are given),
runs its connection test, then gets each kind a second time and reports
whether the provider returned the same instance.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := parseKinds(args)
			if err != nil {
				return err
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			return runProbe(cmd.Context(), opts.newProvider(cfg, out), kinds, cfg.Params(), out)
		},
	}
}

func parseKinds(args []string) ([]types.ServiceKind, error) {
	if len(args) == 0 {
		return types.AllServiceKinds(), nil
	}
	kinds := make([]types.ServiceKind, 0, len(args))
	for _, arg := range args {
		kind, err := types.ParseServiceKind(arg)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// serviceGetter is the part of factory.Provider probe needs
type serviceGetter interface {
	Get(ctx context.Context, kind types.ServiceKind, params types.Params) (types.Service, error)
}

func runProbe(ctx context.Context, provider serviceGetter, kinds []types.ServiceKind, params types.Params, out io.Writer) error {
	first := make(map[types.ServiceKind]types.Service, len(kinds))
	for _, kind := range kinds {
		svc, err := provider.Get(ctx, kind, params)
		if err != nil {
			return fmt.Errorf("get %s: %w", kind, err)
		}
		if err := svc.TestConnection(ctx); err != nil {
			return fmt.Errorf("test connection %s: %w", kind, err)
		}
		first[kind] = svc
	}

	for _, kind := range kinds {
		again, err := provider.Get(ctx, kind, params)
		if err != nil {
			return fmt.Errorf("get %s: %w", kind, err)
		}
		fmt.Fprintf(out, "id(%s) == id(%s2): %t\n", kind, kind, first[kind].ID() == again.ID())
	}
	return nil
}
