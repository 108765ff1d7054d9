package main

import (
	"context"
	"errors"
	"fmt"

	"internist/internal/config"
	"internist/pkg/logger"
	"internist/pkg/serrors"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// fetchCommand runs a single lookup without starting the server and prints
// the same JSON document the API would return.
func fetchCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "fetch <domain>",
		Short:        "Fetches metadata of every page registered for a domain and prints it as JSON",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if cfg.HTTP.RequestTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.HTTP.RequestTimeout)
				defer cancel()
			}

			// nothing scrapes a one-shot command
			svc := getInternist(ctx, cfg, noop.NewMeterProvider().Meter(""))

			res, err := svc.Lookup(ctx, args[0])
			if err != nil {
				logger.Debug(ctx, "lookup failed", zap.String("domain", args[0]), zap.Error(err))

				return errors.New(serrors.PublicMessage(err))
			}

			e := jx.Encoder{}
			e.SetIdent(2)
			res.Encode(&e)
			if _, err = fmt.Fprintln(cmd.OutOrStdout(), e.String()); err != nil {
				return fmt.Errorf("could not write result: %w", err)
			}
			if n := res.Failures(); n > 0 {
				logger.Warn(ctx, "some pages could not be fetched", zap.Int("failures", n))
			}

			return nil
		},
	}

	return cmd
}
