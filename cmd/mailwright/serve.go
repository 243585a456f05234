package main

import (
	"github.com/spf13/cobra"

	"github.com/mailwright/mailwright/pkg/config"
	"github.com/mailwright/mailwright/pkg/httpserver"
	"github.com/mailwright/mailwright/pkg/web"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadApp()
			if err != nil {
				return err
			}

			var srvCfg httpserver.Config
			if err := config.Load(&srvCfg); err != nil {
				return err
			}

			svc, err := buildService(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}

			router := web.NewRouter(svc,
				web.WithLogger(log),
				web.WithVersion(version),
				web.WithSettings(web.Settings{
					DefaultAction: cfg.DefaultAction,
					LabelPrefix:   cfg.LabelPrefix,
					BrandID:       cfg.BrandID,
				}),
				web.WithCORSOrigins(cfg.CORSOrigins),
			)

			srv := httpserver.New(srvCfg, httpserver.WithLogger(log))
			return srv.Run(cmd.Context(), router)
		},
	}
}
