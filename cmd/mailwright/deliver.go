package main

import (
	"github.com/spf13/cobra"

	"github.com/mailwright/mailwright/pkg/delivery"
	"github.com/mailwright/mailwright/pkg/session"
	"github.com/mailwright/mailwright/pkg/workflow"
)

func newDeliverCmd() *cobra.Command {
	var (
		flags requestFlags
		mode  string
	)
	cmd := &cobra.Command{
		Use:   "deliver",
		Short: "Render an email and commit it as a draft or an immediate send",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadApp()
			if err != nil {
				return err
			}
			svc, err := buildService(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			raw, err := flags.request(cfg.BrandID)
			if err != nil {
				return err
			}
			if mode == "" {
				mode = cfg.DefaultAction
			}
			m, err := delivery.ParseMode(mode)
			if err != nil {
				return err
			}

			var res workflow.DeliverResult
			if flags.instruction != "" {
				res, err = svc.DeliverWithInstruction(cmd.Context(), session.DefaultConversation, raw, flags.instruction, m)
			} else {
				res, err = svc.Deliver(cmd.Context(), session.DefaultConversation, raw, nil, m)
			}
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&mode, "mode", "", "delivery mode: draft or send (defaults to MAIL_DEFAULT_ACTION)")
	return cmd
}
