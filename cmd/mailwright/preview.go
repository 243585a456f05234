package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mailwright/mailwright/pkg/session"
)

// requestFlags collects the draft request fields shared by preview and
// deliver.
type requestFlags struct {
	to          string
	name        string
	purpose     string
	brandID     string
	contextJSON string
	instruction string
}

func (f *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.to, "to", "", "recipient email address (required)")
	cmd.Flags().StringVar(&f.name, "name", "", "recipient name")
	cmd.Flags().StringVar(&f.purpose, "purpose", "", "email purpose (welcome, newsletter, ...)")
	cmd.Flags().StringVar(&f.brandID, "brand", "", "brand id")
	cmd.Flags().StringVar(&f.contextJSON, "context", "", "extra context as a JSON object")
	cmd.Flags().StringVar(&f.instruction, "edit", "", "natural-language edit applied before rendering")
	_ = cmd.MarkFlagRequired("to")
}

// request assembles the loosely-shaped input the normalizer expects.
func (f *requestFlags) request(defaultBrand string) (map[string]any, error) {
	recipient := map[string]any{"email": f.to}
	if f.name != "" {
		recipient["name"] = f.name
	}
	raw := map[string]any{"recipient": recipient}
	if f.purpose != "" {
		raw["purpose"] = f.purpose
	}
	switch {
	case f.brandID != "":
		raw["brand_id"] = f.brandID
	case defaultBrand != "":
		raw["brand_id"] = defaultBrand
	}
	if f.contextJSON != "" {
		var extra map[string]any
		if err := json.Unmarshal([]byte(f.contextJSON), &extra); err != nil {
			return nil, fmt.Errorf("invalid --context JSON: %w", err)
		}
		raw["context"] = extra
	}
	return raw, nil
}

// printJSON writes an indented JSON document to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func newPreviewCmd() *cobra.Command {
	var flags requestFlags
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render an email and print the delivery plan without sending",
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

			var p any
			if flags.instruction != "" {
				p, err = svc.PreviewWithInstruction(cmd.Context(), session.DefaultConversation, raw, flags.instruction)
			} else {
				p, err = svc.Preview(cmd.Context(), session.DefaultConversation, raw)
			}
			if err != nil {
				return err
			}
			return printJSON(cmd, p)
		},
	}
	flags.register(cmd)
	return cmd
}
