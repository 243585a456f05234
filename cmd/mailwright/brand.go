package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mailwright/mailwright/pkg/brand"
)

func newBrandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brand",
		Short: "Manage brand configurations",
	}
	cmd.AddCommand(newBrandValidateCmd(), newBrandInitCmd())
	return cmd
}

func newBrandValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <brand-id>",
		Short: "Validate a brand and print its normalized configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadApp()
			if err != nil {
				return err
			}
			bc, err := brand.NewDirLoader(cfg.BrandsDir).Load(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, bc)
		},
	}
}

func newBrandInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init <brand-id>",
		Short: "Create a brand folder with a starter brand.json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadApp()
			if err != nil {
				return err
			}

			dest := filepath.Join(cfg.BrandsDir, args[0])
			if err := os.MkdirAll(dest, 0o755); err != nil {
				return err
			}
			file := filepath.Join(dest, "brand.json")
			if _, err := os.Stat(file); err == nil && !force {
				return fmt.Errorf("%s exists, use --force to overwrite", file)
			}

			starter := brand.Default()
			starter.Name = "YourCo"
			starter.LogoURL = "https://cdn.example.com/yourco/logo.png"
			starter.Links = map[string]string{
				"website": "https://yourco.com",
				"support": "https://yourco.com/support",
			}
			starter.SignatureHTML = "<p>— Team YourCo</p>"
			starter.FooterHTML = `<p>© YourCo • <a href="https://yourco.com">yourco.com</a></p>`
			starter.LegalAddress = "123 Example St, City, Country"

			data, err := json.MarshalIndent(starter, "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(file, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", file)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing brand.json")
	return cmd
}
