package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mailwright/mailwright/pkg/brand"
	"github.com/mailwright/mailwright/pkg/config"
	"github.com/mailwright/mailwright/pkg/delivery"
	"github.com/mailwright/mailwright/pkg/logger"
	"github.com/mailwright/mailwright/pkg/session"
	"github.com/mailwright/mailwright/pkg/workflow"
)

// version is stamped at build time via -ldflags.
var version = "0.0.0+local"

// appConfig is the process-level configuration shared by every command.
type appConfig struct {
	DefaultAction string   `env:"MAIL_DEFAULT_ACTION" envDefault:"draft"`
	LabelPrefix   string   `env:"MAIL_LABEL_PREFIX" envDefault:"Agent-Sent"`
	BrandID       string   `env:"MAIL_BRAND_ID" envDefault:"default"`
	BrandsDir     string   `env:"MAIL_BRANDS_DIR" envDefault:"brands"`
	Deliverer     string   `env:"MAIL_DELIVERER" envDefault:"dev"`
	LogFormat     string   `env:"LOG_FORMAT" envDefault:"json"`
	CORSOrigins   []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://127.0.0.1:5173"`
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mailwright",
		Short:         "Brand-aware email drafting assistant",
		Long:          "Mailwright turns structured requests and natural-language edits into branded emails, previews the delivery plan and commits drafts or sends through a mail provider.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.AddCommand(
		newServeCmd(),
		newPreviewCmd(),
		newDeliverCmd(),
		newBrandCmd(),
	)
	return cmd
}

// loadApp parses the shared configuration and builds the logger.
func loadApp() (appConfig, *slog.Logger, error) {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return appConfig{}, nil, err
	}
	format := logger.FormatJSON
	if cfg.LogFormat == string(logger.FormatText) {
		format = logger.FormatText
	}
	log := logger.New(
		logger.WithFormat(format),
		logger.WithAttr(slog.String("service", "mailwright")),
	)
	return cfg, log, nil
}

// buildService wires the workflow service from the environment.
func buildService(ctx context.Context, cfg appConfig, log *slog.Logger) (*workflow.Service, error) {
	var deliveryCfg delivery.Config
	if err := config.Load(&deliveryCfg); err != nil {
		return nil, err
	}

	deliverer, err := buildDeliverer(ctx, cfg.Deliverer, deliveryCfg, log)
	if err != nil {
		return nil, err
	}

	mode, err := delivery.ParseMode(cfg.DefaultAction)
	if err != nil {
		return nil, err
	}

	svc := workflow.New(
		brand.WithDefault(brand.NewDirLoader(cfg.BrandsDir)),
		deliverer,
		session.NewMemoryStore(),
		workflow.WithLogger(log),
		workflow.WithLabelPrefix(cfg.LabelPrefix),
		workflow.WithDefaultMode(mode),
	)
	return svc, nil
}

func buildDeliverer(ctx context.Context, kind string, cfg delivery.Config, log *slog.Logger) (delivery.Deliverer, error) {
	switch kind {
	case "gmail":
		return delivery.NewGmailDeliverer(ctx, cfg, delivery.WithGmailLogger(log))
	case "postmark":
		return delivery.NewPostmarkDeliverer(cfg)
	case "dev", "":
		return delivery.NewDevDeliverer(cfg.DevOutputDir, cfg.LabelPrefix), nil
	default:
		return nil, fmt.Errorf("unknown deliverer %q: want dev, gmail or postmark", kind)
	}
}
