package cli

import (
	"fmt"
	"os"
	"time"

	"maersk-tracker/internal/core/browser"
	"maersk-tracker/internal/core/config"
	"maersk-tracker/internal/core/logger"
	inputadapter "maersk-tracker/internal/features/input/adapters"
	inputports "maersk-tracker/internal/features/input/ports"
	inputservice "maersk-tracker/internal/features/input/service"
	reportservice "maersk-tracker/internal/features/report/service"
	trackingadapter "maersk-tracker/internal/features/tracking/adapters"
	trackingservice "maersk-tracker/internal/features/tracking/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCommand() *cobra.Command {
	var headless bool

	cmd := &cobra.Command{
		Use:   "run <file_path>",
		Short: "Process every reference number in the given input file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cmd.Flags().Changed("headless") {
				cfg.Portal.Headless = headless
			}

			if err := logger.Init(cfg.Environment, cfg.LogLevel, cfg.Output.LogDir); err != nil {
				return fmt.Errorf("failed to init logger: %w", err)
			}
			defer logger.Sync()

			return runTracking(cfg, args[0])
		},
	}

	cmd.Flags().BoolVar(&headless, "headless", true, "run the browser without a visible window")
	return cmd
}

// runTracking executes the whole workflow: load identifiers, drive the
// portal for each one, write the reports. The input file is validated
// before any browser session is created; browser teardown is guaranteed by
// defer once a session exists.
func runTracking(cfg *config.AppConfig, filePath string) error {
	l := logger.Get()
	l.Info("Starting tracking automation",
		zap.String("file", filePath),
		zap.Bool("headless", cfg.Portal.Headless),
	)

	loader := inputservice.NewLoader([]inputports.TableReader{
		inputadapter.NewCSVReader(),
		inputadapter.NewXLSXReader(),
		inputadapter.NewXLSReader(),
	})
	identifiers, err := loader.Load(filePath)
	if err != nil {
		return err
	}
	if len(identifiers) == 0 {
		l.Warn("No identifiers found in input file, reports will be empty")
	}

	for _, dir := range []string{cfg.Output.ResultsDir, cfg.Output.PDFDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	session, err := browser.Launch(browser.Config{
		Headless:         cfg.Portal.Headless,
		UserAgent:        cfg.Portal.UserAgent,
		Proxy:            cfg.Proxy.Settings(),
		Timeout:          time.Duration(cfg.Portal.WaitTimeoutSeconds) * time.Second,
		NavigationSettle: time.Duration(cfg.Portal.NavigationSettleSeconds) * time.Second,
	})
	if err != nil {
		return err
	}
	defer session.Close()

	if err := session.Navigate(cfg.Portal.URL); err != nil {
		return err
	}
	l.Info("Navigated to tracking portal", zap.String("url", cfg.Portal.URL))

	portal := trackingadapter.NewMaerskAdapter(session)
	portal.DismissCookieConsent()
	portal.DismissCoachMarks()

	processor := trackingservice.NewProcessor(
		portal,
		cfg.Output.ResultsDir,
		cfg.Output.PDFDir,
		time.Duration(cfg.Portal.ItemDelaySeconds)*time.Second,
	)
	run := processor.Run(identifiers)

	generator := reportservice.NewGenerator(cfg.Output.ResultsDir)
	if _, err := generator.WriteCombinedReport(run); err != nil {
		return err
	}
	if _, _, err := generator.WriteSummary(run); err != nil {
		return err
	}

	l.Info("Automation completed",
		zap.Int("total", run.Total()),
		zap.Int("successful", run.Successful()),
		zap.Int("failed", run.Failed()),
		zap.String("success_rate", run.SuccessRate()),
	)
	return nil
}
