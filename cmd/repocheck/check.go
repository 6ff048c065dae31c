package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/repocheck/internal/checker"
	"github.com/nao1215/repocheck/internal/config"
	"github.com/nao1215/repocheck/internal/github"
	"github.com/nao1215/repocheck/internal/log"
	"github.com/nao1215/repocheck/internal/model"
	"github.com/nao1215/repocheck/internal/ratelimit"
	"github.com/nao1215/repocheck/internal/report"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <url-list-file> [token]",
		Short: "Check a list of GitHub repository URLs",
		Long: `Check reads a newline-delimited file of GitHub repository URLs and
verifies each one against the GitHub API.

Each URL is classified into exactly one status:
  EXISTS       the repository is reachable
  NOT_FOUND    the repository does not exist (or is hidden from you)
  FORBIDDEN    access denied: private repository or rate limited
  ERROR        network failure, timeout, or unexpected HTTP status
  INVALID_URL  the line could not be parsed as a GitHub repository URL

A fixed delay is enforced between API requests. Unauthenticated clients
are limited to 60 requests/hour by GitHub; pass a personal access token
to raise the ceiling to 5000 requests/hour.

Examples:
  # Check all URLs in a file anonymously
  repocheck check urls.txt

  # Check with a personal access token
  repocheck check urls.txt ghp_yourtoken

  # Token via flag or GITHUB_TOKEN environment variable
  repocheck check --token ghp_yourtoken urls.txt

  # Faster run: 4 workers sharing a 500ms request budget
  repocheck check -b 4 -d 500ms urls.txt

  # Write a Markdown report to a file
  repocheck check -m -o report.md urls.txt

  # GitHub Enterprise installation
  repocheck check --api-url https://github.example.com/api/v3 urls.txt`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runCheckCmd,
	}

	// Request behavior flags
	cmd.Flags().String("token", "",
		"GitHub personal access token (overrides positional token and GITHUB_TOKEN)")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each API request")
	cmd.Flags().DurationP("delay", "d", config.DefaultDelay,
		"Fixed delay between API requests")
	cmd.Flags().IntP("concurrency", "b", config.DefaultConcurrency,
		"Number of concurrent checks (1 = strictly sequential)")
	cmd.Flags().String("api-url", config.DefaultAPIBaseURL,
		"Base URL of the GitHub API (for GitHub Enterprise)")
	cmd.Flags().String("proxy", "",
		"Route requests through a SOCKS5 proxy (e.g., 127.0.0.1:1080)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .repocheck in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON summary (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown summary (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write summary to specified file path (creates directories if needed)")
	cmd.Flags().BoolP("quiet", "q", false,
		"Show a progress bar instead of per-URL lines")

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	// Build config from flags and positional arguments
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with credential redaction
	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runCheck(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
// Token precedence: --token flag > positional argument > GITHUB_TOKEN.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	cfg.ListPath = args[0]
	if len(args) > 1 {
		cfg.Token = args[1]
	}
	if cfg.Token == "" {
		cfg.Token = os.Getenv("GITHUB_TOKEN")
	}

	var err error

	tokenFlag, err := cmd.Flags().GetString("token")
	if err != nil {
		return nil, err
	}
	if tokenFlag != "" {
		cfg.Token = tokenFlag
	}

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.Delay, err = cmd.Flags().GetDuration("delay")
	if err != nil {
		return nil, err
	}

	cfg.Concurrency, err = cmd.Flags().GetInt("concurrency")
	if err != nil {
		return nil, err
	}

	cfg.APIBaseURL, err = cmd.Flags().GetString("api-url")
	if err != nil {
		return nil, err
	}

	cfg.ProxyAddress, err = cmd.Flags().GetString("proxy")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Merge config file values. If the user explicitly specified a path,
	// error if not found; otherwise a missing file is fine.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := cf.Apply(cfg); err != nil {
			return nil, err
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Quiet, err = cmd.Flags().GetBool("quiet")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// runCheck executes the check run.
func runCheck(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	urls, err := config.LoadURLList(cfg.ListPath)
	if err != nil {
		return err
	}

	fmt.Printf("Found %d GitHub URLs to check\n", len(urls))
	if len(urls) == 0 {
		return nil
	}
	if !cfg.Quiet {
		fmt.Println()
	}

	client, err := github.NewHTTPClient(cfg.ProxyAddress, cfg.Timeout)
	if err != nil {
		return fmt.Errorf("failed to create HTTP client: %w", err)
	}

	prober := github.NewProber(client, cfg.APIBaseURL,
		github.WithToken(cfg.Token),
		github.WithUserAgent(cfg.UserAgent),
		github.WithMaxBodySize(cfg.MaxBodySize),
	)

	limiter := ratelimit.New(cfg.Delay)
	chk := checker.NewChecker(prober, limiter, logger)
	runner := checker.NewRunner(chk,
		checker.WithConcurrency(cfg.Concurrency),
		checker.WithLogger(logger),
	)

	var progress report.Progress
	if cfg.Quiet {
		progress = report.NewBarPrinter(os.Stdout, len(urls))
	} else {
		progress = report.NewLinePrinter(os.Stdout, len(urls))
	}

	runReport, err := runner.Run(ctx, cfg.ListPath, urls, func(result model.CheckResult, _ int) {
		progress.Report(result)
	})
	progress.Finish()
	if err != nil {
		return err
	}
	runReport.Authenticated = cfg.Token != ""

	return outputReport(cfg, runReport)
}

// outputReport outputs the run summary in the requested format.
func outputReport(cfg *config.Config, runReport *model.RunReport) error {
	// Determine output destination
	var output io.Writer = os.Stdout
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewSimpleWriter(output)
	}

	_, err := writer.Write(runReport)
	return err
}
