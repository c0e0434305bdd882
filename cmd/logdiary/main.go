package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/sweiss/logdiary/internal/config"
	"github.com/sweiss/logdiary/internal/document"
	"github.com/sweiss/logdiary/internal/preview"
	"github.com/sweiss/logdiary/internal/workspace"
)

var (
	configPath     string
	nonInteractive bool
	version        = "dev"

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "logdiary",
	Short:         "Compose chat logs into a styled, self-contained HTML diary",
	Long:          `A tool for turning a diary document of pages and sections into one HTML fragment with inline styles, ready to paste into a post.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var initCmd = &cobra.Command{
	Use:   "init [document]",
	Short: "Create the workspace config and a default document",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the document to HTML",
	Long: `Render the document to a single HTML fragment. Without -o the file name
comes from the config, or from the cover title. Use -o - to print to stdout.`,
	RunE: runRender,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a live preview of the document",
	RunE:  runServe,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the document changed since the last export",
	RunE:  runStatus,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show character and word counts per page",
	RunE:  runStats,
}

var (
	renderOutput  string
	renderPreview bool
	serveAddr     string
	statsLang     string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.FileName, "config file path")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "skip prompts")

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file, - for stdout")
	renderCmd.Flags().BoolVar(&renderPreview, "preview", false, "render video thumbnails instead of embedded players")
	statusCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "export file to check")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	statsCmd.Flags().StringVar(&statsLang, "lang", "en", "language used for number formatting")

	rootCmd.AddCommand(initCmd, renderCmd, serveCmd, statusCmd, statsCmd, themesCmd, pageCmd, sectionCmd, rmCmd, mvCmd)
}

func main() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := prepareLogger(config.Default()); err != nil {
		return err
	}

	opts := workspace.InitOptions{
		ConfigPath:  configPath,
		Interactive: !nonInteractive,
		In:          os.Stdin,
		Out:         cmd.OutOrStdout(),
	}
	if len(args) == 1 {
		opts.DocumentPath = args[0]
	}

	_, err := workspace.RunInit(opts, logger)
	return err
}

func runRender(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	out, err := ws.Export(renderOutput, renderPreview, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if out != workspace.Stdout {
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", out)
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Previewing %s at http://%s/\n", cfg.DocumentPath(), addr)
	return preview.Run(ctx, preview.Config{
		Address: addr,
		Logger:  logger,
		Load: func() (*document.Document, error) {
			return document.Load(cfg.DocumentPath(), logger)
		},
	})
}

func runStatus(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	st, err := ws.Status(renderOutput)
	if err != nil {
		return err
	}
	st.Print(cmd.OutOrStdout())
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	tag, err := language.Parse(statsLang)
	if err != nil {
		return fmt.Errorf("invalid language %q: %w", statsLang, err)
	}

	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	workspace.BuildReport(ws.Session().Items()).Write(cmd.OutOrStdout(), tag)
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := multierr.Combine(cfg.Validate()...); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := prepareLogger(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func prepareLogger(cfg *config.Config) error {
	log, err := cfg.Logging.Prepare()
	if err != nil {
		return fmt.Errorf("failed to prepare logger: %w", err)
	}
	logger = log
	return nil
}

func openWorkspace() (*workspace.Workspace, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return workspace.Open(cfg, logger)
}
