// Package cli wires the command-line surface: flag parsing, service
// construction, progress rendering, and the single reporting boundary
// that turns pipeline errors into exit codes.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ytgrab/ytgrab/internal/config"
	"github.com/ytgrab/ytgrab/internal/download"
	"github.com/ytgrab/ytgrab/internal/logger"
	"github.com/ytgrab/ytgrab/internal/media"
	"github.com/ytgrab/ytgrab/internal/model"
)

// newDownloader builds the production orchestrator. Swapped in tests.
var newDownloader = func(log logger.Logger, tools media.Toolchain) download.Downloader {
	return download.NewService(log, tools)
}

type options struct {
	output     string
	configPath string
	proxy      string
	timeout    time.Duration
	lowQuality bool
	audioOnly  bool
	quiet      bool
	verbose    bool
}

// NewRootCmd builds the ytgrab root command.
func NewRootCmd(version string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "ytgrab [flags] URL",
		Short: "Download a YouTube video with merged audio, capped at 1080p",
		Long: "ytgrab downloads a YouTube video, picks the best video stream up to\n" +
			"1080p plus the best audio stream, and merges them into a single file\n" +
			"using ffmpeg. The output name derives from the video title unless an\n" +
			"output path is given; an existing file with the same name is replaced.",
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory, or full output file path (default: current directory)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to config file")
	cmd.Flags().StringVar(&opts.proxy, "proxy", "", "proxy URL passed to the downloader")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "network socket timeout, e.g. 30s (default: downloader's own)")
	cmd.Flags().BoolVar(&opts.lowQuality, "low-quality", false, "download the smallest available streams instead of the best")
	cmd.Flags().BoolVar(&opts.audioOnly, "audio-only", false, "download the best audio stream only")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress progress and informational output")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, url string, opts *options) error {
	if opts.lowQuality && opts.audioOnly {
		return fmt.Errorf("--low-quality and --audio-only are mutually exclusive")
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	level := cfg.LogLevel()
	if opts.verbose {
		level = "debug"
	}
	if opts.quiet {
		level = "error"
	}
	log := logger.New(level)

	quality := cfg.Quality()
	if opts.lowQuality {
		quality = model.QualityLowest
	}
	if opts.audioOnly {
		quality = model.QualityAudio
	}

	outputDir, template := resolveDestination(opts.output)
	if outputDir == "" {
		outputDir = cfg.Directory()
	}
	if template == "" {
		template = cfg.Template()
	}

	proxy := opts.proxy
	if proxy == "" {
		proxy = cfg.Proxy()
	}
	timeout := opts.timeout
	if timeout == 0 {
		timeout = cfg.SocketTimeout()
	}

	req := model.DownloadRequest{
		URL:           url,
		OutputDir:     outputDir,
		Template:      template,
		Quality:       quality,
		MergeFormat:   cfg.MergeFormat(),
		Proxy:         proxy,
		SocketTimeout: timeout,
		Restrict:      cfg.RestrictFilenames(),
	}

	svc := newDownloader(log, media.NewToolchain())

	renderer := newProgressRenderer(cmd.ErrOrStderr(), opts.quiet)
	svc.SetProgressCallback(renderer.Render)

	result, err := svc.Download(cmd.Context(), req)
	renderer.Done()
	if err != nil {
		return err
	}

	if !opts.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s (%s)\n",
			color.GreenString("✔"), result.DisplayTitle(), result.Elapsed.Round(time.Second))
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.OutputPath)
	return nil
}

// resolveDestination splits the --output value into a directory and a
// filename template. A value naming an existing directory, or ending in
// a path separator, is a directory; anything else is taken as the exact
// output file path.
func resolveDestination(output string) (dir, template string) {
	if output == "" {
		return "", ""
	}
	if strings.HasSuffix(output, string(os.PathSeparator)) || strings.HasSuffix(output, "/") {
		return filepath.Clean(output), ""
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return output, ""
	}
	return filepath.Dir(output), filepath.Base(output)
}
