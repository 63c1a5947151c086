package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/phambaophuc/image-watermark/internal/config"
	"github.com/phambaophuc/image-watermark/internal/logger"
	"github.com/phambaophuc/image-watermark/internal/models"
	"github.com/phambaophuc/image-watermark/pkg/watermarker"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	// Initialize logger
	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], cfg, zlog, os.Stdout, os.Stderr)
	stop()
	_ = zlog.Sync()
	os.Exit(code)
}

func run(ctx context.Context, args []string, cfg *config.Config, zlog *zap.Logger, stdout, stderr io.Writer) int {
	req, prober, err := parseArgs(args, cfg, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if err := req.Validate(); err != nil {
		zlog.Debug("Rejected watermark request", zap.Error(err))
		fmt.Fprintln(stderr, err)
		return 2
	}

	w := watermarker.New(
		watermarker.WithProber(newProber(prober, cfg)),
		watermarker.WithRenderer(&watermarker.ConvertRenderer{Bin: cfg.Tools.ConvertBin}),
		watermarker.WithLogger(zlog),
	)

	if cfg.Tools.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Tools.Timeout)
		defer cancel()
	}

	output, err := w.Apply(ctx, req.InputPath, req.Text, &req.Options)
	if err != nil {
		zlog.Error("Failed to apply watermark",
			zap.String("input", req.InputPath),
			zap.Error(err))
		fmt.Fprintln(stderr, err)
		if models.IsUsageError(err) {
			return 2
		}
		return 1
	}

	fmt.Fprintln(stdout, output)
	return 0
}

// parseArgs accepts "watermark [flags] <input> <text...>"; -in and -text
// take precedence over positional arguments.
func parseArgs(args []string, cfg *config.Config, stderr io.Writer) (*models.WatermarkRequest, string, error) {
	fs := flag.NewFlagSet("watermark", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: watermark [flags] <input> <text>")
		fs.PrintDefaults()
	}

	req := &models.WatermarkRequest{}
	fs.StringVar(&req.InputPath, "in", "", "path of the image to watermark")
	fs.StringVar(&req.Text, "text", "", "watermark text")
	fs.StringVar(&req.Options.Colour, "colour", cfg.Watermark.Colour, "text colour, e.g. rgba(0,0,0,0.5)")
	fs.StringVar(&req.Options.Colour, "color", cfg.Watermark.Colour, "alias for -colour")
	fs.StringVar(&req.Options.OutDir, "outdir", "", "output directory (defaults to the input's directory)")
	fs.StringVar(&req.Options.Position, "position", cfg.Watermark.Position, "TopLeft|Top|TopRight|Left|Center|Right|BottomLeft|Bottom|BottomRight")
	fs.StringVar(&req.Options.Rotation, "rotation", "", "text angle in degrees")
	fs.IntVar(&req.Options.FontSize, "font-size", cfg.Watermark.FontSize, "point size (default 12)")
	prober := fs.String("prober", cfg.Tools.Prober, "how to read image size: identify|native")

	if err := fs.Parse(args); err != nil {
		return nil, "", err
	}

	rest := fs.Args()
	if req.InputPath == "" && len(rest) > 0 {
		req.InputPath, rest = rest[0], rest[1:]
	}
	if req.Text == "" && len(rest) > 0 {
		req.Text = strings.Join(rest, " ")
	}

	switch *prober {
	case config.ProberIdentify, config.ProberNative:
	default:
		return nil, "", fmt.Errorf("unknown prober %q", *prober)
	}

	return req, *prober, nil
}

func newProber(name string, cfg *config.Config) watermarker.ImageProber {
	if name == config.ProberNative {
		return watermarker.NativeProber{}
	}
	return &watermarker.IdentifyProber{Bin: cfg.Tools.IdentifyBin}
}
