package watermarker

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImageInfo is what a prober learns about an image without editing it.
type ImageInfo struct {
	Width  int
	Height int
	Format string
}

// ImageProber reads an image's dimensions.
type ImageProber interface {
	Probe(ctx context.Context, path string) (ImageInfo, error)
}

// ImageRenderer runs a convert-style invocation with the given arguments.
type ImageRenderer interface {
	Render(ctx context.Context, args []string) error
}

// Watermarker applies text watermarks through an external image tool.
// It holds no per-call state and is safe for concurrent use; concurrent
// calls writing the same output path race and the last writer wins.
type Watermarker struct {
	prober   ImageProber
	renderer ImageRenderer
	logger   *zap.Logger
}

type Option func(*Watermarker)

func WithProber(p ImageProber) Option {
	return func(w *Watermarker) {
		w.prober = p
	}
}

func WithRenderer(r ImageRenderer) Option {
	return func(w *Watermarker) {
		w.renderer = r
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(w *Watermarker) {
		w.logger = logger
	}
}

// New returns a Watermarker backed by ImageMagick's identify and convert
// unless other implementations are given.
func New(opts ...Option) *Watermarker {
	w := &Watermarker{
		prober:   &IdentifyProber{},
		renderer: &ConvertRenderer{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = zap.NewNop()
	}
	return w
}

// Apply writes a copy of inputPath with text drawn on it and returns the
// path of the copy. Failures before rendering are *Error values; a failed
// render is returned as the renderer reported it.
func (w *Watermarker) Apply(ctx context.Context, inputPath, text string, opts *Options) (string, error) {
	log := w.logger.With(zap.String("call_id", uuid.NewString()), zap.String("input", inputPath))

	settings, err := Validate(inputPath, text, opts)
	if err != nil {
		log.Debug("Rejected watermark request", zap.Error(err))
		return "", err
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		log.Debug("Input file not found", zap.Error(err))
		return "", newError(ErrMissingInputFile, inputPath, err)
	}
	if !info.Mode().IsRegular() {
		return "", newError(ErrInvalidInputFile, inputPath, nil)
	}

	img, err := w.prober.Probe(ctx, inputPath)
	if err != nil {
		log.Warn("Failed to probe image", zap.Error(err))
		return "", newError(ErrImageInfo, inputPath, err)
	}

	output := settings.OutputPath(inputPath)
	args := BuildConvertArgs(inputPath, img.Width, img.Height, settings, text, output)

	start := time.Now()
	if err := w.renderer.Render(ctx, args); err != nil {
		log.Debug("Failed to render watermark", zap.Error(err))
		return "", err
	}

	log.Info("Watermark applied",
		zap.String("output", output),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height),
		zap.String("gravity", settings.Gravity),
		zap.Int("angle", settings.Angle),
		zap.Duration("latency", time.Since(start)))

	return output, nil
}

// Apply watermarks inputPath with the default ImageMagick tools.
func Apply(ctx context.Context, inputPath, text string, opts *Options) (string, error) {
	return New().Apply(ctx, inputPath, text, opts)
}
