package watermarker

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const (
	defaultIdentifyBin = "identify"
	defaultConvertBin  = "convert"
)

// IdentifyProber probes images with ImageMagick's identify. Bin may carry
// leading arguments, e.g. "magick identify" for ImageMagick 7.
type IdentifyProber struct {
	Bin string
}

func (p *IdentifyProber) Probe(ctx context.Context, path string) (ImageInfo, error) {
	cmd := command(ctx, p.Bin, defaultIdentifyBin, "-ping", "-format", "%w %h %m\\n", path)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return ImageInfo{}, fmt.Errorf("identify: %w\n%s", err, stderr.String())
	}
	return parseIdentifyOutput(output)
}

// parseIdentifyOutput reads "<width> <height> <format>" from the first
// line. Animated images print one line per frame.
func parseIdentifyOutput(output []byte) (ImageInfo, error) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var info ImageInfo
		n, err := fmt.Sscan(line, &info.Width, &info.Height, &info.Format)
		if n < 2 {
			return ImageInfo{}, fmt.Errorf("parse identify output %q: %w", line, err)
		}
		if info.Width <= 0 || info.Height <= 0 {
			return ImageInfo{}, fmt.Errorf("identify reported size %dx%d", info.Width, info.Height)
		}
		return info, nil
	}
	if err := scanner.Err(); err != nil {
		return ImageInfo{}, err
	}
	return ImageInfo{}, errors.New("identify produced no output")
}

// ConvertRenderer renders with ImageMagick's convert. Bin may carry
// leading arguments; "magick" alone also accepts convert syntax.
type ConvertRenderer struct {
	Bin string
}

func (r *ConvertRenderer) Render(ctx context.Context, args []string) error {
	cmd := command(ctx, r.Bin, defaultConvertBin, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("convert: %w\n%s", err, string(out))
	}
	return nil
}

func command(ctx context.Context, bin, fallback string, args ...string) *exec.Cmd {
	fields := strings.Fields(bin)
	if len(fields) == 0 {
		fields = []string{fallback}
	}
	return exec.CommandContext(ctx, fields[0], append(fields[1:], args...)...)
}
