package models

import (
	"github.com/phambaophuc/image-watermark/pkg/watermarker"
)

// WatermarkRequest is a single watermark job as read from the command line.
type WatermarkRequest struct {
	InputPath string
	Text      string
	Options   watermarker.Options
}

// Validate checks the request without touching the filesystem.
func (r *WatermarkRequest) Validate() error {
	_, err := watermarker.Validate(r.InputPath, r.Text, &r.Options)
	return err
}

// IsUsageError reports whether err was caused by the request itself rather
// than by the input file or the image tool.
func IsUsageError(err error) bool {
	kind, ok := watermarker.KindOf(err)
	if !ok {
		return false
	}
	switch kind {
	case watermarker.ErrNoWatermark,
		watermarker.ErrMissingInputFilePath,
		watermarker.ErrInvalidPosition,
		watermarker.ErrInvalidAngle:
		return true
	}
	return false
}
