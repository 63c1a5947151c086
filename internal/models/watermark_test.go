package models

import (
	"errors"
	"testing"

	"github.com/phambaophuc/image-watermark/pkg/watermarker"
	"github.com/stretchr/testify/assert"
)

func TestWatermarkRequestValidate(t *testing.T) {
	tests := []struct {
		name string
		req  WatermarkRequest
		want error
	}{
		{"valid", WatermarkRequest{InputPath: "Brad.png", Text: "My Watermark"}, nil},
		{"no text", WatermarkRequest{InputPath: "Brad.png"}, watermarker.ErrNoWatermark},
		{"no path", WatermarkRequest{Text: "My Watermark"}, watermarker.ErrMissingInputFilePath},
		{"bad position", WatermarkRequest{InputPath: "Brad.png", Text: "x", Options: watermarker.Options{Position: "nowhere"}}, watermarker.ErrInvalidPosition},
		{"bad rotation", WatermarkRequest{InputPath: "Brad.png", Text: "x", Options: watermarker.Options{Rotation: "Hello"}}, watermarker.ErrInvalidAngle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestIsUsageError(t *testing.T) {
	assert.True(t, IsUsageError(&watermarker.Error{Kind: watermarker.ErrInvalidAngle}))
	assert.True(t, IsUsageError(&watermarker.Error{Kind: watermarker.ErrNoWatermark}))
	assert.False(t, IsUsageError(&watermarker.Error{Kind: watermarker.ErrMissingInputFile}))
	assert.False(t, IsUsageError(&watermarker.Error{Kind: watermarker.ErrImageInfo}))
	assert.False(t, IsUsageError(errors.New("convert: exit status 1")))
	assert.False(t, IsUsageError(nil))
}
