package watermarker

import (
	"context"
	"image/color"
	"path/filepath"
	"sync"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

type fakeProber struct {
	info  ImageInfo
	err   error
	mu    sync.Mutex
	calls []string
}

func (p *fakeProber) Probe(_ context.Context, path string) (ImageInfo, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, path)
	return p.info, p.err
}

type fakeRenderer struct {
	err   error
	mu    sync.Mutex
	calls [][]string
}

func (r *fakeRenderer) Render(_ context.Context, args []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, args)
	return r.err
}

func (r *fakeRenderer) last(t *testing.T) []string {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.calls, "renderer was not called")
	return r.calls[len(r.calls)-1]
}

// writeImage creates a solid image of the given size, encoded by the
// extension of name, and returns its path.
func writeImage(t *testing.T, dir, name string, width, height int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	img := imaging.New(width, height, color.NRGBA{R: 40, G: 90, B: 160, A: 255})
	require.NoError(t, imaging.Save(img, path))
	return path
}
