package assets

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/spaghettifunk/glrhi/engine/assets/loaders"
	"github.com/spaghettifunk/glrhi/engine/renderer/rhi"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func newTestManager(t *testing.T) (*AssetManager, string) {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "shaders", "quad.vert"), []byte("void main() {}"))
	writeFile(t, filepath.Join(dir, "notes.txt"), []byte("ignored"))

	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(0, 1, color.RGBA{G: 255, A: 255})
	f, err := os.Create(filepath.Join(dir, "overlay.bmp"))
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, img))
	require.NoError(t, f.Close())

	am, err := NewAssetManager()
	require.NoError(t, err)
	require.NoError(t, am.Initialize(dir))
	t.Cleanup(func() { am.Shutdown() })
	return am, dir
}

func TestAssetManagerIndexesKnownTypes(t *testing.T) {
	am, _ := newTestManager(t)
	assert.Equal(t, 2, am.Count())

	_, err := am.LoadAsset("notes.txt", nil)
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestAssetManagerLoadShader(t *testing.T) {
	am, _ := newTestManager(t)

	res, err := am.LoadAsset("shaders/quad.vert", nil)
	require.NoError(t, err)
	assert.Equal(t, loaders.ResourceTypeShader, res.Type)
	data := res.Data.(*loaders.ShaderData)
	assert.Equal(t, rhi.SHADER_TYPE_VERTEX, data.Stage)
	assert.Equal(t, "void main() {}", data.Code)
	assert.NoError(t, am.UnloadAsset(res))
}

func TestAssetManagerLoadImage(t *testing.T) {
	am, _ := newTestManager(t)

	res, err := am.LoadAsset("overlay.bmp", &loaders.ImageParams{FlipY: true})
	require.NoError(t, err)
	data := res.Data.(*loaders.ImageData)
	assert.Equal(t, int32(1), data.Width)
	assert.Equal(t, int32(2), data.Height)
	// flipped: the bottom (green) row comes first
	assert.Equal(t, []byte{0, 255, 0, 255, 255, 0, 0, 255}, data.Pixels)
}

func TestAssetManagerReportsChanges(t *testing.T) {
	am, dir := newTestManager(t)

	writeFile(t, filepath.Join(dir, "shaders", "quad.frag"), []byte("out vec4 c; void main() {}"))

	select {
	case rel := <-am.Changed():
		assert.Equal(t, "shaders/quad.frag", rel)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
	res, err := am.LoadAsset("shaders/quad.frag", nil)
	require.NoError(t, err)
	assert.Equal(t, rhi.SHADER_TYPE_PIXEL, res.Data.(*loaders.ShaderData).Stage)
}

func TestDetermineAssetType(t *testing.T) {
	tests := []struct {
		path string
		want loaders.ResourceType
	}{
		{"a.vert", loaders.ResourceTypeShader},
		{"a.comp", loaders.ResourceTypeShader},
		{"a.mesh", loaders.ResourceTypeShader},
		{"a.png", loaders.ResourceTypeImage},
		{"a.tiff", loaders.ResourceTypeImage},
		{"a.obj", loaders.ResourceTypeNone},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, determineAssetType(tt.path))
		})
	}
}
