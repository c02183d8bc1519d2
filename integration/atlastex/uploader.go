// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package atlastex

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glyphatlas"
)

// Common errors returned by Uploader operations.
var (
	// ErrClosed is returned when operations are attempted on a closed uploader.
	ErrClosed = errors.New("atlastex: uploader is closed")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("atlastex: nil DeviceProvider")

	// ErrNilAtlas is returned when a nil atlas is passed.
	ErrNilAtlas = errors.New("atlastex: nil atlas")

	// ErrNilCreator is returned when no texture creator is available for
	// the first upload.
	ErrNilCreator = errors.New("atlastex: nil TextureCreator")

	// ErrEmptyAtlas is returned when the atlas has no pixels, e.g. after
	// the font cache was closed.
	ErrEmptyAtlas = errors.New("atlastex: atlas image is empty")
)

// Atlas is the part of *glyphatlas.FontCache the uploader reads.
type Atlas interface {
	HasAtlasChanged() bool
	AtlasImage() glyphatlas.AtlasImage
}

// FormatCreator is implemented by texture creators that accept formats
// other than RGBA8.
type FormatCreator interface {
	NewTextureWithFormat(width, height int, format gputypes.TextureFormat,
		usage gputypes.TextureUsage, data []byte) (gpucontext.Texture, error)
}

// textureDestroyer matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// AtlasUsage is the usage requested for atlas textures: sampled in shaders
// and written by uploads.
const AtlasUsage = gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst

// Uploader mirrors an atlas into a GPU texture.
type Uploader struct {
	provider gpucontext.DeviceProvider
	atlas    Atlas

	texture gpucontext.Texture
	format  gputypes.TextureFormat
	width   int
	height  int
	rgba    []byte // expansion buffer for RGBA creators

	stale   bool // atlas fetched but not uploaded
	uploads int
	closed  bool
}

// New creates an Uploader for atlas. No texture is created until the first
// Sync or RenderTo.
func New(provider gpucontext.DeviceProvider, atlas Atlas) (*Uploader, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if atlas == nil {
		return nil, ErrNilAtlas
	}
	return &Uploader{provider: provider, atlas: atlas}, nil
}

// Sync uploads the atlas if it changed since the last upload and returns
// the texture. creator is only used when the texture must be (re)created.
func (u *Uploader) Sync(creator gpucontext.TextureCreator) (gpucontext.Texture, error) {
	if u.closed {
		return nil, ErrClosed
	}
	if u.texture != nil && !u.stale && !u.atlas.HasAtlasChanged() {
		return u.texture, nil
	}

	// AtlasImage clears the changed flag; stale keeps the upload pending
	// if it fails below.
	img := u.atlas.AtlasImage()
	u.stale = true
	if img.Width <= 0 || img.Height <= 0 || len(img.Pix) < img.Width*img.Height {
		return nil, ErrEmptyAtlas
	}

	if u.texture != nil && u.width == img.Width && u.height == img.Height {
		if updater, ok := u.texture.(gpucontext.TextureUpdater); ok {
			if err := updater.UpdateData(u.pixels(img)); err != nil {
				return nil, fmt.Errorf("atlastex: texture update failed: %w", err)
			}
			u.stale = false
			u.uploads++
			return u.texture, nil
		}
	}

	if creator == nil {
		return nil, ErrNilCreator
	}
	tex, format, err := u.createTexture(creator, img)
	if err != nil {
		return nil, err
	}
	u.destroyTexture()
	u.texture = tex
	u.format = format
	u.width, u.height = img.Width, img.Height
	u.stale = false
	u.uploads++

	glyphatlas.Logger().Debug("atlastex: texture created",
		"width", img.Width, "height", img.Height, "format", format)
	return tex, nil
}

// createTexture uploads img into a new texture, preferring R8 when the
// creator supports it.
func (u *Uploader) createTexture(creator gpucontext.TextureCreator, img glyphatlas.AtlasImage) (gpucontext.Texture, gputypes.TextureFormat, error) {
	if fc, ok := creator.(FormatCreator); ok {
		tex, err := fc.NewTextureWithFormat(img.Width, img.Height,
			gputypes.TextureFormatR8Unorm, AtlasUsage, img.Pix[:img.Width*img.Height])
		if err != nil {
			return nil, gputypes.TextureFormatUndefined, fmt.Errorf("atlastex: NewTextureWithFormat failed: %w", err)
		}
		return tex, gputypes.TextureFormatR8Unorm, nil
	}

	tex, err := creator.NewTextureFromRGBA(img.Width, img.Height, u.expand(img))
	if err != nil {
		return nil, gputypes.TextureFormatUndefined, fmt.Errorf("atlastex: NewTextureFromRGBA failed: %w", err)
	}
	if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
		pt.SetPremultiplied(true)
	}
	return tex, gputypes.TextureFormatRGBA8Unorm, nil
}

// pixels returns img in the layout of the current texture.
func (u *Uploader) pixels(img glyphatlas.AtlasImage) []byte {
	if u.format == gputypes.TextureFormatR8Unorm {
		return img.Pix[:img.Width*img.Height]
	}
	return u.expand(img)
}

// expand replicates every atlas byte into four RGBA channels.
func (u *Uploader) expand(img glyphatlas.AtlasImage) []byte {
	n := img.Width * img.Height
	if cap(u.rgba) < 4*n {
		u.rgba = make([]byte, 4*n)
	}
	u.rgba = u.rgba[:4*n]
	for i, v := range img.Pix[:n] {
		o := u.rgba[4*i : 4*i+4 : 4*i+4]
		o[0], o[1], o[2], o[3] = v, v, v, v
	}
	return u.rgba
}

// RenderTo syncs the texture and draws it at (x, y).
func (u *Uploader) RenderTo(dc gpucontext.TextureDrawer, x, y float32) error {
	if u.closed {
		return ErrClosed
	}
	tex, err := u.Sync(dc.TextureCreator())
	if err != nil {
		return err
	}
	return dc.DrawTexture(tex, x, y)
}

// Texture returns the current texture without syncing, or nil.
func (u *Uploader) Texture() gpucontext.Texture {
	return u.texture
}

// Format returns the format of the current texture.
// It is TextureFormatUndefined until the first upload.
func (u *Uploader) Format() gputypes.TextureFormat {
	return u.format
}

// Uploads returns how many times pixel data was sent to the GPU.
func (u *Uploader) Uploads() int {
	return u.uploads
}

// Provider returns the DeviceProvider associated with this uploader.
// Returns nil if the uploader is closed.
func (u *Uploader) Provider() gpucontext.DeviceProvider {
	if u.closed {
		return nil
	}
	return u.provider
}

// Close destroys the texture. Close is idempotent. The atlas is not closed.
func (u *Uploader) Close() error {
	if u.closed {
		return nil
	}
	u.closed = true
	u.destroyTexture()
	u.rgba = nil
	u.provider = nil
	u.atlas = nil
	return nil
}

func (u *Uploader) destroyTexture() {
	if d, ok := u.texture.(textureDestroyer); ok {
		d.Destroy()
	}
	u.texture = nil
}
