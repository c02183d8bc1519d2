// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package atlastex keeps a GPU texture in sync with a glyph atlas.
//
// The data flow is:
//
//	FontCache.Glyph (CPU atlas) -> HasAtlasChanged -> AtlasImage -> GPU Texture
//
// Uploader polls the atlas changed flag once per frame and uploads only when
// new glyphs were written. The texture is created lazily on the first Sync.
//
// # Usage
//
//	up, _ := atlastex.New(app.GPUContextProvider(), cache)
//	defer up.Close()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    cache.WarmUp(label)
//	    up.RenderTo(dc.AsTextureDrawer(), 0, 0)
//	})
//
// # Texture Format
//
// The atlas has one byte per pixel. Texture creators that implement
// FormatCreator receive the bytes as-is in gputypes.TextureFormatR8Unorm.
// Plain gpucontext.TextureCreator implementations receive RGBA data with
// the atlas value replicated into every channel, which is premultiplied
// white at the atlas value's opacity.
//
// # Thread Safety
//
// Uploader is NOT safe for concurrent use, and neither is the FontCache
// it reads from.
package atlastex
