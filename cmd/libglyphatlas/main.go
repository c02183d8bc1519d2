//go:build cgo

// Command libglyphatlas builds the C shared library around package capi:
//
//	go build -buildmode=c-shared -o libglyphatlas.so ./cmd/libglyphatlas
//
// Handles are plain integers (uintptr_t); 0 is the null handle and every
// function accepts it.
package main

/*
#include <stdbool.h>
#include <stddef.h>
#include <stdint.h>
#include <stdlib.h>
#include <string.h>

typedef struct {
	const void* ptr;
	ptrdiff_t   len;
} RawSlice;

typedef struct {
	const char* ptr;
	ptrdiff_t   len;
} RawString;

typedef struct {
	uint32_t font_size;
	uint32_t pad_size;
	float    sdf_radius;
	uint32_t atlas_width;
	uint32_t atlas_height;
	bool     initialize_with_default_glyphs;
} FontCacheSettings;

typedef struct {
	uint8_t kind;
	float   xmin;
	float   ymin;
	float   width;
	float   height;
	float   advance;
	float   uv_min_x;
	float   uv_min_y;
	float   uv_max_x;
	float   uv_max_y;
} GlyphInfo;

typedef struct {
	float ascent;
	float descent;
	float line_gap;
} LineMetrics;

typedef struct {
	uint32_t width;
	uint32_t height;
	RawSlice bytes;
} AtlasImage;
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/gogpu/glyphatlas/capi"
)

// messages keeps one C copy of every error message ever returned. The set
// is small and fixed, so the copies are never freed.
var (
	messagesMu sync.Mutex
	messages   = make(map[string]*C.char)
)

func cMessage(msg string) (*C.char, int) {
	messagesMu.Lock()
	defer messagesMu.Unlock()
	p, ok := messages[msg]
	if !ok {
		p = C.CString(msg)
		messages[msg] = p
	}
	return p, len(msg)
}

//export font_create
func font_create(bytes C.RawSlice, settings C.FontCacheSettings, err *C.RawString) C.uintptr_t {
	n, ok := fontDataLen(int64(bytes.len), bytes.ptr == nil)
	if !ok {
		setError(err, capi.MsgFontParse)
		return 0
	}
	data := C.GoBytes(unsafe.Pointer(bytes.ptr), C.int(n))

	h, msg := capi.Create(data, capi.Settings{
		FontSize:                    uint32(settings.font_size),
		PadSize:                     uint32(settings.pad_size),
		SDFRadius:                   float32(settings.sdf_radius),
		AtlasWidth:                  uint32(settings.atlas_width),
		AtlasHeight:                 uint32(settings.atlas_height),
		InitializeWithDefaultGlyphs: bool(settings.initialize_with_default_glyphs),
	})
	if h == 0 {
		setError(err, msg)
		return 0
	}
	return C.uintptr_t(h)
}

func setError(err *C.RawString, msg string) {
	if err == nil {
		return
	}
	p, n := cMessage(msg)
	err.ptr = p
	err.len = C.ptrdiff_t(n)
}

// atlases holds a C copy of each handle's atlas. Go memory cannot be
// returned to C, so font_get_atlas_image refreshes and returns the copy.
var (
	atlasesMu sync.Mutex
	atlases   = make(map[C.uintptr_t]unsafe.Pointer)
)

//export font_free
func font_free(h C.uintptr_t) {
	capi.Free(capi.Handle(h))

	atlasesMu.Lock()
	defer atlasesMu.Unlock()
	if p, ok := atlases[h]; ok {
		C.free(p)
		delete(atlases, h)
	}
}

//export font_has_atlas_image_changed
func font_has_atlas_image_changed(h C.uintptr_t) C.bool {
	return C.bool(capi.HasAtlasChanged(capi.Handle(h)))
}

//export font_get_atlas_image
func font_get_atlas_image(h C.uintptr_t) C.AtlasImage {
	img := capi.GetAtlasImage(capi.Handle(h))
	var out C.AtlasImage
	if len(img.Pix) == 0 {
		return out
	}

	atlasesMu.Lock()
	defer atlasesMu.Unlock()
	p, ok := atlases[h]
	if !ok {
		// The atlas size is fixed for the lifetime of a handle.
		p = C.malloc(C.size_t(len(img.Pix)))
		atlases[h] = p
	}
	C.memcpy(p, unsafe.Pointer(unsafe.SliceData(img.Pix)), C.size_t(len(img.Pix)))

	out.width = C.uint32_t(img.Width)
	out.height = C.uint32_t(img.Height)
	out.bytes.ptr = p
	out.bytes.len = C.ptrdiff_t(len(img.Pix))
	return out
}

//export font_get_or_add_glyph
func font_get_or_add_glyph(h C.uintptr_t, ch C.uint32_t) C.GlyphInfo {
	g := capi.GetOrAddGlyph(capi.Handle(h), uint32(ch))
	return C.GlyphInfo{
		kind:     C.uint8_t(g.Kind),
		xmin:     C.float(g.XMin),
		ymin:     C.float(g.YMin),
		width:    C.float(g.Width),
		height:   C.float(g.Height),
		advance:  C.float(g.Advance),
		uv_min_x: C.float(g.UVMinX),
		uv_min_y: C.float(g.UVMinY),
		uv_max_x: C.float(g.UVMaxX),
		uv_max_y: C.float(g.UVMaxY),
	}
}

//export font_get_horizontal_kerning
func font_get_horizontal_kerning(h C.uintptr_t, left, right C.uint32_t) C.float {
	return C.float(capi.GetHorizontalKerning(capi.Handle(h), uint32(left), uint32(right)))
}

//export font_get_line_metrics
func font_get_line_metrics(h C.uintptr_t) C.LineMetrics {
	m := capi.GetLineMetrics(capi.Handle(h))
	return C.LineMetrics{
		ascent:   C.float(m.Ascent),
		descent:  C.float(m.Descent),
		line_gap: C.float(m.LineGap),
	}
}

func main() {}
