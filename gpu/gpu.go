//go:build !nogpu

// Package gpu holds the GPU side of glyph atlas text rendering: the SDF
// text shader, its uniform layout, and quad generation from cached glyphs.
//
// The atlas texture itself is kept up to date by package
// integration/atlastex; this package only describes how to draw from it.
//
// Usage:
//
//	module, err := gpu.NewSDFTextShaderModule(device)
//	...
//	verts, _ := gpu.AppendTextQuads(nil, cache, "Hello", 10, 40, 1)
//	uniforms := gpu.NewSDFTextUniforms(800, 600, [4]float32{1, 1, 1, 1}, cache.Settings())
//	queue.WriteBuffer(uniformBuf, 0, uniforms.Bytes())
package gpu

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// Embedded SDF text shader source.
//
//go:embed shaders/sdf_text.wgsl
var sdfTextShaderSource string

// ErrNilDevice is returned when a nil HAL device is passed.
var ErrNilDevice = errors.New("gpu: nil device")

// SDFTextShaderSource returns the WGSL source for the SDF text shader.
func SDFTextShaderSource() string {
	return sdfTextShaderSource
}

// CompileSDFTextShader compiles the SDF text shader to SPIR-V words.
func CompileSDFTextShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(sdfTextShaderSource)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile sdf_text shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}

// NewSDFTextShaderModule compiles the SDF text shader and creates a shader
// module on device. The caller destroys it with device.DestroyShaderModule.
func NewSDFTextShaderModule(device hal.Device) (hal.ShaderModule, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	spirv, err := CompileSDFTextShader()
	if err != nil {
		return nil, err
	}
	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "sdf_text_shader",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create sdf_text shader module: %w", err)
	}
	return module, nil
}
