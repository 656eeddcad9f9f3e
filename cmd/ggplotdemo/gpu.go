//go:build !nogpu

package main

// gg renders circles and paths on the GPU when a device is available and
// falls back to its CPU rasterizer otherwise. Build with -tags nogpu to
// leave the accelerator out entirely.
import _ "github.com/gogpu/gg/gpu"
