// Command demo is a minimal host: it opens a GLFW window, wires it to a
// duskgfx.Renderer, and moves a handful of rects around a circle to
// exercise position/rotation updates every frame (colors are set once). It
// mirrors the original's bootstrap/src/runner.rs event dispatch for resize,
// redraw and close, translated into a synchronous per-iteration poll, since
// GLFW (unlike winit) has no resumed/suspended callback split. Scale-factor
// changes are not handled.
package main

import (
	"log"
	"math"
	"runtime"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/duskgfx/duskgfx"
)

// glfwSurfaceSource adapts a *glfw.Window to duskgfx.SurfaceDescriptorSource.
type glfwSurfaceSource struct{ window *glfw.Window }

func (s glfwSurfaceSource) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(s.window)
}

func init() {
	// GLFW and most GPU drivers require all calls to originate from one OS
	// thread.
	runtime.LockOSThread()
}

func main() {
	settings := duskgfx.NewWindowSettings("duskgfx demo", 800, 600)

	if err := glfw.Init(); err != nil {
		log.Fatalln("glfw init:", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, boolToGlfw(settings.Resizable))

	window, err := glfw.CreateWindow(settings.Width, settings.Height, settings.Title, nil, nil)
	if err != nil {
		log.Fatalln("create window:", err)
	}

	source := glfwSurfaceSource{window: window}
	cfg := duskgfx.DefaultRendererConfig(settings.Title, uint32(settings.Width), uint32(settings.Height))

	renderer, err := duskgfx.NewRenderer(source, cfg)
	if err != nil {
		log.Fatalln("create renderer:", err)
	}
	renderer.SetLogger(duskgfx.NewStdLogger("demo", false))

	const rectCount = 16
	rects := make([]duskgfx.ObjectId, rectCount)
	for i := range rects {
		id := renderer.NewRect()
		renderer.SetSize(id, 40, 40)
		renderer.SetColor(id, float32(i)/rectCount, 0.4, 1-float32(i)/rectCount, 1)
		renderer.SetZIndex(id, float32(i))
		rects[i] = id
	}

	lastWidth, lastHeight := settings.Width, settings.Height
	start := time.Now()

	for !window.ShouldClose() {
		glfw.PollEvents()

		width, height := window.GetSize()
		if width != lastWidth || height != lastHeight {
			lastWidth, lastHeight = width, height
			if width > 0 && height > 0 {
				renderer.SetViewport(uint32(width), uint32(height))
			}
		}

		t := float32(time.Since(start).Seconds())
		for i, id := range rects {
			angle := t + float32(i)*0.3
			cx := float32(width)/2 + float32(math.Cos(float64(angle)))*150
			cy := float32(height)/2 + float32(math.Sin(float64(angle)))*150
			renderer.SetPosition(id, cx, cy)
			renderer.SetRotation(id, angle)
		}

		if err := renderer.RenderFrame(source); err != nil {
			log.Fatalln("render frame:", err)
		}
	}
}

func boolToGlfw(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
