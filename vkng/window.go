package vkng

import (
	"github.com/cockroachdb/errors"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/bootstrap/bootstrap"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2/v3"
)

// Window is an SDL window with Vulkan support. It implements bootstrap.Window.
type Window struct {
	window *sdl.Window
}

// OpenWindow initializes SDL video and opens a fixed-size window able to host a Vulkan
// surface.
func OpenWindow(title string, width, height int) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, err
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, int32(width), int32(height), sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN)
	if err != nil {
		sdl.Quit()
		return nil, err
	}

	return &Window{window: window}, nil
}

func (w *Window) RequiredInstanceExtensions() []string {
	return w.window.VulkanGetInstanceExtensions()
}

func (w *Window) CreateSurface(instance bootstrap.Instance) (bootstrap.Surface, error) {
	vkInstance, ok := instance.(*Instance)
	if !ok {
		return nil, errors.Newf("unexpected instance type %T", instance)
	}

	surface, err := vkng_sdl2.CreateSurface(vkInstance.instanceDriver.Instance(), vkInstance.surfaceDriver(), w.window)
	if err != nil {
		return nil, err
	}

	return &Surface{
		instance: vkInstance,
		surface:  surface,
	}, nil
}

// WaitEvent blocks until SDL delivers the next event. It returns false once the user has
// asked to quit.
func (w *Window) WaitEvent() bool {
	return handleEvent(sdl.WaitEvent())
}

func handleEvent(event sdl.Event) bool {
	switch event.(type) {
	case *sdl.QuitEvent:
		return false
	}
	return true
}

func (w *Window) Destroy() {
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
	sdl.Quit()
}
