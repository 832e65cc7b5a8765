package main

import (
	"log"
	"runtime"

	"github.com/vkngwrapper/bootstrap/bootstrap"
	"github.com/vkngwrapper/bootstrap/vkng"
)

type HelloTriangleApplication struct {
	cfg    bootstrap.Config
	window *vkng.Window
	vulkan *bootstrap.Context
}

func (app *HelloTriangleApplication) Run() error {
	err := app.initWindow()
	if err != nil {
		return err
	}
	defer app.window.Destroy()

	err = app.initVulkan()
	if err != nil {
		return err
	}

	return app.vulkan.Run(app.mainLoop)
}

func (app *HelloTriangleApplication) initWindow() error {
	window, err := vkng.OpenWindow("Vulkan", app.cfg.WindowWidth, app.cfg.WindowHeight)
	if err != nil {
		return err
	}
	app.window = window

	return nil
}

func (app *HelloTriangleApplication) initVulkan() error {
	host, err := vkng.NewHost()
	if err != nil {
		return err
	}

	app.vulkan = bootstrap.New(app.cfg, host, app.window)
	return app.vulkan.Init()
}

func (app *HelloTriangleApplication) mainLoop() error {
	for app.window.WaitEvent() {
	}

	return nil
}

func main() {
	runtime.LockOSThread()
	app := &HelloTriangleApplication{
		cfg: bootstrap.DefaultConfig(),
	}

	err := app.Run()
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}
