// Package bootstrap brings up a Vulkan instance, an optional debug messenger, a window
// surface and a logical device with graphics and present queues, and tears them down again
// in reverse order.
//
// The package only talks to the driver through the interfaces in driver.go; package vkng
// provides the production implementation.
package bootstrap

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/loov/hrtime"
)

type Option func(*Context)

func WithLogger(logger *log.Logger) Option {
	return func(c *Context) {
		c.logger = logger
	}
}

// WithMessengerConfig replaces DefaultMessengerConfig for both the messenger chained onto
// instance creation and the persistent one.
func WithMessengerConfig(config MessengerConfig) Option {
	return func(c *Context) {
		c.messengerConfig = &config
	}
}

// Context is the application root: it exclusively owns every handle it creates and is
// driven from a single goroutine.
type Context struct {
	cfg    Config
	host   Host
	window Window
	logger *log.Logger
	id     uuid.UUID

	state      State
	stateStart time.Duration
	cleanup    cleanupStack

	messengerConfig *MessengerConfig

	instance       Instance
	messenger      MessengerHandle
	surface        Surface
	physicalDevice PhysicalDevice
	indices        QueueFamilyIndices
	device         Device
	graphicsQueue  Queue
	presentQueue   Queue
}

func New(cfg Config, host Host, window Window, opts ...Option) *Context {
	id := uuid.New()
	c := &Context{
		cfg:        cfg,
		host:       host,
		window:     window,
		id:         id,
		logger:     log.New(os.Stderr, fmt.Sprintf("[%s] ", id.String()[:8]), log.LstdFlags),
		stateStart: hrtime.Now(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.messengerConfig == nil {
		config := DefaultMessengerConfig(c.logger)
		c.messengerConfig = &config
	}

	return c
}

func (c *Context) ID() uuid.UUID                     { return c.id }
func (c *Context) State() State                      { return c.state }
func (c *Context) Instance() Instance                { return c.instance }
func (c *Context) Messenger() MessengerHandle        { return c.messenger }
func (c *Context) Surface() Surface                  { return c.surface }
func (c *Context) PhysicalDevice() PhysicalDevice    { return c.physicalDevice }
func (c *Context) QueueFamilies() QueueFamilyIndices { return c.indices }
func (c *Context) Device() Device                    { return c.device }
func (c *Context) GraphicsQueue() Queue              { return c.graphicsQueue }
func (c *Context) PresentQueue() Queue               { return c.presentQueue }

// Init runs the whole bootstrap sequence. On failure everything acquired so far is
// released and the Context ends up Destroyed.
func (c *Context) Init() error {
	if c.state != StateUninitialized {
		return errors.Wrapf(ErrInvalidState, "Init called in state %s", c.state)
	}

	err := c.initVulkan()
	if err != nil {
		c.teardown()
		return err
	}

	return nil
}

func (c *Context) initVulkan() error {
	if c.window == nil {
		return errors.Wrap(ErrInvalidState, "no window")
	}

	err := c.advance(StateWindowCreated)
	if err != nil {
		return err
	}

	err = c.createInstance()
	if err != nil {
		return err
	}

	err = c.setupDebugMessenger()
	if err != nil {
		return err
	}

	err = c.createSurface()
	if err != nil {
		return err
	}

	err = c.pickPhysicalDevice()
	if err != nil {
		return err
	}

	return c.createLogicalDevice()
}

func (c *Context) createInstance() error {
	instance, err := CreateInstance(c.host, c.window, c.cfg, *c.messengerConfig, c.logger)
	if err != nil {
		return err
	}

	c.instance = instance
	c.cleanup.push("instance", func() {
		c.instance.Destroy()
		c.instance = nil
	})

	return c.advance(StateInstanceCreated)
}

func (c *Context) setupDebugMessenger() error {
	if !c.cfg.EnableDiagnostics {
		return nil
	}

	messenger, err := CreateMessenger(c.instance, *c.messengerConfig)
	if err != nil {
		return err
	}

	c.messenger = messenger
	c.cleanup.push("debug messenger", func() {
		DestroyMessenger(c.instance, c.messenger, c.logger)
		c.messenger = nil
	})

	return c.advance(StateDiagnosticsAttached)
}

func (c *Context) createSurface() error {
	surface, err := c.window.CreateSurface(c.instance)
	if err != nil {
		return markCause(err, ErrSurfaceCreationFailed)
	}

	c.surface = surface
	c.cleanup.push("surface", func() {
		c.surface.Destroy()
		c.surface = nil
	})

	return c.advance(StateSurfaceCreated)
}

func (c *Context) pickPhysicalDevice() error {
	physicalDevice, indices, err := SelectPhysicalDevice(c.instance, c.surface, c.logger)
	if err != nil {
		return err
	}

	c.physicalDevice = physicalDevice
	c.indices = indices
	c.cleanup.push("physical device selection", func() {
		c.physicalDevice = nil
		c.indices = QueueFamilyIndices{}
	})

	return c.advance(StatePhysicalDeviceSelected)
}

func (c *Context) createLogicalDevice() error {
	extensions, err := DeviceExtensions(c.physicalDevice, c.cfg.Portability)
	if err != nil {
		return err
	}

	device, graphicsQueue, presentQueue, err := CreateLogicalDevice(c.physicalDevice, c.indices, c.cfg.layers(), extensions)
	if err != nil {
		return err
	}

	c.device = device
	c.graphicsQueue = graphicsQueue
	c.presentQueue = presentQueue
	c.cleanup.push("logical device", func() {
		c.graphicsQueue = nil
		c.presentQueue = nil
		c.device.Destroy()
		c.device = nil
	})

	return c.advance(StateLogicalDeviceCreated)
}

// Run marks the context Running, calls loop, and tears everything down once loop returns.
// The device is waited on before it is destroyed.
func (c *Context) Run(loop func() error) error {
	if c.state != StateLogicalDeviceCreated {
		return errors.Wrapf(ErrInvalidState, "Run called in state %s", c.state)
	}

	err := c.advance(StateRunning)
	if err != nil {
		return err
	}

	err = loop()

	// Running -> Terminating can't fail
	_ = c.advance(StateTerminating)

	if c.device != nil {
		waitErr := c.device.WaitIdle()
		if waitErr != nil {
			err = errors.CombineErrors(err, errors.Wrap(waitErr, "failed to wait for device idle"))
		}
	}

	c.teardown()
	return err
}

// Destroy releases everything the context still owns. It is safe to call more than once
// and from any state.
func (c *Context) Destroy() {
	if c.state == StateDestroyed {
		return
	}

	if c.state < StateTerminating && c.state > StateUninitialized {
		_ = c.advance(StateTerminating)
	}

	c.teardown()
}

func (c *Context) teardown() {
	if c.cleanup.len() > 0 {
		c.logger.Printf("tearing down %d handles", c.cleanup.len())
	}
	c.cleanup.unwind(func(name string) {
		c.logger.Printf("releasing %s", name)
	})

	if c.state != StateDestroyed {
		_ = c.advance(StateDestroyed)
	}
}

func (c *Context) advance(next State) error {
	if next <= c.state {
		return errors.Wrapf(ErrInvalidState, "%s -> %s", c.state, next)
	}

	now := hrtime.Now()
	c.logger.Printf("%s -> %s (%v)", c.state, next, now-c.stateStart)
	c.state = next
	c.stateStart = now
	return nil
}
