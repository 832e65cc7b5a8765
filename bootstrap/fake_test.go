package bootstrap

import (
	"io"
	"log"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// Fake driver used by the tests in this package. Every fake appends to a shared journal
// so tests can check the order of driver calls.

type journal struct {
	calls []string
}

func (j *journal) record(call string) {
	if j != nil {
		j.calls = append(j.calls, call)
	}
}

func (j *journal) count(call string) int {
	n := 0
	for _, c := range j.calls {
		if c == call {
			n++
		}
	}
	return n
}

type fakeHost struct {
	j *journal

	layers       []string
	layersErr    error
	extensions   []string
	instance     *fakeInstance
	createErr    error
	instanceInfo *InstanceInfo
}

func (h *fakeHost) AvailableLayers() ([]string, error) {
	h.j.record("AvailableLayers")
	return h.layers, h.layersErr
}

func (h *fakeHost) AvailableExtensions() ([]string, error) {
	h.j.record("AvailableExtensions")
	return h.extensions, nil
}

func (h *fakeHost) CreateInstance(info InstanceInfo) (Instance, error) {
	h.j.record("CreateInstance")
	h.instanceInfo = &info
	if h.createErr != nil {
		return nil, h.createErr
	}
	return h.instance, nil
}

type fakeInstance struct {
	j *journal

	devices    []PhysicalDevice
	devicesErr error

	noCreateMessenger  bool
	noDestroyMessenger bool
	messengerErr       error
	messengerConfig    *MessengerConfig
}

func (i *fakeInstance) PhysicalDevices() ([]PhysicalDevice, error) {
	i.j.record("PhysicalDevices")
	return i.devices, i.devicesErr
}

func (i *fakeInstance) LookupCreateMessenger() (CreateMessengerFunc, bool) {
	if i.noCreateMessenger {
		return nil, false
	}
	return func(config MessengerConfig) (MessengerHandle, error) {
		i.j.record("CreateMessenger")
		i.messengerConfig = &config
		if i.messengerErr != nil {
			return nil, i.messengerErr
		}
		return "messenger", nil
	}, true
}

func (i *fakeInstance) LookupDestroyMessenger() (DestroyMessengerFunc, bool) {
	if i.noDestroyMessenger {
		return nil, false
	}
	return func(MessengerHandle) {
		i.j.record("DestroyMessenger")
	}, true
}

func (i *fakeInstance) Destroy() {
	i.j.record("DestroyInstance")
}

type fakePhysicalDevice struct {
	j *journal

	name          string
	families      []QueueFamily
	extensions    []string
	propertiesErr error
	featuresErr   error
	featureReads  int

	device     *fakeDevice
	createErr  error
	deviceInfo *DeviceInfo
}

func (p *fakePhysicalDevice) Properties() (DeviceProperties, error) {
	if p.propertiesErr != nil {
		return DeviceProperties{}, p.propertiesErr
	}
	return DeviceProperties{
		Name:       p.name,
		Type:       DeviceTypeDiscreteGPU,
		APIVersion: common.Vulkan1_2,
		VendorID:   0x10de,
		DeviceID:   0x2204,
	}, nil
}

func (p *fakePhysicalDevice) Features() (DeviceFeatures, error) {
	p.featureReads++
	return DeviceFeatures{GeometryShader: true}, p.featuresErr
}

func (p *fakePhysicalDevice) QueueFamilies() []QueueFamily {
	return p.families
}

func (p *fakePhysicalDevice) Extensions() ([]string, error) {
	return p.extensions, nil
}

func (p *fakePhysicalDevice) CreateDevice(info DeviceInfo) (Device, error) {
	p.j.record("CreateDevice")
	p.deviceInfo = &info
	if p.createErr != nil {
		return nil, p.createErr
	}
	if p.device == nil {
		p.device = &fakeDevice{j: p.j}
	}
	return p.device, nil
}

type fakeDevice struct {
	j *journal

	waitErr error
}

func (d *fakeDevice) Queue(family, index int) Queue {
	return fakeQueue{family: family, index: index}
}

func (d *fakeDevice) WaitIdle() error {
	d.j.record("WaitIdle")
	return d.waitErr
}

func (d *fakeDevice) Destroy() {
	d.j.record("DestroyDevice")
}

type fakeQueue struct {
	family int
	index  int
}

func (q fakeQueue) Family() int { return q.family }

// fakeSurface answers presentation queries per device name and family index.
type fakeSurface struct {
	j *journal

	present  map[string]map[int]bool
	queryErr map[string]error
}

func (s *fakeSurface) SupportsPresent(device PhysicalDevice, family int) (bool, error) {
	name := device.(*fakePhysicalDevice).name
	if err := s.queryErr[name]; err != nil {
		return false, err
	}
	return s.present[name][family], nil
}

func (s *fakeSurface) Destroy() {
	s.j.record("DestroySurface")
}

type fakeWindow struct {
	j *journal

	extensions []string
	surface    *fakeSurface
	surfaceErr error
}

func (w *fakeWindow) RequiredInstanceExtensions() []string {
	return w.extensions
}

func (w *fakeWindow) CreateSurface(Instance) (Surface, error) {
	w.j.record("CreateSurface")
	if w.surfaceErr != nil {
		return nil, w.surfaceErr
	}
	return w.surface, nil
}

var errDriver = errors.New("VK_ERROR_INITIALIZATION_FAILED")

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func graphicsFamily() QueueFamily {
	return QueueFamily{Flags: core1_0.QueueGraphics | core1_0.QueueCompute | core1_0.QueueTransfer, QueueCount: 1}
}

func transferFamily() QueueFamily {
	return QueueFamily{Flags: core1_0.QueueTransfer, QueueCount: 1}
}

func intPtr(v int) *int {
	return &v
}

// rig is a fully working fake setup with one suitable GPU.
type rig struct {
	j        *journal
	host     *fakeHost
	instance *fakeInstance
	device   *fakePhysicalDevice
	surface  *fakeSurface
	window   *fakeWindow
}

func newRig() *rig {
	j := &journal{}
	device := &fakePhysicalDevice{j: j, name: "gpu0", families: []QueueFamily{graphicsFamily()}}
	instance := &fakeInstance{j: j, devices: []PhysicalDevice{device}}
	surface := &fakeSurface{j: j, present: map[string]map[int]bool{"gpu0": {0: true}}}

	return &rig{
		j: j,
		host: &fakeHost{
			j:          j,
			layers:     []string{ValidationLayerKhronos},
			extensions: []string{"VK_KHR_surface", "VK_KHR_xlib_surface", ExtensionDebugUtils, ExtensionPortabilityEnumeration},
			instance:   instance,
		},
		instance: instance,
		device:   device,
		surface:  surface,
		window: &fakeWindow{
			j:          j,
			extensions: []string{"VK_KHR_surface", "VK_KHR_xlib_surface"},
			surface:    surface,
		},
	}
}

func (r *rig) context(cfg Config) *Context {
	return New(cfg, r.host, r.window, WithLogger(discardLogger()))
}
