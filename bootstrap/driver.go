package bootstrap

import (
	"fmt"

	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// Host is the global-level entry into a Vulkan loader: everything that can be queried or
// created before an instance exists.
type Host interface {
	AvailableLayers() ([]string, error)
	AvailableExtensions() ([]string, error)
	CreateInstance(info InstanceInfo) (Instance, error)
}

// Instance is an exclusively-owned Vulkan instance.
type Instance interface {
	PhysicalDevices() ([]PhysicalDevice, error)

	// LookupCreateMessenger resolves vkCreateDebugUtilsMessengerEXT. The second return
	// value is false when the entry point is not exposed by the driver.
	LookupCreateMessenger() (CreateMessengerFunc, bool)
	// LookupDestroyMessenger resolves vkDestroyDebugUtilsMessengerEXT.
	LookupDestroyMessenger() (DestroyMessengerFunc, bool)

	Destroy()
}

// PhysicalDevice is a reference into the driver's device enumeration. It is only valid
// while the Instance that produced it is alive and is never destroyed explicitly.
type PhysicalDevice interface {
	Properties() (DeviceProperties, error)
	Features() (DeviceFeatures, error)
	QueueFamilies() []QueueFamily
	Extensions() ([]string, error)
	CreateDevice(info DeviceInfo) (Device, error)
}

// Device is an exclusively-owned logical device.
type Device interface {
	Queue(family, index int) Queue
	WaitIdle() error
	Destroy()
}

// Queue is a non-owning reference to a device queue.
type Queue interface {
	Family() int
}

// Surface is a presentation surface bound to an Instance and a window.
type Surface interface {
	SupportsPresent(device PhysicalDevice, family int) (bool, error)
	Destroy()
}

// Window is the windowing collaborator. It is created and destroyed outside of a Context.
type Window interface {
	RequiredInstanceExtensions() []string
	CreateSurface(instance Instance) (Surface, error)
}

// MessengerHandle identifies a debug messenger. Its value is opaque outside the driver
// that created it.
type MessengerHandle any

type CreateMessengerFunc func(config MessengerConfig) (MessengerHandle, error)
type DestroyMessengerFunc func(messenger MessengerHandle)

// InstanceInfo carries everything needed for vkCreateInstance.
type InstanceInfo struct {
	ApplicationName    string
	ApplicationVersion common.Version
	EngineName         string
	EngineVersion      common.Version
	APIVersion         common.APIVersion

	Layers     []string
	Extensions []string

	// EnumeratePortability sets the enumerate-portability instance flag.
	EnumeratePortability bool

	// Messenger is chained onto instance creation so that messages emitted while the
	// instance is being created or destroyed are captured as well.
	Messenger *MessengerConfig
}

// QueueRequest asks for len(Priorities) queues from a single family.
type QueueRequest struct {
	FamilyIndex int
	Priorities  []float32
}

type DeviceInfo struct {
	QueueFamilies []QueueRequest
	Layers        []string
	Extensions    []string
}

type QueueFamily struct {
	Flags      core1_0.QueueFlags
	QueueCount int
}

// DeviceType classifies a physical device. Values are the driver's own.
type DeviceType core1_0.PhysicalDeviceType

const (
	DeviceTypeOther         = DeviceType(core1_0.PhysicalDeviceTypeOther)
	DeviceTypeIntegratedGPU = DeviceType(core1_0.PhysicalDeviceTypeIntegratedGPU)
	DeviceTypeDiscreteGPU   = DeviceType(core1_0.PhysicalDeviceTypeDiscreteGPU)
	DeviceTypeVirtualGPU    = DeviceType(core1_0.PhysicalDeviceTypeVirtualGPU)
	DeviceTypeCPU           = DeviceType(core1_0.PhysicalDeviceTypeCPU)
)

var deviceTypeNames = map[DeviceType]string{
	DeviceTypeOther:         "other",
	DeviceTypeIntegratedGPU: "integrated GPU",
	DeviceTypeDiscreteGPU:   "discrete GPU",
	DeviceTypeVirtualGPU:    "virtual GPU",
	DeviceTypeCPU:           "CPU",
}

func (t DeviceType) String() string {
	if name, ok := deviceTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DeviceType(%d)", int(t))
}

// DeviceProperties holds the identifying properties of a physical device.
type DeviceProperties struct {
	Name       string
	Type       DeviceType
	APIVersion common.APIVersion

	VendorID uint32
	DeviceID uint32
}

// DeviceFeatures holds the subset of physical device features this package reports.
type DeviceFeatures struct {
	GeometryShader    bool
	SamplerAnisotropy bool
}
