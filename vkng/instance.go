package vkng

import (
	"github.com/vkngwrapper/bootstrap/bootstrap"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

type Instance struct {
	instanceDriver core1_0.CoreInstanceDriver
	extensions     map[string]struct{}

	debugDriver      ext_debug_utils.ExtensionDriver
	surfaceExtension khr_surface.ExtensionDriver
}

func (i *Instance) PhysicalDevices() ([]bootstrap.PhysicalDevice, error) {
	physicalDevices, _, err := i.instanceDriver.EnumeratePhysicalDevices()
	if err != nil {
		return nil, err
	}

	devices := make([]bootstrap.PhysicalDevice, 0, len(physicalDevices))
	for _, device := range physicalDevices {
		devices = append(devices, &PhysicalDevice{
			instance:       i,
			physicalDevice: device,
		})
	}
	return devices, nil
}

// debugUtils returns the debug utils extension driver. Its entry points only resolve when
// the extension was enabled on the instance.
func (i *Instance) debugUtils() (ext_debug_utils.ExtensionDriver, bool) {
	if _, enabled := i.extensions[ext_debug_utils.ExtensionName]; !enabled {
		return nil, false
	}

	if i.debugDriver == nil {
		i.debugDriver = ext_debug_utils.CreateExtensionDriverFromCoreDriver(i.instanceDriver)
	}
	return i.debugDriver, true
}

func (i *Instance) LookupCreateMessenger() (bootstrap.CreateMessengerFunc, bool) {
	debugDriver, ok := i.debugUtils()
	if !ok {
		return nil, false
	}

	return func(config bootstrap.MessengerConfig) (bootstrap.MessengerHandle, error) {
		messenger, _, err := debugDriver.CreateDebugUtilsMessenger(nil, messengerCreateInfo(config))
		if err != nil {
			return nil, err
		}
		return messenger, nil
	}, true
}

func (i *Instance) LookupDestroyMessenger() (bootstrap.DestroyMessengerFunc, bool) {
	debugDriver, ok := i.debugUtils()
	if !ok {
		return nil, false
	}

	return func(handle bootstrap.MessengerHandle) {
		messenger, ok := handle.(ext_debug_utils.DebugUtilsMessenger)
		if !ok || !messenger.Initialized() {
			return
		}
		debugDriver.DestroyDebugUtilsMessenger(messenger, nil)
	}, true
}

func (i *Instance) surfaceDriver() khr_surface.ExtensionDriver {
	if i.surfaceExtension == nil {
		i.surfaceExtension = khr_surface.CreateExtensionDriverFromCoreDriver(i.instanceDriver)
	}
	return i.surfaceExtension
}

func (i *Instance) Destroy() {
	i.instanceDriver.DestroyInstance(nil)
}
