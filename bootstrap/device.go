package bootstrap

import (
	"log"

	"github.com/cockroachdb/errors"
)

// SelectPhysicalDevice returns the first enumerated device whose queue families are
// complete for surface, along with those families. Properties and features are read for
// logging only; they never disqualify a device.
func SelectPhysicalDevice(instance Instance, surface Surface, logger *log.Logger) (PhysicalDevice, QueueFamilyIndices, error) {
	physicalDevices, err := instance.PhysicalDevices()
	if err != nil {
		return nil, QueueFamilyIndices{}, markCause(err, ErrNoVulkanCapableGPU)
	}

	if len(physicalDevices) == 0 {
		return nil, QueueFamilyIndices{}, errors.WithStack(ErrNoVulkanCapableGPU)
	}

	for deviceIdx, device := range physicalDevices {
		describeDevice(deviceIdx, device, logger)

		indices, err := FindQueueFamilies(device, surface)
		if err != nil {
			logger.Printf("could not get physical device %d queue families: %v", deviceIdx, err)
			continue
		}

		if indices.IsComplete() {
			return device, indices, nil
		}
	}

	return nil, QueueFamilyIndices{}, errors.Wrapf(ErrNoSuitableGPU, "none of %d devices qualify", len(physicalDevices))
}

func describeDevice(deviceIdx int, device PhysicalDevice, logger *log.Logger) {
	properties, err := device.Properties()
	if err != nil {
		logger.Printf("could not get physical device %d properties: %v", deviceIdx, err)
	} else {
		logger.Printf("physical device %d: %s (%s, Vulkan %v, vendor %#04x device %#04x)",
			deviceIdx, properties.Name, properties.Type, properties.APIVersion, properties.VendorID, properties.DeviceID)
	}

	features, err := device.Features()
	if err != nil {
		logger.Printf("could not get physical device %d features: %v", deviceIdx, err)
		return
	}
	logger.Printf("physical device %d features: geometry shader: %t, anisotropy: %t",
		deviceIdx, features.GeometryShader, features.SamplerAnisotropy)
}

// QueueCreateInfos requests one queue at priority 1.0 for every distinct family in indices.
func QueueCreateInfos(indices QueueFamilyIndices) []QueueRequest {
	var queueFamilyOptions []QueueRequest
	queuePriority := float32(1.0)
	for _, queueFamily := range indices.UniqueFamilies() {
		queueFamilyOptions = append(queueFamilyOptions, QueueRequest{
			FamilyIndex: queueFamily,
			Priorities:  []float32{queuePriority},
		})
	}
	return queueFamilyOptions
}

// CreateLogicalDevice creates a device with one queue per distinct family in indices and
// returns it with its graphics and present queues. No optional features are enabled.
func CreateLogicalDevice(physicalDevice PhysicalDevice, indices QueueFamilyIndices, layers, extensions []string) (Device, Queue, Queue, error) {
	if !indices.IsComplete() {
		return nil, nil, nil, errors.Wrap(ErrLogicalDeviceCreationFailed, "queue family indices are incomplete")
	}

	device, err := physicalDevice.CreateDevice(DeviceInfo{
		QueueFamilies: QueueCreateInfos(indices),
		Layers:        layers,
		Extensions:    extensions,
	})
	if err != nil {
		return nil, nil, nil, markCause(err, ErrLogicalDeviceCreationFailed)
	}

	graphicsQueue := device.Queue(*indices.GraphicsFamily, 0)
	presentQueue := device.Queue(*indices.PresentFamily, 0)
	return device, graphicsQueue, presentQueue, nil
}

// DeviceExtensions returns the device extensions to enable on physicalDevice. Only the
// portability subset is ever requested, and only when portability is on and the device
// reports it.
func DeviceExtensions(physicalDevice PhysicalDevice, portability bool) ([]string, error) {
	if !portability {
		return nil, nil
	}

	available, err := physicalDevice.Extensions()
	if err != nil {
		return nil, markCause(err, ErrLogicalDeviceCreationFailed)
	}

	for _, ext := range available {
		if ext == DeviceExtensionPortabilitySubset {
			return []string{DeviceExtensionPortabilitySubset}, nil
		}
	}
	return nil, nil
}
