package vkng

import (
	"github.com/vkngwrapper/bootstrap/bootstrap"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// PhysicalDevice refers to an enumerated device. It is only valid while its Instance is.
type PhysicalDevice struct {
	instance       *Instance
	physicalDevice core1_0.PhysicalDevice
}

func (p *PhysicalDevice) Properties() (bootstrap.DeviceProperties, error) {
	properties, err := p.instance.instanceDriver.GetPhysicalDeviceProperties(p.physicalDevice)
	if err != nil {
		return bootstrap.DeviceProperties{}, err
	}
	return deviceProperties(properties), nil
}

func deviceProperties(properties *core1_0.PhysicalDeviceProperties) bootstrap.DeviceProperties {
	return bootstrap.DeviceProperties{
		Name:       properties.Name,
		Type:       bootstrap.DeviceType(properties.Type),
		APIVersion: properties.APIVersion,
		VendorID:   properties.VendorID,
		DeviceID:   properties.DeviceID,
	}
}

func (p *PhysicalDevice) Features() (bootstrap.DeviceFeatures, error) {
	features := p.instance.instanceDriver.GetPhysicalDeviceFeatures(p.physicalDevice)
	return bootstrap.DeviceFeatures{
		GeometryShader:    features.GeometryShader,
		SamplerAnisotropy: features.SamplerAnisotropy,
	}, nil
}

// QueueFamilies reports the device's families in driver order.
func (p *PhysicalDevice) QueueFamilies() []bootstrap.QueueFamily {
	queueFamilies := p.instance.instanceDriver.GetPhysicalDeviceQueueFamilyProperties(p.physicalDevice)

	families := make([]bootstrap.QueueFamily, 0, len(queueFamilies))
	for _, queueFamily := range queueFamilies {
		families = append(families, bootstrap.QueueFamily{
			Flags:      queueFamily.QueueFlags,
			QueueCount: int(queueFamily.QueueCount),
		})
	}
	return families
}

func (p *PhysicalDevice) Extensions() ([]string, error) {
	extensions, _, err := p.instance.instanceDriver.EnumerateDeviceExtensionProperties(p.physicalDevice)
	if err != nil {
		return nil, err
	}
	return names(extensions), nil
}

func (p *PhysicalDevice) CreateDevice(info bootstrap.DeviceInfo) (bootstrap.Device, error) {
	var queueFamilyOptions []core1_0.DeviceQueueCreateInfo
	for _, queueFamily := range info.QueueFamilies {
		queueFamilyOptions = append(queueFamilyOptions, core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: queueFamily.FamilyIndex,
			QueuePriorities:  queueFamily.Priorities,
		})
	}

	deviceDriver, _, err := p.instance.instanceDriver.CreateDevice(p.physicalDevice, nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos:      queueFamilyOptions,
		EnabledFeatures:       &core1_0.PhysicalDeviceFeatures{},
		EnabledLayerNames:     info.Layers,
		EnabledExtensionNames: info.Extensions,
	})
	if err != nil {
		return nil, err
	}

	return &Device{deviceDriver: deviceDriver}, nil
}

type Device struct {
	deviceDriver core1_0.CoreDeviceDriver
}

func (d *Device) Queue(family, index int) bootstrap.Queue {
	return &Queue{
		queue:  d.deviceDriver.GetQueue(family, index),
		family: family,
	}
}

func (d *Device) WaitIdle() error {
	_, err := d.deviceDriver.DeviceWaitIdle()
	return err
}

func (d *Device) Destroy() {
	d.deviceDriver.DestroyDevice(nil)
}

// Queue is a device queue. It is owned by the device that returned it.
type Queue struct {
	queue  core1_0.Queue
	family int
}

func (q *Queue) Family() int { return q.family }
