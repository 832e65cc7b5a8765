package vkng

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/bootstrap/bootstrap"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

type Surface struct {
	instance *Instance
	surface  khr_surface.Surface
}

func (s *Surface) SupportsPresent(device bootstrap.PhysicalDevice, family int) (bool, error) {
	physicalDevice, ok := device.(*PhysicalDevice)
	if !ok {
		return false, errors.Newf("unexpected physical device type %T", device)
	}

	supported, _, err := s.instance.surfaceDriver().GetPhysicalDeviceSurfaceSupport(s.surface, physicalDevice.physicalDevice, family)
	if err != nil {
		return false, err
	}
	return supported, nil
}

func (s *Surface) Destroy() {
	if s.surface.Initialized() {
		s.instance.surfaceDriver().DestroySurface(s.surface, nil)
	}
}
