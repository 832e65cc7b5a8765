package bootstrap

import "github.com/vkngwrapper/core/v3/core1_0"

type QueueFamilyIndices struct {
	GraphicsFamily *int
	PresentFamily  *int
}

func (i QueueFamilyIndices) IsComplete() bool {
	return i.GraphicsFamily != nil && i.PresentFamily != nil
}

// UniqueFamilies returns the distinct family indices, graphics first. Absent indices are
// skipped.
func (i QueueFamilyIndices) UniqueFamilies() []int {
	var families []int
	if i.GraphicsFamily != nil {
		families = append(families, *i.GraphicsFamily)
	}
	if i.PresentFamily != nil && (i.GraphicsFamily == nil || *i.PresentFamily != *i.GraphicsFamily) {
		families = append(families, *i.PresentFamily)
	}
	return families
}

// FindQueueFamilies walks device's queue families in order and records the first
// graphics-capable family and, independently, the first family able to present to surface.
// The walk stops as soon as both are known, so the lowest index wins for each role even when
// a later family could serve both. The result may be incomplete.
func FindQueueFamilies(device PhysicalDevice, surface Surface) (QueueFamilyIndices, error) {
	indices := QueueFamilyIndices{}
	queueFamilies := device.QueueFamilies()

	for queueFamilyIdx, queueFamily := range queueFamilies {
		if indices.GraphicsFamily == nil && queueFamily.Flags&core1_0.QueueGraphics != 0 {
			indices.GraphicsFamily = new(int)
			*indices.GraphicsFamily = queueFamilyIdx
		}

		if indices.PresentFamily == nil {
			supported, err := surface.SupportsPresent(device, queueFamilyIdx)
			if err != nil {
				return indices, err
			}

			if supported {
				indices.PresentFamily = new(int)
				*indices.PresentFamily = queueFamilyIdx
			}
		}

		if indices.IsComplete() {
			break
		}
	}

	return indices, nil
}
