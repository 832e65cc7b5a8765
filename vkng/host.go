// Package vkng implements the bootstrap driver interfaces with vkngwrapper, and the
// windowing collaborator with SDL2.
package vkng

import (
	"sort"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/bootstrap/bootstrap"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
)

// Host is a bootstrap.Host backed by the Vulkan loader SDL has opened.
type Host struct {
	globalDriver core1_0.GlobalDriver
}

// NewHost loads the global driver through SDL. A Vulkan-enabled window has to exist
// already, since creating one is what makes SDL load the Vulkan library.
func NewHost() (*Host, error) {
	globalDriver, err := core.CreateDriverFromProcAddr(sdl.VulkanGetVkGetInstanceProcAddr())
	if err != nil {
		return nil, err
	}

	return &Host{globalDriver: globalDriver}, nil
}

func (h *Host) AvailableLayers() ([]string, error) {
	layers, _, err := h.globalDriver.AvailableLayers()
	if err != nil {
		return nil, err
	}
	return names(layers), nil
}

func (h *Host) AvailableExtensions() ([]string, error) {
	extensions, _, err := h.globalDriver.AvailableExtensions()
	if err != nil {
		return nil, err
	}
	return names(extensions), nil
}

// names returns the keys of a driver property map, sorted.
func names[T any](properties map[string]T) []string {
	keys := make([]string, 0, len(properties))
	for name := range properties {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}

func (h *Host) CreateInstance(info bootstrap.InstanceInfo) (bootstrap.Instance, error) {
	instanceOptions := core1_0.InstanceCreateInfo{
		ApplicationName:    info.ApplicationName,
		ApplicationVersion: info.ApplicationVersion,
		EngineName:         info.EngineName,
		EngineVersion:      info.EngineVersion,
		APIVersion:         info.APIVersion,

		EnabledLayerNames:     info.Layers,
		EnabledExtensionNames: info.Extensions,
	}

	if info.EnumeratePortability {
		instanceOptions.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	if info.Messenger != nil {
		instanceOptions.Next = messengerCreateInfo(*info.Messenger)
	}

	instanceDriver, _, err := h.globalDriver.CreateInstance(nil, instanceOptions)
	if err != nil {
		return nil, err
	}

	enabled := make(map[string]struct{}, len(info.Extensions))
	for _, ext := range info.Extensions {
		enabled[ext] = struct{}{}
	}

	return &Instance{
		instanceDriver: instanceDriver,
		extensions:     enabled,
	}, nil
}

// messengerCreateInfo translates a bootstrap messenger configuration. A nil callback never
// aborts the triggering call.
func messengerCreateInfo(config bootstrap.MessengerConfig) ext_debug_utils.DebugUtilsMessengerCreateInfo {
	callback := config.Callback
	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: config.Severities,
		MessageType:     config.Types,
		UserCallback: func(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
			if callback == nil || data == nil {
				return false
			}
			return callback(severity, msgType, data.Message)
		},
	}
}
