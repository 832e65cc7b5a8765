package bootstrap

import "github.com/vkngwrapper/core/v3/common"

const (
	WindowWidth  = 800
	WindowHeight = 800

	ValidationLayerKhronos = "VK_LAYER_KHRONOS_validation"
)

// Config is the startup configuration handed to New.
type Config struct {
	WindowWidth       int
	WindowHeight      int
	EnableDiagnostics bool

	ApplicationName    string
	ApplicationVersion common.Version
	EngineName         string
	EngineVersion      common.Version
	APIVersion         common.APIVersion

	// ValidationLayers are requested on the instance, and forwarded to the logical device,
	// only when EnableDiagnostics is set.
	ValidationLayers []string

	// Portability enables VK_KHR_portability_enumeration on the instance and
	// VK_KHR_portability_subset on the device when the driver exposes them. Without it a
	// MoltenVK device is not enumerated at all.
	Portability bool
}

// DefaultConfig returns the configuration the executable starts with. Diagnostics are on
// unless the binary was built with the release tag.
func DefaultConfig() Config {
	return Config{
		WindowWidth:       WindowWidth,
		WindowHeight:      WindowHeight,
		EnableDiagnostics: enableDiagnostics,

		ApplicationName:    "Hello Triangle",
		ApplicationVersion: common.CreateVersion(0, 1, 0),
		EngineName:         "No Engine",
		EngineVersion:      common.CreateVersion(0, 1, 0),
		APIVersion:         common.Vulkan1_0,

		ValidationLayers: []string{ValidationLayerKhronos},
		Portability:      true,
	}
}

func (c Config) layers() []string {
	if !c.EnableDiagnostics {
		return nil
	}
	return c.ValidationLayers
}
