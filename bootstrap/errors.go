package bootstrap

import "github.com/cockroachdb/errors"

// Startup failures. Every one of them is fatal to the bootstrap sequence; callers test for
// them with errors.Is.
var (
	ErrValidationLayersUnavailable = errors.New("validation layers requested, but not available")
	ErrExtensionsUnavailable       = errors.New("required instance extensions not available")
	ErrInstanceCreationFailed      = errors.New("failed to create instance")
	ErrExtensionEntryPointMissing  = errors.New("extension entry point missing")
	ErrSurfaceCreationFailed       = errors.New("failed to create window surface")
	ErrNoVulkanCapableGPU          = errors.New("failed to find GPUs with Vulkan support")
	ErrNoSuitableGPU               = errors.New("failed to find a suitable GPU")
	ErrLogicalDeviceCreationFailed = errors.New("failed to create logical device")
	ErrInvalidState                = errors.New("invalid bootstrap state transition")
)

// markCause wraps a driver error so that it reads as kind and matches kind with errors.Is,
// while keeping the original cause and its stack.
func markCause(cause error, kind error) error {
	return errors.Mark(errors.Wrap(cause, kind.Error()), kind)
}
