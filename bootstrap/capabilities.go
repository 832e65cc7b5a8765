package bootstrap

import (
	"log"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
	"github.com/vkngwrapper/extensions/v3/khr_portability_subset"
)

const (
	ExtensionDebugUtils              = ext_debug_utils.ExtensionName
	ExtensionPortabilityEnumeration  = khr_portability_enumeration.ExtensionName
	DeviceExtensionPortabilitySubset = khr_portability_subset.ExtensionName
)

// AvailableLayers returns the set of instance layers the host exposes. A failed query is
// logged and reported as an empty set.
func AvailableLayers(host Host, logger *log.Logger) map[string]struct{} {
	names, err := host.AvailableLayers()
	if err != nil {
		logger.Printf("could not enumerate instance layers: %v", err)
		return map[string]struct{}{}
	}

	return toSet(names)
}

// RequiredExtensions returns the window's mandatory instance extensions, in order, followed
// by the debug utils extension when diagnostics are enabled. Names are not de-duplicated.
func RequiredExtensions(window Window, diagnosticsEnabled bool) []string {
	sdlExtensions := window.RequiredInstanceExtensions()

	extensions := make([]string, 0, len(sdlExtensions)+1)
	extensions = append(extensions, sdlExtensions...)
	if diagnosticsEnabled {
		extensions = append(extensions, ExtensionDebugUtils)
	}

	return extensions
}

// HasAllLayers reports whether every requested layer name is in available. Names are
// compared case-sensitively.
func HasAllLayers(available map[string]struct{}, requested []string) bool {
	return len(MissingLayers(available, requested)) == 0
}

func MissingLayers(available map[string]struct{}, requested []string) []string {
	var missing []string
	for _, layer := range requested {
		if _, ok := available[layer]; !ok {
			missing = append(missing, layer)
		}
	}
	return missing
}

// CheckLayers fails with ErrValidationLayersUnavailable unless the host exposes every
// requested layer.
func CheckLayers(host Host, requested []string, logger *log.Logger) error {
	missing := MissingLayers(AvailableLayers(host, logger), requested)
	if len(missing) == 0 {
		return nil
	}

	err := errors.Wrapf(ErrValidationLayersUnavailable, "missing %q", missing)
	return errors.WithHint(err, "install the LunarG Vulkan SDK")
}

// CheckExtensions fails with ErrExtensionsUnavailable unless the host exposes every
// required instance extension. On success it returns the full set the host exposes.
func CheckExtensions(host Host, required []string) (map[string]struct{}, error) {
	names, err := host.AvailableExtensions()
	if err != nil {
		return nil, markCause(err, ErrInstanceCreationFailed)
	}

	available := toSet(names)
	for _, ext := range required {
		if _, hasExt := available[ext]; !hasExt {
			return nil, errors.Wrapf(ErrExtensionsUnavailable, "missing extension %s", ext)
		}
	}

	return available, nil
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
