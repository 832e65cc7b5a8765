package bootstrap

import "log"

// CreateInstance assembles the instance request from cfg and the window's extension list
// and hands it to host. When diagnostics are enabled the layers are checked before any
// creation is attempted, and messenger is chained onto the creation call.
func CreateInstance(host Host, window Window, cfg Config, messenger MessengerConfig, logger *log.Logger) (Instance, error) {
	info := InstanceInfo{
		ApplicationName:    cfg.ApplicationName,
		ApplicationVersion: cfg.ApplicationVersion,
		EngineName:         cfg.EngineName,
		EngineVersion:      cfg.EngineVersion,
		APIVersion:         cfg.APIVersion,
	}

	// Add layers
	if cfg.EnableDiagnostics {
		err := CheckLayers(host, cfg.ValidationLayers, logger)
		if err != nil {
			return nil, err
		}
		info.Layers = append(info.Layers, cfg.ValidationLayers...)
	}

	// Add extensions
	info.Extensions = RequiredExtensions(window, cfg.EnableDiagnostics)
	available, err := CheckExtensions(host, info.Extensions)
	if err != nil {
		return nil, err
	}

	if cfg.Portability {
		_, enumerationSupported := available[ExtensionPortabilityEnumeration]
		if enumerationSupported {
			info.Extensions = append(info.Extensions, ExtensionPortabilityEnumeration)
			info.EnumeratePortability = true
		}
	}

	// Add debug messenger
	if cfg.EnableDiagnostics {
		info.Messenger = &messenger
	}

	instance, err := host.CreateInstance(info)
	if err != nil {
		return nil, markCause(err, ErrInstanceCreationFailed)
	}

	return instance, nil
}
