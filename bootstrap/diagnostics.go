package bootstrap

import (
	"log"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
)

const (
	EntryPointCreateMessenger  = "vkCreateDebugUtilsMessengerEXT"
	EntryPointDestroyMessenger = "vkDestroyDebugUtilsMessengerEXT"
)

// MessengerCallback receives every subscribed message. Returning true asks the driver to
// abort the call that triggered the message.
type MessengerCallback func(severity ext_debug_utils.DebugUtilsMessageSeverityFlags, msgType ext_debug_utils.DebugUtilsMessageTypeFlags, message string) bool

type MessengerConfig struct {
	Severities ext_debug_utils.DebugUtilsMessageSeverityFlags
	Types      ext_debug_utils.DebugUtilsMessageTypeFlags
	Callback   MessengerCallback
}

// DefaultMessengerConfig subscribes to verbose, warning and error messages of every type and
// writes them to logger. It never aborts the triggering call.
func DefaultMessengerConfig(logger *log.Logger) MessengerConfig {
	return MessengerConfig{
		Severities: ext_debug_utils.SeverityVerbose | ext_debug_utils.SeverityWarning | ext_debug_utils.SeverityError,
		Types:      ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
		Callback: func(severity ext_debug_utils.DebugUtilsMessageSeverityFlags, msgType ext_debug_utils.DebugUtilsMessageTypeFlags, message string) bool {
			logger.Printf("validation layer: [%s %s] - %s", severity, msgType, message)
			return false
		},
	}
}

// CreateMessenger attaches a persistent debug messenger to instance.
func CreateMessenger(instance Instance, config MessengerConfig) (MessengerHandle, error) {
	create, ok := instance.LookupCreateMessenger()
	if !ok {
		return nil, errors.Wrapf(ErrExtensionEntryPointMissing, "%s not found", EntryPointCreateMessenger)
	}

	messenger, err := create(config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to set up debug messenger")
	}

	return messenger, nil
}

// DestroyMessenger releases messenger. When the destroy entry point can't be resolved the
// messenger is leaked and a warning is logged; teardown continues either way.
func DestroyMessenger(instance Instance, messenger MessengerHandle, logger *log.Logger) {
	destroy, ok := instance.LookupDestroyMessenger()
	if !ok {
		logger.Printf("%s doesn't exist!", EntryPointDestroyMessenger)
		return
	}

	destroy(messenger)
}
