package bootstrap

import "fmt"

// State is the lifecycle position of a Context. States only ever move forward.
type State int

const (
	StateUninitialized State = iota
	StateWindowCreated
	StateInstanceCreated
	StateDiagnosticsAttached
	StateSurfaceCreated
	StatePhysicalDeviceSelected
	StateLogicalDeviceCreated
	StateRunning
	StateTerminating
	StateDestroyed
)

var stateNames = [...]string{
	StateUninitialized:          "Uninitialized",
	StateWindowCreated:          "WindowCreated",
	StateInstanceCreated:        "InstanceCreated",
	StateDiagnosticsAttached:    "DiagnosticsAttached",
	StateSurfaceCreated:         "SurfaceCreated",
	StatePhysicalDeviceSelected: "PhysicalDeviceSelected",
	StateLogicalDeviceCreated:   "LogicalDeviceCreated",
	StateRunning:                "Running",
	StateTerminating:            "Terminating",
	StateDestroyed:              "Destroyed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}
