package igd

// Action identifies a UPnP IGD control action by its wire-exact name.
type Action string

const (
	// WANIPConnection:1 actions.
	ActionGetExternalIPAddress        Action = "GetExternalIPAddress"
	ActionGetStatusInfo               Action = "GetStatusInfo"
	ActionAddPortMapping              Action = "AddPortMapping"
	ActionDeletePortMapping           Action = "DeletePortMapping"
	ActionGetGenericPortMappingEntry  Action = "GetGenericPortMappingEntry"
	ActionGetSpecificPortMappingEntry Action = "GetSpecificPortMappingEntry"

	// WANCommonInterfaceConfig:1 actions.
	ActionGetCommonLinkProperties Action = "GetCommonLinkProperties"
	ActionGetTotalBytesReceived   Action = "GetTotalBytesReceived"
	ActionGetTotalBytesSent       Action = "GetTotalBytesSent"

	// ActionAny is the wildcard: it matches every action, including ones
	// outside the supported set.
	ActionAny Action = "*"

	// ActionUnknown is reported by Request.Action for operation names
	// outside the supported set.
	ActionUnknown Action = ""
)

// UPnP service and device type URNs served by the mock device.
const (
	ServiceWANIPConnection          = "urn:schemas-upnp-org:service:WANIPConnection:1"
	ServiceWANCommonInterfaceConfig = "urn:schemas-upnp-org:service:WANCommonInterfaceConfig:1"

	DeviceInternetGateway = "urn:schemas-upnp-org:device:InternetGatewayDevice:1"
	DeviceWAN             = "urn:schemas-upnp-org:device:WANDevice:1"
	DeviceWANConnection   = "urn:schemas-upnp-org:device:WANConnectionDevice:1"
)

// knownActions is the closed set of supported actions, excluding the
// wildcard and unknown markers.
var knownActions = map[Action]struct{}{
	ActionGetExternalIPAddress:        {},
	ActionGetStatusInfo:               {},
	ActionAddPortMapping:              {},
	ActionDeletePortMapping:           {},
	ActionGetGenericPortMappingEntry:  {},
	ActionGetSpecificPortMappingEntry: {},
	ActionGetCommonLinkProperties:     {},
	ActionGetTotalBytesReceived:       {},
	ActionGetTotalBytesSent:           {},
}

// ParseAction maps a wire action name to its Action constant. The second
// return is false for names outside the supported set (the wildcard is not
// a wire name and does not parse).
func ParseAction(name string) (Action, bool) {
	a := Action(name)
	if _, ok := knownActions[a]; ok {
		return a, true
	}
	return ActionUnknown, false
}

// ServiceType returns the canonical service URN the action belongs to.
// Unknown and wildcard actions report WANIPConnection, the service real
// gateways answer unrecognized calls on.
func (a Action) ServiceType() string {
	switch a {
	case ActionGetCommonLinkProperties, ActionGetTotalBytesReceived, ActionGetTotalBytesSent:
		return ServiceWANCommonInterfaceConfig
	default:
		return ServiceWANIPConnection
	}
}

// String returns the wire name of the action.
func (a Action) String() string {
	if a == ActionUnknown {
		return "unknown"
	}
	return string(a)
}
