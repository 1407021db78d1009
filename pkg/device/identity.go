package device

import "github.com/google/uuid"

// HTTP paths of the device surface. The description document references
// the SCPD and control paths, so they are fixed alongside it.
const (
	DescriptionPath      = "/rootDesc.xml"
	IPConnSCPDPath       = "/WANIPCn.xml"
	CommonIFCSCPDPath    = "/WANCommonIFC1.xml"
	IPConnControlPath    = "/ctl/IPConn"
	CommonIFCControlPath = "/ctl/WANCommonIFC1"
	IPConnEventPath      = "/evt/IPConn"
	CommonIFCEventPath   = "/evt/WANCommonIFC1"
)

// Identity is the customizable part of the device description.
type Identity struct {
	// FriendlyName is the human-readable device name shown by discovery
	// tools.
	FriendlyName string

	// Manufacturer and ModelName fill the corresponding description
	// fields.
	Manufacturer string
	ModelName    string

	// UDN is the root device's unique device name, a "uuid:..." URI. The
	// nested WAN devices derive their UDNs from it.
	UDN string
}

// DefaultIdentity returns the stock identity with a freshly generated
// UDN.
func DefaultIdentity() Identity {
	return Identity{}.WithDefaults()
}

// WithDefaults fills any unset field with its default. The default UDN is
// a new random UUID, so two servers never collide.
func (id Identity) WithDefaults() Identity {
	if id.FriendlyName == "" {
		id.FriendlyName = "Mock IGD"
	}
	if id.Manufacturer == "" {
		id.Manufacturer = "igdmock"
	}
	if id.ModelName == "" {
		id.ModelName = "Mock Internet Gateway Device"
	}
	if id.UDN == "" {
		id.UDN = "uuid:" + uuid.NewString()
	}
	return id
}
