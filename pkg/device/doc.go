// Package device renders the static description documents a UPnP IGD
// serves: the root device description and the two service control
// protocol documents (SCPDs). Clients fetch the description to find the
// control URLs; the SCPDs advertise exactly the actions the mock
// understands.
//
// Identity carries the handful of fields tests may want to customize;
// everything else in the documents is fixed. Each server instance gets a
// fresh UDN by default so multiple instances on one network segment stay
// distinguishable.
package device
