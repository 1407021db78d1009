// Package ssdp implements the discovery side of the mock gateway: a UDP
// responder that listens for SSDP M-SEARCH probes and answers the ones
// addressed to an Internet Gateway Device.
//
// The responder shares port 1900 with other SSDP participants on the
// host through SO_REUSEADDR (and SO_REUSEPORT where available) and joins
// the 239.255.255.250 multicast group. Every valid probe is handed to
// the registry's discovery log before it is answered, so tests can
// assert on what a client actually sent.
package ssdp
