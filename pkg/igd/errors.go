package igd

// UPnP error codes from the WANIPConnection:1 service definition, usable as
// fault codes in mock responses. 401 is also what the transport answers
// when no mock matches a request.
const (
	ErrCodeInvalidAction                    = 401
	ErrCodeInvalidArgs                      = 402
	ErrCodeActionFailed                     = 501
	ErrCodeActionNotAuthorized              = 606
	ErrCodeSpecifiedArrayIndexInvalid       = 713
	ErrCodeNoSuchEntryInArray               = 714
	ErrCodeWildCardNotPermittedInSrcIP      = 715
	ErrCodeWildCardNotPermittedInExtPort    = 716
	ErrCodeConflictInMappingEntry           = 718
	ErrCodeSamePortValuesRequired           = 724
	ErrCodeOnlyPermanentLeasesSupported     = 725
	ErrCodeRemoteHostOnlySupportsWildcard   = 726
	ErrCodeExternalPortOnlySupportsWildcard = 727
)
