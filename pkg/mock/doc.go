// Package mock couples a matcher with a responder, a priority, and an
// optional call quota.
//
// A Mock is created with New and handed to a registry, which owns it from
// that point on: priority and quota are fixed at construction, and only the
// registry drives the match counter. The two-step TryMatch/Answer split
// exists because a dispatch may probe several mocks before one answers;
// only the answering mock's counter advances.
//
// Quotas are a hard cap. Answer claims a quota slot with an atomic
// compare-and-swap, so a mock with MaxMatches N answers at most N times no
// matter how many dispatches race the eligibility check; a dispatch that
// loses the last slot between TryMatch and Answer simply moves on to the
// next mock.
package mock
