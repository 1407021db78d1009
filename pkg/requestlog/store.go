package requestlog

// RequestSubscriber is a channel that receives newly recorded requests.
type RequestSubscriber chan Request

// DiscoverySubscriber is a channel that receives newly recorded probes.
type DiscoverySubscriber chan Discovery

// RequestStore is the storage contract for received control requests.
// Implementations must be safe for concurrent use; List returns a copy in
// insertion order.
type RequestStore interface {
	// Record appends one entry, filling ID and ReceivedAt if unset.
	Record(r Request)

	// List returns all entries in insertion order.
	List() []Request

	// Clear removes all entries.
	Clear()

	// Count returns the number of entries.
	Count() int

	// Subscribe registers a subscriber that receives each entry as it is
	// recorded. Delivery is non-blocking: entries are dropped for
	// subscribers whose channel buffer is full. The returned function
	// unsubscribes and closes the channel.
	Subscribe() (RequestSubscriber, func())
}

// DiscoveryStore is the storage contract for received discovery probes.
// Same semantics as RequestStore.
type DiscoveryStore interface {
	Record(d Discovery)
	List() []Discovery
	Clear()
	Count() int
	Subscribe() (DiscoverySubscriber, func())
}
