package kv

// The schema will define how to store and retrieve data from the db.
// Every network gets a nested bucket under lightClientBucket named after the
// network, holding the four trusted state fields under fixed keys.
var (
	lightClientBucket = []byte("light-client")

	currentSyncCommitteeKey = []byte("current-sync-committee")
	nextSyncCommitteeKey    = []byte("next-sync-committee")
	finalizedHeaderKey      = []byte("finalized-header")
	optimisticHeaderKey     = []byte("optimistic-header")
)
