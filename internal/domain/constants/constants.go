// Package constants holds shared domain-level constants.
package constants

// Pub/Sub provider types
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// TopItemsLimit is the number of entries in the dashboard's best-seller ranking.
const TopItemsLimit = 5
