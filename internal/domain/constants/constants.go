// Package constants holds shared domain-level constant values.
package constants

const (
	// PubSubProviderLocal selects the local HTTP publisher for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// Notification categories a member can opt out of. They mirror the
// preference flags stored on the member record.
const (
	CategoryEvents   = "events"
	CategoryProjects = "projects"
	CategoryAdmin    = "admin"
)
