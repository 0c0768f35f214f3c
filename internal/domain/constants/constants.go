// Package constants holds shared application constants.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider types.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// DefaultTimezone is the wall-clock timezone used when a user has not set one.
const DefaultTimezone = "Asia/Ho_Chi_Minh"

// PeacefulDaysMilestones are the streak values that trigger a milestone
// celebration notification.
var PeacefulDaysMilestones = []int{7, 14, 30, 60, 90, 100, 180, 365}
