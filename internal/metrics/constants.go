package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameSyncsCompleted       = "syncs_completed_total"
	MetricNameXPGranted            = "xp_granted_total"
	MetricNameBossesDefeated       = "bosses_defeated_total"
	MetricNameLevelUps             = "level_ups_total"
	MetricNameQuestsCompleted      = "quests_completed_total"
	MetricNameQuestRewardsClaimed  = "quest_rewards_claimed_total"
	MetricNameBuildingsConstructed = "buildings_constructed_total"
	MetricNameBuildingsUpgraded    = "buildings_upgraded_total"
	MetricNameGoldSpent            = "gold_spent_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextSyncsCompleted       = "Total number of completed usage syncs"
	HelpTextXPGranted            = "Total XP granted across all syncs"
	HelpTextBossesDefeated       = "Total number of daily bosses defeated"
	HelpTextLevelUps             = "Total number of hero level ups"
	HelpTextQuestsCompleted      = "Total number of quests completed"
	HelpTextQuestRewardsClaimed  = "Total number of quest rewards claimed"
	HelpTextBuildingsConstructed = "Total number of buildings constructed"
	HelpTextBuildingsUpgraded    = "Total number of building upgrades"
	HelpTextGoldSpent            = "Total gold spent on construction and upgrades"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelQuest    = "quest"
	LabelBuilding = "building"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgMetricsRecorded = "Metrics recorded for event"
)
