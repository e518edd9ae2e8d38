package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	SyncsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSyncsCompleted,
			Help: HelpTextSyncsCompleted,
		},
	)

	XPGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameXPGranted,
			Help: HelpTextXPGranted,
		},
	)

	BossesDefeated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBossesDefeated,
			Help: HelpTextBossesDefeated,
		},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	QuestsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuestsCompleted,
			Help: HelpTextQuestsCompleted,
		},
		[]string{LabelQuest},
	)

	QuestRewardsClaimed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuestRewardsClaimed,
			Help: HelpTextQuestRewardsClaimed,
		},
		[]string{LabelQuest},
	)

	BuildingsConstructed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBuildingsConstructed,
			Help: HelpTextBuildingsConstructed,
		},
		[]string{LabelBuilding},
	)

	BuildingsUpgraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBuildingsUpgraded,
			Help: HelpTextBuildingsUpgraded,
		},
		[]string{LabelBuilding},
	)

	GoldSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldSpent,
			Help: HelpTextGoldSpent,
		},
	)
)
