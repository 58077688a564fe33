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

	EventsDeadLettered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsDeadLettered,
			Help: HelpTextEventsDeadLettered,
		},
		[]string{LabelType},
	)
)

// Leveling Metrics
var (
	XPAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameXPAwarded,
			Help: HelpTextXPAwarded,
		},
		[]string{LabelSource},
	)

	XPAwardsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameXPAwardsSkipped,
			Help: HelpTextXPAwardsSkipped,
		},
		[]string{LabelReason},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	LeaderboardCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLeaderboardCache,
			Help: HelpTextLeaderboardCache,
		},
		[]string{LabelResult},
	)

	LevelUpAnnouncements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLevelUpAnnouncement,
			Help: HelpTextLevelUpAnnouncement,
		},
		[]string{LabelResult},
	)
)

// Discord Metrics
var (
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsTotal,
			Help: HelpTextCommandsTotal,
		},
		[]string{LabelCommand, LabelResult},
	)

	CommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameCommandDuration,
			Help:    HelpTextCommandDuration,
			Buckets: CommandLatencyBuckets,
		},
		[]string{LabelCommand},
	)

	BlacklistedGuildsLeft = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGuildsLeft,
			Help: HelpTextGuildsLeft,
		},
	)

	GuardDenials = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGuardDenials,
			Help: HelpTextGuardDenials,
		},
		[]string{LabelReason},
	)

	ProfilesRendered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProfilesRendered,
			Help: HelpTextProfilesRendered,
		},
	)

	Guilds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameGuilds,
			Help: HelpTextGuilds,
		},
	)
)

// Store Metrics
var (
	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStoreErrors,
			Help: HelpTextStoreErrors,
		},
		[]string{LabelKind},
	)
)

// Business Metrics
var (
	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelItem},
	)

	MoneyEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneyEarned,
			Help: HelpTextMoneyEarned,
		},
	)

	MoneySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
	)

	RemindersDelivered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRemindersDelivered,
			Help: HelpTextRemindersDelivered,
		},
		[]string{LabelResult},
	)
)

// Tag Metrics
var (
	TagOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTagOperations,
			Help: HelpTextTagOperations,
		},
		[]string{LabelOp},
	)
)
