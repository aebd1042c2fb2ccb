package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Bump cycle metrics
var (
	BumpCycles = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBumpCycles,
			Help: HelpTextBumpCycles,
		},
	)

	BumpNotifications = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBumpNotifications,
			Help: HelpTextBumpNotifications,
		},
	)
)

// Countdown metrics
var (
	CountdownTicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCountdownTicks,
			Help: HelpTextCountdownTicks,
		},
	)

	CountdownEditsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCountdownEditsSkipped,
			Help: HelpTextCountdownEditsSkipped,
		},
	)
)

// Gacha metrics
var (
	GachaDraws = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGachaDraws,
			Help: HelpTextGachaDraws,
		},
		[]string{LabelTier},
	)

	GachaSessions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGachaSessions,
			Help: HelpTextGachaSessions,
		},
		[]string{LabelLength},
	)
)

// Discord metrics
var (
	CommandsHandled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsHandled,
			Help: HelpTextCommandsHandled,
		},
		[]string{LabelCommand},
	)
)
