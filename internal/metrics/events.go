package metrics

import (
	"context"

	"github.com/osse101/IdleHero_Go/internal/event"
	"github.com/osse101/IdleHero_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.UserRegistered,
		event.SyncCompleted,
		event.BossDefeated,
		event.LevelUp,
		event.QuestCompleted,
		event.QuestClaimed,
		event.BuildingConstructed,
		event.BuildingUpgraded,
		event.DailyQuestsReset,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.SyncCompleted:
		payload, err := event.DecodePayload[event.SyncCompletedPayloadV1](evt.Payload)
		if err != nil {
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			return err
		}
		SyncsCompleted.Inc()
		if payload.XPGained > 0 {
			XPGranted.Add(float64(payload.XPGained))
		}

	case event.BossDefeated:
		BossesDefeated.Inc()

	case event.LevelUp:
		LevelUps.Inc()

	case event.QuestCompleted:
		payload, err := event.DecodePayload[event.QuestPayloadV1](evt.Payload)
		if err != nil {
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			return err
		}
		QuestsCompleted.WithLabelValues(payload.QuestCode).Inc()

	case event.QuestClaimed:
		payload, err := event.DecodePayload[event.QuestPayloadV1](evt.Payload)
		if err != nil {
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			return err
		}
		QuestRewardsClaimed.WithLabelValues(payload.QuestCode).Inc()
		if payload.RewardXP > 0 {
			XPGranted.Add(float64(payload.RewardXP))
		}

	case event.BuildingConstructed, event.BuildingUpgraded:
		payload, err := event.DecodePayload[event.BuildingPayloadV1](evt.Payload)
		if err != nil {
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			return err
		}
		if evt.Type == event.BuildingConstructed {
			BuildingsConstructed.WithLabelValues(payload.BuildingType).Inc()
		} else {
			BuildingsUpgraded.WithLabelValues(payload.BuildingType).Inc()
		}
		if payload.GoldSpent > 0 {
			GoldSpent.Add(float64(payload.GoldSpent))
		}
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
