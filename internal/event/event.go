package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}

	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}

	return nil
}

// Common event types
const (
	UserRegistered      Type = "user.registered"
	SyncCompleted       Type = "sync.completed"
	BossDefeated        Type = "boss.defeated"
	LevelUp             Type = "level.up"
	QuestCompleted      Type = "quest.completed"
	QuestClaimed        Type = "quest.claimed"
	BuildingConstructed Type = "building.constructed"
	BuildingUpgraded    Type = "building.upgraded"
	DailyQuestsReset    Type = "quests.daily_reset"
)

// Typed event payloads for type safety

// UserRegisteredPayloadV1 is the typed payload for registration events
type UserRegisteredPayloadV1 struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Timestamp int64  `json:"timestamp"`
}

// SyncCompletedPayloadV1 is the typed payload for usage sync events
type SyncCompletedPayloadV1 struct {
	UserID       string `json:"user_id"`
	XPGained     int    `json:"xp_gained"`
	LeveledUp    bool   `json:"leveled_up"`
	BossDefeated bool   `json:"boss_defeated"`
	LogCount     int    `json:"log_count"`
	Timestamp    int64  `json:"timestamp"`
}

// BossDefeatedPayloadV1 is the typed payload for boss defeat events
type BossDefeatedPayloadV1 struct {
	UserID    string `json:"user_id"`
	BossName  string `json:"boss_name"`
	TotalHP   int    `json:"total_hp"`
	XPReward  int    `json:"xp_reward"`
	Timestamp int64  `json:"timestamp"`
}

// LevelUpPayloadV1 is the typed payload for hero level up events
type LevelUpPayloadV1 struct {
	UserID    string `json:"user_id"`
	OldLevel  int    `json:"old_level"`
	NewLevel  int    `json:"new_level"`
	Timestamp int64  `json:"timestamp"`
}

// QuestPayloadV1 is the typed payload for quest lifecycle events
type QuestPayloadV1 struct {
	UserID     string `json:"user_id"`
	QuestCode  string `json:"quest_code"`
	RewardXP   int    `json:"reward_xp,omitempty"`
	RewardGold int    `json:"reward_gold,omitempty"`
	Timestamp  int64  `json:"timestamp"`
}

// BuildingPayloadV1 is the typed payload for construction and upgrade events
type BuildingPayloadV1 struct {
	UserID       string `json:"user_id"`
	BuildingType string `json:"building_type"`
	Level        int    `json:"level"`
	GoldSpent    int    `json:"gold_spent"`
	Timestamp    int64  `json:"timestamp"`
}

// DailyQuestsResetPayloadV1 is the typed payload for the nightly quest reset
type DailyQuestsResetPayloadV1 struct {
	QuestsReset int64 `json:"quests_reset"`
	Timestamp   int64 `json:"timestamp"`
}

// Type-safe event constructors

// NewUserRegisteredEvent creates a new registration event
func NewUserRegisteredEvent(userID, username string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    UserRegistered,
		Payload: UserRegisteredPayloadV1{
			UserID:    userID,
			Username:  username,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewSyncCompletedEvent creates a new usage sync event
func NewSyncCompletedEvent(userID string, xpGained, logCount int, leveledUp, bossDefeated bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SyncCompleted,
		Payload: SyncCompletedPayloadV1{
			UserID:       userID,
			XPGained:     xpGained,
			LeveledUp:    leveledUp,
			BossDefeated: bossDefeated,
			LogCount:     logCount,
			Timestamp:    time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewBossDefeatedEvent creates a new boss defeat event
func NewBossDefeatedEvent(userID, bossName string, totalHP, xpReward int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BossDefeated,
		Payload: BossDefeatedPayloadV1{
			UserID:    userID,
			BossName:  bossName,
			TotalHP:   totalHP,
			XPReward:  xpReward,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewLevelUpEvent creates a new hero level up event
func NewLevelUpEvent(userID string, oldLevel, newLevel int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LevelUp,
		Payload: LevelUpPayloadV1{
			UserID:    userID,
			OldLevel:  oldLevel,
			NewLevel:  newLevel,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewQuestCompletedEvent creates a new quest completion event
func NewQuestCompletedEvent(userID, questCode string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    QuestCompleted,
		Payload: QuestPayloadV1{
			UserID:    userID,
			QuestCode: questCode,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewQuestClaimedEvent creates a new quest reward claim event
func NewQuestClaimedEvent(userID, questCode string, rewardXP, rewardGold int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    QuestClaimed,
		Payload: QuestPayloadV1{
			UserID:     userID,
			QuestCode:  questCode,
			RewardXP:   rewardXP,
			RewardGold: rewardGold,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewBuildingConstructedEvent creates a new construction event
func NewBuildingConstructedEvent(userID, buildingType string, level, goldSpent int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BuildingConstructed,
		Payload: BuildingPayloadV1{
			UserID:       userID,
			BuildingType: buildingType,
			Level:        level,
			GoldSpent:    goldSpent,
			Timestamp:    time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewBuildingUpgradedEvent creates a new upgrade event
func NewBuildingUpgradedEvent(userID, buildingType string, level, goldSpent int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BuildingUpgraded,
		Payload: BuildingPayloadV1{
			UserID:       userID,
			BuildingType: buildingType,
			Level:        level,
			GoldSpent:    goldSpent,
			Timestamp:    time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewDailyQuestsResetEvent creates a new nightly quest reset event
func NewDailyQuestsResetEvent(questsReset int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DailyQuestsReset,
		Payload: DailyQuestsResetPayloadV1{
			QuestsReset: questsReset,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously; a worker pool could take over here if
	// handler latency ever becomes a problem.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
