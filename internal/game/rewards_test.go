package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/IdleHero_Go/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestCalculateRewardsEmptyBatch(t *testing.T) {
	e := newTestEngine(1)

	delta, msg := e.CalculateRewards(nil, nil)

	assert.Zero(t, delta)
	assert.Equal(t, MsgRewardNeutral, msg)
}

func TestCalculateRewards(t *testing.T) {
	e := newTestEngine(1)

	rules := []domain.DetoxRule{
		{AppPackageName: "com.instagram.android", DailyLimitMinutes: intPtr(30)},
		{AppPackageName: "com.duolingo", DailyLimitMinutes: intPtr(60)},
	}

	tests := []struct {
		name     string
		logs     []domain.UsageLogEntry
		wantXP   int
		wantMsg  string
	}{
		{
			name:    "no matching rule grants default xp",
			logs:    []domain.UsageLogEntry{{AppPackageName: "com.spotify.music", DurationSeconds: 600}},
			wantXP:  5,
			wantMsg: MsgRewardNeutral,
		},
		{
			name:    "within limit grants reward xp",
			logs:    []domain.UsageLogEntry{{AppPackageName: "com.instagram.android", DurationSeconds: 20 * 60}},
			wantXP:  20,
			wantMsg: MsgRewardNeutral,
		},
		{
			name:    "over limit costs penalty xp",
			logs:    []domain.UsageLogEntry{{AppPackageName: "com.instagram.android", DurationSeconds: 45 * 60}},
			wantXP:  -10,
			wantMsg: MsgRewardLimitExceeded,
		},
		{
			name: "mixed batch sums signed deltas",
			logs: []domain.UsageLogEntry{
				{AppPackageName: "com.instagram.android", DurationSeconds: 45 * 60}, // -10
				{AppPackageName: "com.duolingo", DurationSeconds: 30 * 60},          // +20
				{AppPackageName: "com.spotify.music", DurationSeconds: 600},         // +5
			},
			wantXP:  15,
			wantMsg: MsgRewardLimitExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta, msg := e.CalculateRewards(tt.logs, rules)
			assert.Equal(t, tt.wantXP, delta)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestCalculateRewardsFirstRuleWins(t *testing.T) {
	e := newTestEngine(1)

	// Duplicate rules for the same package: the first one decides.
	rules := []domain.DetoxRule{
		{AppPackageName: "com.instagram.android", DailyLimitMinutes: intPtr(10)},
		{AppPackageName: "com.instagram.android", DailyLimitMinutes: intPtr(120)},
	}
	logs := []domain.UsageLogEntry{{AppPackageName: "com.instagram.android", DurationSeconds: 30 * 60}}

	delta, msg := e.CalculateRewards(logs, rules)

	assert.Equal(t, -10, delta)
	assert.Equal(t, MsgRewardLimitExceeded, msg)
}

func TestCalculateRewardsNilLimitTreatedAsUnlimited(t *testing.T) {
	e := newTestEngine(1)

	rules := []domain.DetoxRule{{AppPackageName: "com.instagram.android", IsBlocked: true}}
	logs := []domain.UsageLogEntry{{AppPackageName: "com.instagram.android", DurationSeconds: 6 * 3600}}

	delta, _ := e.CalculateRewards(logs, rules)

	assert.Equal(t, 20, delta)
}
