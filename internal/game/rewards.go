package game

import "github.com/osse101/IdleHero_Go/internal/domain"

// Reward messages returned by CalculateRewards
const (
	MsgRewardNeutral       = "Good job!"
	MsgRewardLimitExceeded = "Limit exceeded! Lost XP."
)

// CalculateRewards converts a batch of usage logs and the user's rule set
// into a signed XP delta. Per entry: no matching rule grants the default
// engagement XP, a matched rule within its daily limit grants the reward XP,
// and usage over the limit costs the penalty XP. The delta may go negative;
// clamping is the caller's concern. Nothing is applied to stats here.
func (e *Engine) CalculateRewards(logs []domain.UsageLogEntry, rules []domain.DetoxRule) (xpDelta int, message string) {
	message = MsgRewardNeutral

	for _, entry := range logs {
		rule := firstMatchingRule(rules, entry.AppPackageName)
		if rule == nil {
			xpDelta += e.tuning.DefaultXP
			continue
		}

		durationMins := float64(entry.DurationSeconds) / 60
		if rule.DailyLimitMinutes != nil && durationMins > float64(*rule.DailyLimitMinutes) {
			xpDelta -= e.tuning.PenaltyXP
			message = MsgRewardLimitExceeded
		} else {
			xpDelta += e.tuning.RewardXP
		}
	}

	return xpDelta, message
}

// firstMatchingRule returns the first rule for the app package, or nil.
// First match wins when duplicate rules exist for the same package.
func firstMatchingRule(rules []domain.DetoxRule, appPackage string) *domain.DetoxRule {
	for i := range rules {
		if rules[i].AppPackageName == appPackage {
			return &rules[i]
		}
	}
	return nil
}
