package domain

// DetoxRule is a per-user, per-app usage rule.
// At most one rule per app package is meaningful; when duplicates exist the
// first match wins.
type DetoxRule struct {
	ID                string `json:"id"`
	UserID            string `json:"user_id"`
	AppPackageName    string `json:"app_package_name"`
	DailyLimitMinutes *int   `json:"daily_limit_minutes,omitempty"`
	IsBlocked         bool   `json:"is_blocked"`
	ActiveDays        string `json:"active_days"` // comma separated, e.g. "Mon,Tue,Wed"
}

// DefaultActiveDays covers every day of the week
const DefaultActiveDays = "Mon,Tue,Wed,Thu,Fri,Sat,Sun"
