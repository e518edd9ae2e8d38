package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/IdleHero_Go/internal/domain"
	"github.com/osse101/IdleHero_Go/internal/repository"
)

type ruleRepository struct {
	db *pgxpool.Pool
}

// NewRuleRepository creates a new PostgreSQL detox rule repository
func NewRuleRepository(db *pgxpool.Pool) repository.Rule {
	return &ruleRepository{db: db}
}

// CreateRule inserts a new detox rule, filling in the generated ID
func (r *ruleRepository) CreateRule(ctx context.Context, rule *domain.DetoxRule) error {
	userUUID, err := parseUserUUID(rule.UserID)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO detox_rules (user_id, app_package_name, daily_limit_minutes, is_blocked, active_days)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING rule_id
	`

	err = r.db.QueryRow(ctx, query,
		userUUID, rule.AppPackageName, rule.DailyLimitMinutes, rule.IsBlocked, rule.ActiveDays,
	).Scan(&rule.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertRule, err)
	}

	return nil
}

// GetRulesByUserID retrieves all detox rules for a user in creation order
func (r *ruleRepository) GetRulesByUserID(ctx context.Context, userID string) ([]domain.DetoxRule, error) {
	return getRules(ctx, r.db, userID)
}

// DeleteRule removes one of the user's rules by ID
func (r *ruleRepository) DeleteRule(ctx context.Context, userID, ruleID string) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	ruleUUID, err := uuid.Parse(ruleID)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrRuleNotFound, ruleID)
	}

	query := `DELETE FROM detox_rules WHERE rule_id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query, ruleUUID, userUUID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteRule, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRuleNotFound
	}

	return nil
}

func getRules(ctx context.Context, q querier, userID string) ([]domain.DetoxRule, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT rule_id, user_id, app_package_name, daily_limit_minutes, is_blocked, active_days
		FROM detox_rules
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, userUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRules, err)
	}
	defer rows.Close()

	var rules []domain.DetoxRule
	for rows.Next() {
		var rule domain.DetoxRule
		err := rows.Scan(&rule.ID, &rule.UserID, &rule.AppPackageName,
			&rule.DailyLimitMinutes, &rule.IsBlocked, &rule.ActiveDays)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRules, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRules, err)
	}

	return rules, nil
}
