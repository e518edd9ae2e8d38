package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/IdleHero_Go/internal/domain"
	"github.com/osse101/IdleHero_Go/internal/repository"
)

const userQuestColumns = `uq.user_quest_id, uq.user_id, uq.quest_id, uq.status,
		uq.current_progress, uq.completed_at, uq.claimed_at, uq.created_at,
		qd.quest_id, qd.code, qd.title, qd.description, qd.quest_type,
		qd.target_progress, qd.reward_xp, qd.reward_gold, qd.created_at`

type questRepository struct {
	db *pgxpool.Pool
}

// NewQuestRepository creates a new PostgreSQL quest repository
func NewQuestRepository(db *pgxpool.Pool) repository.Quest {
	return &questRepository{db: db}
}

// UpsertDefinition inserts or refreshes a quest definition keyed by code
func (r *questRepository) UpsertDefinition(ctx context.Context, def *domain.QuestDefinition) error {
	query := `
		INSERT INTO quest_definitions (code, title, description, quest_type,
			target_progress, reward_xp, reward_gold)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (code) DO UPDATE
		SET title = EXCLUDED.title,
			description = EXCLUDED.description,
			quest_type = EXCLUDED.quest_type,
			target_progress = EXCLUDED.target_progress,
			reward_xp = EXCLUDED.reward_xp,
			reward_gold = EXCLUDED.reward_gold
		RETURNING quest_id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		def.Code, def.Title, def.Description, def.QuestType,
		def.TargetProgress, def.RewardXP, def.RewardGold,
	).Scan(&def.ID, &def.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertDefinition, err)
	}

	return nil
}

// GetDefinitions retrieves all quest definitions
func (r *questRepository) GetDefinitions(ctx context.Context) ([]domain.QuestDefinition, error) {
	query := `
		SELECT quest_id, code, title, description, quest_type,
			target_progress, reward_xp, reward_gold, created_at
		FROM quest_definitions
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryDefinitions, err)
	}
	defer rows.Close()

	var defs []domain.QuestDefinition
	for rows.Next() {
		var def domain.QuestDefinition
		err := rows.Scan(&def.ID, &def.Code, &def.Title, &def.Description,
			&def.QuestType, &def.TargetProgress, &def.RewardXP, &def.RewardGold,
			&def.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryDefinitions, err)
		}
		defs = append(defs, def)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryDefinitions, err)
	}

	return defs, nil
}

// GetDefinitionByCode retrieves a single quest definition by its code
func (r *questRepository) GetDefinitionByCode(ctx context.Context, code string) (*domain.QuestDefinition, error) {
	query := `
		SELECT quest_id, code, title, description, quest_type,
			target_progress, reward_xp, reward_gold, created_at
		FROM quest_definitions
		WHERE code = $1
	`

	var def domain.QuestDefinition
	err := r.db.QueryRow(ctx, query, code).Scan(
		&def.ID, &def.Code, &def.Title, &def.Description, &def.QuestType,
		&def.TargetProgress, &def.RewardXP, &def.RewardGold, &def.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuestNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetDefinition, err)
	}

	return &def, nil
}

// CreateUserQuest inserts a quest instance for a user, filling in generated fields.
// Duplicate (user, quest) pairs are left untouched.
func (r *questRepository) CreateUserQuest(ctx context.Context, uq *domain.UserQuest) error {
	userUUID, err := parseUserUUID(uq.UserID)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO user_quests (user_id, quest_id, status, current_progress)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, quest_id) DO NOTHING
		RETURNING user_quest_id, created_at
	`

	err = r.db.QueryRow(ctx, query,
		userUUID, uq.QuestID, string(uq.Status), uq.CurrentProgress,
	).Scan(&uq.ID, &uq.CreatedAt)
	if err != nil {
		// no row returned means the instance already existed
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertUserQuest, err)
	}

	return nil
}

// GetUserQuests retrieves all of a user's quest instances with definitions joined
func (r *questRepository) GetUserQuests(ctx context.Context, userID string) ([]domain.UserQuest, error) {
	return getUserQuests(ctx, r.db, userID)
}

// GetUserQuestByID retrieves one of a user's quest instances with its definition
func (r *questRepository) GetUserQuestByID(ctx context.Context, userID, userQuestID string) (*domain.UserQuest, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	questUUID, err := uuid.Parse(userQuestID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrQuestNotFound, userQuestID)
	}

	query := `
		SELECT ` + userQuestColumns + `
		FROM user_quests uq
		JOIN quest_definitions qd ON qd.quest_id = uq.quest_id
		WHERE uq.user_quest_id = $1 AND uq.user_id = $2
	`

	uq, err := scanUserQuest(r.db.QueryRow(ctx, query, questUUID, userUUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuestNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserQuest, err)
	}

	return uq, nil
}

// UpdateUserQuest persists the progress state of a quest instance
func (r *questRepository) UpdateUserQuest(ctx context.Context, uq *domain.UserQuest) error {
	return updateUserQuest(ctx, r.db, uq)
}

// ResetDailyQuests returns all touched DAILY quest instances to a fresh
// IN_PROGRESS state so they can be completed again after midnight.
func (r *questRepository) ResetDailyQuests(ctx context.Context) (int64, error) {
	query := `
		UPDATE user_quests uq
		SET status = 'IN_PROGRESS',
			current_progress = 0,
			completed_at = NULL,
			claimed_at = NULL
		FROM quest_definitions qd
		WHERE qd.quest_id = uq.quest_id
		  AND qd.quest_type = 'DAILY'
		  AND (uq.status <> 'IN_PROGRESS' OR uq.current_progress > 0)
	`

	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToResetUserQuests, err)
	}

	return tag.RowsAffected(), nil
}

func getUserQuests(ctx context.Context, q querier, userID string) ([]domain.UserQuest, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT ` + userQuestColumns + `
		FROM user_quests uq
		JOIN quest_definitions qd ON qd.quest_id = uq.quest_id
		WHERE uq.user_id = $1
		ORDER BY uq.created_at
	`

	rows, err := q.Query(ctx, query, userUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryUserQuests, err)
	}
	defer rows.Close()

	var quests []domain.UserQuest
	for rows.Next() {
		uq, err := scanUserQuest(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryUserQuests, err)
		}
		quests = append(quests, *uq)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryUserQuests, err)
	}

	return quests, nil
}

func updateUserQuest(ctx context.Context, q querier, uq *domain.UserQuest) error {
	query := `
		UPDATE user_quests
		SET status = $2, current_progress = $3, completed_at = $4, claimed_at = $5
		WHERE user_quest_id = $1
	`

	tag, err := q.Exec(ctx, query,
		uq.ID, string(uq.Status), uq.CurrentProgress, uq.CompletedAt, uq.ClaimedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateUserQuest, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrQuestNotFound
	}

	return nil
}

func scanUserQuest(row pgx.Row) (*domain.UserQuest, error) {
	var uq domain.UserQuest
	var def domain.QuestDefinition
	var status string

	err := row.Scan(
		&uq.ID, &uq.UserID, &uq.QuestID, &status,
		&uq.CurrentProgress, &uq.CompletedAt, &uq.ClaimedAt, &uq.CreatedAt,
		&def.ID, &def.Code, &def.Title, &def.Description, &def.QuestType,
		&def.TargetProgress, &def.RewardXP, &def.RewardGold, &def.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	uq.Status = domain.QuestStatus(status)
	uq.Definition = &def
	return &uq, nil
}
