package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"charges/internal/domain"
	"charges/internal/port"
)

var _ port.MarketParticipantRepository = (*MarketParticipantRepo)(nil)

// MarketParticipantRepo reads and registers market participants.
type MarketParticipantRepo struct {
	db *sqlx.DB
}

// NewMarketParticipantRepo creates a new PostgreSQL-backed market participant repository.
func NewMarketParticipantRepo(db *sqlx.DB) *MarketParticipantRepo {
	return &MarketParticipantRepo{db: db}
}

func (r *MarketParticipantRepo) GetByMarketParticipantID(ctx context.Context, marketParticipantID string) (*domain.MarketParticipant, error) {
	var mp domain.MarketParticipant
	err := r.db.GetContext(ctx, &mp,
		`SELECT id, market_participant_id, business_process_role, is_active
		FROM market_participants WHERE market_participant_id = $1`, marketParticipantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("marketParticipantRepo.GetByMarketParticipantID: %w", err)
	}
	return &mp, nil
}

// Upsert registers mp, or refreshes role and activity of an already known participant.
func (r *MarketParticipantRepo) Upsert(ctx context.Context, mp *domain.MarketParticipant) error {
	if mp.ID == uuid.Nil {
		mp.ID = uuid.New()
	}
	err := r.db.GetContext(ctx, &mp.ID,
		`INSERT INTO market_participants (id, market_participant_id, business_process_role, is_active)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (market_participant_id)
		DO UPDATE SET business_process_role = EXCLUDED.business_process_role, is_active = EXCLUDED.is_active
		RETURNING id`,
		mp.ID, mp.MarketParticipantID, string(mp.BusinessProcessRole), mp.IsActive)
	if err != nil {
		return fmt.Errorf("marketParticipantRepo.Upsert: %w", err)
	}
	return nil
}
