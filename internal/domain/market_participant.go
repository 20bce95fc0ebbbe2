package domain

import "github.com/google/uuid"

// MarketParticipantRole is the business process role of a market participant.
type MarketParticipantRole string

const (
	RoleSystemOperator             MarketParticipantRole = "EZ"
	RoleGridAccessProvider         MarketParticipantRole = "DDM"
	RoleMeteringPointAdministrator MarketParticipantRole = "DDZ"
	RoleEnergySupplier             MarketParticipantRole = "DDQ"
)

// MarketParticipant is an actor registered with the data hub.
type MarketParticipant struct {
	ID                  uuid.UUID             `db:"id" json:"id"`
	MarketParticipantID string                `db:"market_participant_id" json:"market_participant_id"`
	BusinessProcessRole MarketParticipantRole `db:"business_process_role" json:"business_process_role"`
	IsActive            bool                  `db:"is_active" json:"is_active"`
}
