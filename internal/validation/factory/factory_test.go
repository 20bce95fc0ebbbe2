package factory_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"charges/internal/calendar"
	"charges/internal/domain"
	"charges/internal/validation"
	"charges/mocks"
)

const (
	senderGLN    = "5790000000001"
	recipientGLN = "5790001330552"
)

var now = time.Date(2020, time.May, 10, 13, 0, 0, 0, time.UTC)

type fixture struct {
	charges      *mocks.MockChargeRepo
	participants *mocks.MockMarketParticipantRepo
	settings     *mocks.MockRulesConfigurationRepo
	zone         *calendar.ZonedDateTimeService
	owner        *domain.MarketParticipant
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	zone, err := calendar.NewZonedDateTimeService(calendar.FixedClock(now), calendar.DefaultTimeZone)
	require.NoError(t, err)

	settings := new(mocks.MockRulesConfigurationRepo)
	settings.On("Get", mock.Anything).Return(domain.RulesConfiguration{
		StartDateValidationRuleConfiguration: domain.StartDateValidationRuleConfiguration{
			ValidIntervalFromNowInDays: domain.Interval{Start: -720, End: 1095},
		},
	}, nil).Maybe()

	return &fixture{
		charges:      new(mocks.MockChargeRepo),
		participants: new(mocks.MockMarketParticipantRepo),
		settings:     settings,
		zone:         zone,
		owner: &domain.MarketParticipant{
			ID:                  uuid.New(),
			MarketParticipantID: senderGLN,
			BusinessProcessRole: domain.RoleGridAccessProvider,
			IsActive:            true,
		},
	}
}

func (f *fixture) knownSender() {
	f.participants.On("GetByMarketParticipantID", mock.Anything, senderGLN).Return(f.owner, nil)
}

func (f *fixture) storedCharge(charge *domain.Charge) {
	f.charges.On("GetOrNull", mock.Anything, mock.MatchedBy(func(id domain.ChargeIdentifier) bool {
		return id.OwnerID == f.owner.ID
	})).Return(charge, nil)
}

func document(docType domain.DocumentType, reason domain.BusinessReasonCode) domain.Document {
	return domain.Document{
		ID:                 "doc-1",
		Type:               docType,
		BusinessReasonCode: reason,
		Sender:             domain.MarketParticipantRef{MarketParticipantID: senderGLN, BusinessProcessRole: domain.RoleGridAccessProvider},
		Recipient:          domain.MarketParticipantRef{MarketParticipantID: recipientGLN, BusinessProcessRole: domain.RoleMeteringPointAdministrator},
	}
}

func informationCommand(ops ...domain.ChargeInformationOperation) *domain.ChargeInformationCommand {
	return &domain.ChargeInformationCommand{
		Document:   document(domain.DocumentTypeRequestUpdateChargeInformation, domain.BusinessReasonCodeUpdateChargeInformation),
		Operations: ops,
	}
}

func tariffOperation(id string, kind domain.OperationKind) domain.ChargeInformationOperation {
	return domain.ChargeInformationOperation{
		OperationID:       id,
		Kind:              kind,
		ChargeID:          "T-1",
		ChargeOwner:       senderGLN,
		Type:              domain.ChargeTypeTariff,
		Name:              "Net tariff",
		Description:       "Net tariff C",
		Resolution:        domain.ResolutionPT1H,
		TaxIndicator:      true,
		VatClassification: domain.VatClassificationVat25,
		StartDateTime:     time.Date(2020, 6, 30, 22, 0, 0, 0, time.UTC),
	}
}

func storedTariff(ownerID uuid.UUID) *domain.Charge {
	return &domain.Charge{
		ID:                     uuid.New(),
		SenderProvidedChargeID: "T-1",
		OwnerID:                ownerID,
		Type:                   domain.ChargeTypeTariff,
		Resolution:             domain.ResolutionPT1H,
		TaxIndicator:           true,
		Periods: []domain.ChargePeriod{{
			Name:              "Net tariff",
			VatClassification: domain.VatClassificationVat25,
			StartDateTime:     time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDateTime:       domain.EndOfTime,
		}},
	}
}

func pricePoints(n int) []domain.Point {
	out := make([]domain.Point, n)
	for i := range out {
		out[i] = domain.Point{Position: i + 1, Price: decimal.NewFromFloat(0.25)}
	}
	return out
}

func failedIDs(r *validation.Result) []validation.RuleIdentifier {
	var ids []validation.RuleIdentifier
	for _, c := range r.InvalidRules() {
		ids = append(ids, c.Rule().Identifier())
	}
	return ids
}

func ruleIDs(rs *validation.RuleSet) []validation.RuleIdentifier {
	var ids []validation.RuleIdentifier
	for _, c := range rs.Rules() {
		ids = append(ids, c.Rule().Identifier())
	}
	return ids
}
