package factory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charges/internal/domain"
	"charges/internal/validation"
	"charges/internal/validation/factory"
)

var (
	julyFirst  = time.Date(2020, 6, 30, 22, 0, 0, 0, time.UTC)
	julySecond = time.Date(2020, 7, 1, 22, 0, 0, 0, time.UTC)
)

func priceCommand(ops ...domain.ChargePriceOperation) *domain.ChargePriceCommand {
	return &domain.ChargePriceCommand{
		Document:   document(domain.DocumentTypeRequestChangeOfPriceList, domain.BusinessReasonCodeUpdateChargePrices),
		Operations: ops,
	}
}

func priceOperation(id string, resolution domain.Resolution, count int) domain.ChargePriceOperation {
	return domain.ChargePriceOperation{
		OperationID:         id,
		ChargeID:            "T-1",
		ChargeOwner:         senderGLN,
		Type:                domain.ChargeTypeTariff,
		Resolution:          resolution,
		StartDateTime:       julyFirst,
		PointsStartInterval: julyFirst,
		PointsEndInterval:   julySecond,
		Points:              pricePoints(count),
	}
}

func TestChargeInformationInputRulesFactory_ValidCommand(t *testing.T) {
	rs, err := factory.ChargeInformationInputRulesFactory{}.CreateRules(
		informationCommand(tariffOperation("op-1", domain.OperationKindCreate)))
	require.NoError(t, err)

	assert.False(t, rs.Validate().IsFailed())
}

func TestChargeInformationInputRulesFactory_Scoping(t *testing.T) {
	cmd := informationCommand(
		tariffOperation("op-1", domain.OperationKindCreate),
		tariffOperation("op-2", domain.OperationKindUpdate),
	)
	rs, err := factory.ChargeInformationInputRulesFactory{}.CreateRules(cmd)
	require.NoError(t, err)

	perOperation := factory.ChargeInformationInputRulesFactory{}.CreateRulesForOperation(cmd.Document, cmd.Operations[0]).Len()
	documentScoped := 5
	require.Equal(t, documentScoped+2*perOperation, rs.Len())

	for i, c := range rs.Rules() {
		opID, scoped := c.OperationID()
		switch {
		case i < documentScoped:
			assert.False(t, scoped, "rule %s", c.Rule().Identifier())
		case i < documentScoped+perOperation:
			assert.Equal(t, "op-1", opID)
		default:
			assert.Equal(t, "op-2", opID)
		}
	}
}

func TestChargeInformationInputRulesFactory_InvalidOperation(t *testing.T) {
	op := tariffOperation("op-1", domain.OperationKindCreate)
	op.Type = domain.ChargeTypeFee
	op.ChargeOwner = "5790000000002"
	op.Resolution = domain.ResolutionPT1H
	op.TransparentInvoicing = true

	cmd := informationCommand(op)
	cmd.Document.Recipient.BusinessProcessRole = domain.RoleEnergySupplier

	rs, err := factory.ChargeInformationInputRulesFactory{}.CreateRules(cmd)
	require.NoError(t, err)

	assert.Equal(t, []validation.RuleIdentifier{
		validation.RecipientRoleMustBeDdz,
		validation.ChargeOwnerMustMatchSender,
		validation.ResolutionFeeValidation,
		validation.TaxIndicatorMustBeFalseForFee,
		validation.TransparentInvoicingIsNotAllowedForFee,
	}, failedIDs(rs.Validate()))
}

func TestChargePriceInputRulesFactory_ValidCommand(t *testing.T) {
	f := newFixture(t)
	rs, err := factory.NewChargePriceInputRulesFactory(f.zone).CreateRules(
		priceCommand(priceOperation("op-1", domain.ResolutionPT1H, 24)))
	require.NoError(t, err)

	ids := ruleIDs(rs)
	assert.Contains(t, ids, validation.ChargeTypeTariffPriceCount)
	assert.Contains(t, ids, validation.NumberOfPointsMatchTimeIntervalAndResolution)
	assert.False(t, rs.Validate().IsFailed())
}

func TestChargePriceInputRulesFactory_UnknownResolutionSkipsCountRules(t *testing.T) {
	f := newFixture(t)
	rs, err := factory.NewChargePriceInputRulesFactory(f.zone).CreateRules(
		priceCommand(priceOperation("op-1", domain.ResolutionUnknown, 24)))
	require.NoError(t, err)

	ids := ruleIDs(rs)
	assert.NotContains(t, ids, validation.ChargeTypeTariffPriceCount)
	assert.NotContains(t, ids, validation.NumberOfPointsMatchTimeIntervalAndResolution)
	assert.Equal(t, []validation.RuleIdentifier{validation.PriceListResolutionMustBeSpecified}, failedIDs(rs.Validate()))
}

func TestChargePriceInputRulesFactory_PointCountMismatch(t *testing.T) {
	f := newFixture(t)
	cmd := priceCommand(priceOperation("op-1", domain.ResolutionPT15M, 92))

	rs, err := factory.NewChargePriceInputRulesFactory(f.zone).CreateRulesForOperation(cmd.Document, cmd.Operations[0])
	require.NoError(t, err)

	result := rs.Validate()
	assert.Equal(t, []validation.RuleIdentifier{validation.NumberOfPointsMatchTimeIntervalAndResolution}, failedIDs(result))
	opID, scoped := result.InvalidRules()[0].OperationID()
	assert.True(t, scoped)
	assert.Equal(t, "op-1", opID)
}

func TestChargePriceInputRulesFactory_UnimplementedResolution(t *testing.T) {
	f := newFixture(t)
	_, err := factory.NewChargePriceInputRulesFactory(f.zone).CreateRules(
		priceCommand(priceOperation("op-1", domain.Resolution(9), 1)))
	assert.ErrorIs(t, err, validation.ErrUnknownResolution)
}
