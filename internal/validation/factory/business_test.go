package factory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"charges/internal/domain"
	"charges/internal/validation"
	"charges/internal/validation/factory"
	"charges/mocks"
)

func TestChargeInformationBusinessRulesFactory_UpdateOfMissingCharge(t *testing.T) {
	f := newFixture(t)
	f.knownSender()
	f.storedCharge(nil)
	sut := factory.NewChargeInformationBusinessRulesFactory(f.charges, f.participants, f.settings, f.zone)

	rs, err := sut.CreateRules(context.Background(), informationCommand(tariffOperation("op-1", domain.OperationKindUpdate)))
	require.NoError(t, err)

	assert.Equal(t, []validation.RuleIdentifier{
		validation.CommandSenderMustBeAnExistingMarketParticipant,
		validation.StartDateValidation,
		validation.ChargeMustExist,
	}, ruleIDs(rs))

	result := rs.Validate()
	require.True(t, result.IsFailed())
	assert.Equal(t, []validation.RuleIdentifier{validation.ChargeMustExist}, failedIDs(result))
	opID, scoped := result.InvalidRules()[0].OperationID()
	assert.True(t, scoped)
	assert.Equal(t, "op-1", opID)
}

func TestChargeInformationBusinessRulesFactory_CreateWithUnknownSender(t *testing.T) {
	f := newFixture(t)
	f.participants.On("GetByMarketParticipantID", mock.Anything, senderGLN).Return(nil, nil)
	sut := factory.NewChargeInformationBusinessRulesFactory(f.charges, f.participants, f.settings, f.zone)

	rs, err := sut.CreateRules(context.Background(), informationCommand(tariffOperation("op-1", domain.OperationKindCreate)))
	require.NoError(t, err)

	result := rs.Validate()
	require.Len(t, result.InvalidRules(), 1)
	failed := result.InvalidRules()[0]
	assert.Equal(t, validation.CommandSenderMustBeAnExistingMarketParticipant, failed.Rule().Identifier())
	_, scoped := failed.OperationID()
	assert.False(t, scoped)
	f.charges.AssertNotCalled(t, "GetOrNull", mock.Anything, mock.Anything)
}

func TestChargeInformationBusinessRulesFactory_CreateOfExistingCharge(t *testing.T) {
	f := newFixture(t)
	f.knownSender()
	f.storedCharge(storedTariff(f.owner.ID))
	sut := factory.NewChargeInformationBusinessRulesFactory(f.charges, f.participants, f.settings, f.zone)

	rs, err := sut.CreateRules(context.Background(), informationCommand(tariffOperation("op-1", domain.OperationKindCreate)))
	require.NoError(t, err)

	assert.Equal(t, []validation.RuleIdentifier{validation.ChargeMustNotAlreadyExist}, failedIDs(rs.Validate()))
}

func TestChargeInformationBusinessRulesFactory_UpdateOfExistingTariff(t *testing.T) {
	f := newFixture(t)
	f.knownSender()
	f.storedCharge(storedTariff(f.owner.ID))
	sut := factory.NewChargeInformationBusinessRulesFactory(f.charges, f.participants, f.settings, f.zone)

	op := tariffOperation("op-1", domain.OperationKindUpdate)
	op.TaxIndicator = false
	op.VatClassification = domain.VatClassificationNoVat
	op.Resolution = domain.ResolutionPT15M

	rs, err := sut.CreateRules(context.Background(), informationCommand(op))
	require.NoError(t, err)

	assert.Equal(t, []validation.RuleIdentifier{
		validation.CommandSenderMustBeAnExistingMarketParticipant,
		validation.StartDateValidation,
		validation.ChargeMustExist,
		validation.ChangingTariffTaxValueNotAllowed,
		validation.ChangingTariffVatValueNotAllowed,
		validation.UpdateChargeMustHaveEffectiveDateBeforeOrOnStopDate,
		validation.ChargeResolutionCanNotBeUpdated,
	}, ruleIDs(rs))
	assert.Equal(t, []validation.RuleIdentifier{
		validation.ChangingTariffTaxValueNotAllowed,
		validation.ChangingTariffVatValueNotAllowed,
		validation.ChargeResolutionCanNotBeUpdated,
	}, failedIDs(rs.Validate()))
}

func TestChargeInformationBusinessRulesFactory_StopOfExistingCharge(t *testing.T) {
	f := newFixture(t)
	f.knownSender()
	f.storedCharge(storedTariff(f.owner.ID))
	sut := factory.NewChargeInformationBusinessRulesFactory(f.charges, f.participants, f.settings, f.zone)

	rs, err := sut.CreateRules(context.Background(), informationCommand(tariffOperation("op-1", domain.OperationKindStop)))
	require.NoError(t, err)

	assert.Equal(t, []validation.RuleIdentifier{
		validation.CommandSenderMustBeAnExistingMarketParticipant,
		validation.StartDateValidation,
		validation.ChargeMustExist,
		validation.UpdateChargeMustHaveEffectiveDateBeforeOrOnStopDate,
	}, ruleIDs(rs))
	assert.False(t, rs.Validate().IsFailed())
}

func TestChargeInformationBusinessRulesFactory_SenderRuleOncePerDocument(t *testing.T) {
	f := newFixture(t)
	f.knownSender()
	f.storedCharge(nil)
	sut := factory.NewChargeInformationBusinessRulesFactory(f.charges, f.participants, f.settings, f.zone)

	rs, err := sut.CreateRules(context.Background(), informationCommand(
		tariffOperation("op-1", domain.OperationKindCreate),
		tariffOperation("op-2", domain.OperationKindCreate),
	))
	require.NoError(t, err)

	senderRules := 0
	for _, c := range rs.Rules() {
		if c.Rule().Identifier() == validation.CommandSenderMustBeAnExistingMarketParticipant {
			senderRules++
			_, scoped := c.OperationID()
			assert.False(t, scoped)
		}
	}
	assert.Equal(t, 1, senderRules)
	assert.Equal(t, 5, rs.Len())
}

func TestChargeInformationBusinessRulesFactory_SecondCreateOfSameCharge(t *testing.T) {
	f := newFixture(t)
	f.knownSender()
	f.storedCharge(nil)
	sut := factory.NewChargeInformationBusinessRulesFactory(f.charges, f.participants, f.settings, f.zone)

	rs, err := sut.CreateRules(context.Background(), informationCommand(
		tariffOperation("op-1", domain.OperationKindCreate),
		tariffOperation("op-2", domain.OperationKindCreate),
	))
	require.NoError(t, err)

	result := rs.Validate()
	require.Equal(t, []validation.RuleIdentifier{validation.ChargeMustNotAlreadyExist}, failedIDs(result))
	opID, scoped := result.InvalidRules()[0].OperationID()
	assert.True(t, scoped)
	assert.Equal(t, "op-2", opID)
	f.charges.AssertNumberOfCalls(t, "GetOrNull", 1)
}

func TestChargeInformationBusinessRulesFactory_OperationsSeeEarlierOperations(t *testing.T) {
	t.Run("update of charge created in same document", func(t *testing.T) {
		f := newFixture(t)
		f.knownSender()
		f.storedCharge(nil)
		sut := factory.NewChargeInformationBusinessRulesFactory(f.charges, f.participants, f.settings, f.zone)

		update := tariffOperation("op-2", domain.OperationKindUpdate)
		update.StartDateTime = update.StartDateTime.AddDate(0, 0, 7)
		rs, err := sut.CreateRules(context.Background(), informationCommand(
			tariffOperation("op-1", domain.OperationKindCreate),
			update,
		))
		require.NoError(t, err)

		assert.False(t, rs.Validate().IsFailed())
	})

	t.Run("update after stop in same document", func(t *testing.T) {
		f := newFixture(t)
		f.knownSender()
		f.storedCharge(storedTariff(f.owner.ID))
		sut := factory.NewChargeInformationBusinessRulesFactory(f.charges, f.participants, f.settings, f.zone)

		update := tariffOperation("op-2", domain.OperationKindUpdate)
		update.StartDateTime = update.StartDateTime.AddDate(0, 0, 7)
		rs, err := sut.CreateRules(context.Background(), informationCommand(
			tariffOperation("op-1", domain.OperationKindStop),
			update,
		))
		require.NoError(t, err)

		assert.Equal(t, []validation.RuleIdentifier{
			validation.UpdateChargeMustHaveEffectiveDateBeforeOrOnStopDate,
		}, failedIDs(rs.Validate()))
	})
}

func TestChargeInformationBusinessRulesFactory_UnsupportedKind(t *testing.T) {
	f := newFixture(t)
	f.knownSender()
	sut := factory.NewChargeInformationBusinessRulesFactory(f.charges, f.participants, f.settings, f.zone)

	_, err := sut.CreateRules(context.Background(), informationCommand(tariffOperation("op-1", "rename")))
	assert.ErrorIs(t, err, validation.ErrUnsupportedOperationKind)
}

func TestChargeInformationBusinessRulesFactory_CreateRulesForOperation(t *testing.T) {
	f := newFixture(t)
	f.knownSender()
	f.storedCharge(nil)
	sut := factory.NewChargeInformationBusinessRulesFactory(f.charges, f.participants, f.settings, f.zone)

	cmd := informationCommand(tariffOperation("op-7", domain.OperationKindCreate))
	rs, err := sut.CreateRulesForOperation(context.Background(), cmd.Document, cmd.Operations[0])
	require.NoError(t, err)

	require.Equal(t, 3, rs.Len())
	for _, c := range rs.Rules() {
		opID, scoped := c.OperationID()
		assert.True(t, scoped)
		assert.Equal(t, "op-7", opID)
	}
}

func TestChargeInformationBusinessRulesFactory_RepositoryErrors(t *testing.T) {
	boom := errors.New("connection reset")

	t.Run("configuration", func(t *testing.T) {
		f := newFixture(t)
		settings := new(mocks.MockRulesConfigurationRepo)
		settings.On("Get", mock.Anything).Return(domain.RulesConfiguration{}, boom)
		sut := factory.NewChargeInformationBusinessRulesFactory(f.charges, f.participants, settings, f.zone)

		_, err := sut.CreateRules(context.Background(), informationCommand())
		assert.ErrorIs(t, err, boom)
	})

	t.Run("charge lookup", func(t *testing.T) {
		f := newFixture(t)
		f.knownSender()
		f.charges.On("GetOrNull", mock.Anything, mock.Anything).Return(nil, boom)
		sut := factory.NewChargeInformationBusinessRulesFactory(f.charges, f.participants, f.settings, f.zone)

		_, err := sut.CreateRules(context.Background(), informationCommand(tariffOperation("op-1", domain.OperationKindUpdate)))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("canceled context", func(t *testing.T) {
		f := newFixture(t)
		f.knownSender()
		sut := factory.NewChargeInformationBusinessRulesFactory(f.charges, f.participants, f.settings, f.zone)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := sut.CreateRules(ctx, informationCommand(tariffOperation("op-1", domain.OperationKindUpdate)))
		assert.ErrorIs(t, err, context.Canceled)
		f.charges.AssertNotCalled(t, "GetOrNull", mock.Anything, mock.Anything)
	})
}

func TestChargePriceBusinessRulesFactory(t *testing.T) {
	f := newFixture(t)
	f.knownSender()
	f.storedCharge(storedTariff(f.owner.ID))
	sut := factory.NewChargePriceBusinessRulesFactory(f.charges, f.participants, f.settings, f.zone)

	cmd := priceCommand(priceOperation("op-1", domain.ResolutionPT15M, 96))
	rs, err := sut.CreateRules(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, []validation.RuleIdentifier{
		validation.CommandSenderMustBeAnExistingMarketParticipant,
		validation.StartDateValidation,
		validation.ChargeMustExist,
		validation.UpdateChargeMustHaveEffectiveDateBeforeOrOnStopDate,
		validation.ChargeResolutionCanNotBeUpdated,
	}, ruleIDs(rs))
	assert.Equal(t, []validation.RuleIdentifier{validation.ChargeResolutionCanNotBeUpdated}, failedIDs(rs.Validate()))
}

func TestChargePriceBusinessRulesFactory_MissingCharge(t *testing.T) {
	f := newFixture(t)
	f.knownSender()
	f.storedCharge(nil)
	sut := factory.NewChargePriceBusinessRulesFactory(f.charges, f.participants, f.settings, f.zone)

	cmd := priceCommand(priceOperation("op-1", domain.ResolutionPT1H, 24))
	rs, err := sut.CreateRulesForOperation(context.Background(), cmd.Document, cmd.Operations[0])
	require.NoError(t, err)

	assert.Equal(t, []validation.RuleIdentifier{validation.ChargeMustExist}, failedIDs(rs.Validate()))
}
