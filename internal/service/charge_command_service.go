package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"charges/internal/domain"
	"charges/internal/events"
	"charges/internal/port"
	"charges/internal/validation"
)

// Outcome is the answer to a submitted charge document.
type Outcome struct {
	Accepted bool                         `json:"accepted"`
	Errors   []validation.ValidationError `json:"errors,omitempty"`
}

// ChargeCommandService defines the charge document handling contract.
type ChargeCommandService interface {
	HandleChargeInformation(ctx context.Context, cmd *domain.ChargeInformationCommand) (*Outcome, error)
	HandleChargePrices(ctx context.Context, cmd *domain.ChargePriceCommand) (*Outcome, error)
}

// Validators groups the validators of both command kinds.
type Validators struct {
	Information *validation.Validator[*domain.ChargeInformationCommand]
	Price       *validation.Validator[*domain.ChargePriceCommand]
}

type chargeCommandService struct {
	validators   Validators
	charges      port.ChargeRepository
	participants port.MarketParticipantRepository
	publisher    port.EventPublisher
	archive      port.DocumentArchive
	events       *events.Factory
	logger       *zap.Logger
}

// NewChargeCommandService creates a new ChargeCommandService. archive may be
// nil, in which case inbound documents are not archived.
func NewChargeCommandService(
	validators Validators,
	charges port.ChargeRepository,
	participants port.MarketParticipantRepository,
	publisher port.EventPublisher,
	archive port.DocumentArchive,
	eventFactory *events.Factory,
	logger *zap.Logger,
) ChargeCommandService {
	return &chargeCommandService{
		validators:   validators,
		charges:      charges,
		participants: participants,
		publisher:    publisher,
		archive:      archive,
		events:       eventFactory,
		logger:       logger,
	}
}

func (s *chargeCommandService) HandleChargeInformation(ctx context.Context, cmd *domain.ChargeInformationCommand) (*Outcome, error) {
	log := s.logger.With(zap.String("document_id", cmd.Document.ID), zap.String("sender", cmd.Document.Sender.MarketParticipantID))
	s.archiveDocument(ctx, log, "charge-information", cmd.Document.ID, cmd)

	result, err := s.validators.Information.InputValidate(cmd)
	if err != nil {
		return nil, fmt.Errorf("chargeCommand.HandleChargeInformation input: %w", err)
	}
	if !result.IsFailed() {
		result, err = s.validators.Information.BusinessValidate(ctx, cmd)
		if err != nil {
			return nil, fmt.Errorf("chargeCommand.HandleChargeInformation business: %w", err)
		}
	}
	if result.IsFailed() {
		event, err := s.events.ChargeInformationRejected(cmd, result)
		if err != nil {
			return nil, fmt.Errorf("chargeCommand.HandleChargeInformation: %w", err)
		}
		return s.reject(ctx, log, event, result)
	}

	err = s.save(ctx, log, func(cs *changeSet) error {
		for i := range cmd.Operations {
			if err := s.applyInformation(ctx, cs, cmd.Operations[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("chargeCommand.HandleChargeInformation: %w", err)
	}

	if err := s.publisher.Publish(ctx, s.events.ChargeInformationAccepted(cmd)); err != nil {
		return nil, fmt.Errorf("chargeCommand.HandleChargeInformation publish: %w", err)
	}
	log.Info("charge information accepted", zap.Int("operations", len(cmd.Operations)))
	return &Outcome{Accepted: true}, nil
}

func (s *chargeCommandService) HandleChargePrices(ctx context.Context, cmd *domain.ChargePriceCommand) (*Outcome, error) {
	log := s.logger.With(zap.String("document_id", cmd.Document.ID), zap.String("sender", cmd.Document.Sender.MarketParticipantID))
	s.archiveDocument(ctx, log, "charge-prices", cmd.Document.ID, cmd)

	result, err := s.validators.Price.InputValidate(cmd)
	if err != nil {
		return nil, fmt.Errorf("chargeCommand.HandleChargePrices input: %w", err)
	}
	if !result.IsFailed() {
		result, err = s.validators.Price.BusinessValidate(ctx, cmd)
		if err != nil {
			return nil, fmt.Errorf("chargeCommand.HandleChargePrices business: %w", err)
		}
	}
	if result.IsFailed() {
		event, err := s.events.ChargePriceRejected(cmd, result)
		if err != nil {
			return nil, fmt.Errorf("chargeCommand.HandleChargePrices: %w", err)
		}
		return s.reject(ctx, log, event, result)
	}

	err = s.save(ctx, log, func(cs *changeSet) error {
		for i := range cmd.Operations {
			if err := s.applyPrices(ctx, cs, cmd.Operations[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("chargeCommand.HandleChargePrices: %w", err)
	}

	if err := s.publisher.Publish(ctx, s.events.ChargePriceAccepted(cmd)); err != nil {
		return nil, fmt.Errorf("chargeCommand.HandleChargePrices publish: %w", err)
	}
	for i := range cmd.Operations {
		if err := s.publisher.Publish(ctx, s.events.ChargePricesUpdated(cmd.Operations[i])); err != nil {
			return nil, fmt.Errorf("chargeCommand.HandleChargePrices publish prices: %w", err)
		}
	}
	log.Info("charge prices accepted", zap.Int("operations", len(cmd.Operations)))
	return &Outcome{Accepted: true}, nil
}

func (s *chargeCommandService) reject(ctx context.Context, log *zap.Logger, event events.Event, result *validation.Result) (*Outcome, error) {
	errs := validation.ValidationErrors(result)
	if err := s.publisher.Publish(ctx, event); err != nil {
		return nil, fmt.Errorf("chargeCommand.reject publish: %w", err)
	}

	rules := make([]string, 0, len(errs))
	for _, ve := range errs {
		rules = append(rules, ve.RuleID.String())
	}
	log.Info("document rejected", zap.Strings("rules", rules))
	return &Outcome{Accepted: false, Errors: errs}, nil
}

// save stages the document's operations and stores them in one transaction.
// When another document changed one of the charges in the meantime, the
// operations are applied again to freshly read charges.
func (s *chargeCommandService) save(ctx context.Context, log *zap.Logger, stage func(cs *changeSet) error) error {
	for attempt := 1; ; attempt++ {
		cs := newChangeSet(s.charges)
		if err := stage(cs); err != nil {
			return err
		}
		err := s.charges.Save(ctx, cs.changes)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrConcurrentUpdate) || attempt == maxSaveAttempts {
			return fmt.Errorf("saving charges: %w", err)
		}
		log.Warn("charge modified concurrently, applying document again", zap.Int("attempt", attempt), zap.Error(err))
	}
}

func (s *chargeCommandService) applyInformation(ctx context.Context, cs *changeSet, op domain.ChargeInformationOperation) error {
	owner, err := s.owner(ctx, op.ChargeOwner)
	if err != nil {
		return err
	}
	id := domain.ChargeIdentifier{SenderProvidedChargeID: op.ChargeID, OwnerID: owner.ID, Type: op.Type}

	if op.Kind == domain.OperationKindCreate {
		return cs.add(domain.NewCharge(id, op.Resolution, op.TaxIndicator, op.Period()))
	}

	charge, err := cs.load(ctx, id)
	if err != nil {
		return err
	}
	switch op.Kind {
	case domain.OperationKindUpdate:
		charge.Update(op.Period())
	case domain.OperationKindStop:
		charge.Stop(op.StartDateTime)
	default:
		return fmt.Errorf("%w: %q", validation.ErrUnsupportedOperationKind, op.Kind)
	}
	return nil
}

func (s *chargeCommandService) applyPrices(ctx context.Context, cs *changeSet, op domain.ChargePriceOperation) error {
	owner, err := s.owner(ctx, op.ChargeOwner)
	if err != nil {
		return err
	}
	charge, err := cs.load(ctx, domain.ChargeIdentifier{
		SenderProvidedChargeID: op.ChargeID,
		OwnerID:                owner.ID,
		Type:                   op.Type,
	})
	if err != nil {
		return err
	}
	charge.UpdatePrices(op.PointsStartInterval, op.PointsEndInterval, op.Points)
	return nil
}

func (s *chargeCommandService) owner(ctx context.Context, marketParticipantID string) (*domain.MarketParticipant, error) {
	owner, err := s.participants.GetByMarketParticipantID(ctx, marketParticipantID)
	if err != nil {
		return nil, fmt.Errorf("loading charge owner %s: %w", marketParticipantID, err)
	}
	if owner == nil {
		return nil, fmt.Errorf("charge owner %s: %w", marketParticipantID, domain.ErrMarketParticipantNotFound)
	}
	return owner, nil
}

// archiveDocument stores the received document. Failures are logged, not returned.
func (s *chargeCommandService) archiveDocument(ctx context.Context, log *zap.Logger, kind, documentID string, cmd any) {
	if s.archive == nil {
		return
	}
	body, err := json.Marshal(cmd)
	if err != nil {
		log.Warn("encoding document for archive", zap.Error(err))
		return
	}
	key := fmt.Sprintf("%s/%s/%s.json", kind, documentID, uuid.New())
	if err := s.archive.Archive(ctx, key, body); err != nil {
		log.Warn("archiving document", zap.String("key", key), zap.Error(err))
	}
}
