package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"seguradora_xpto/internal/domain/valueobjects"

	"github.com/google/uuid"
)

var (
	ErrPolicyProposalIDRequired = errors.New("proposal id is required")
	ErrInvalidCoveragePeriod    = errors.New("coverage period end must be after start")
	ErrCoveragePeriodInPast     = errors.New("coverage period cannot start before today")
	ErrInvalidPremium           = errors.New("premium must be greater than zero")
)

// Policy is the binding contract created from an approved proposal.
// It is immutable after creation; at most one policy exists per proposal,
// which the storage layer enforces with a uniqueness constraint.
type Policy struct {
	id                  string
	proposalID          string
	policyNumber        string
	contractedAt        time.Time
	coveragePeriodStart time.Time
	coveragePeriodEnd   time.Time
	premium             valueobjects.MonetaryAmount
}

// NewPolicy validates the coverage period and premium and assigns a fresh
// policy number.
func NewPolicy(proposalID string, coveragePeriodStart, coveragePeriodEnd time.Time, premium float64) (Policy, error) {
	if strings.TrimSpace(proposalID) == "" {
		return Policy{}, ErrPolicyProposalIDRequired
	}
	if !coveragePeriodEnd.After(coveragePeriodStart) {
		return Policy{}, ErrInvalidCoveragePeriod
	}
	if coveragePeriodStart.Before(todayUTC()) {
		return Policy{}, ErrCoveragePeriodInPast
	}
	if premium <= 0 {
		return Policy{}, ErrInvalidPremium
	}

	premiumAmount, err := valueobjects.NewMonetaryAmount(premium)
	if err != nil {
		return Policy{}, err
	}

	return Policy{
		id:                  uuid.NewString(),
		proposalID:          proposalID,
		policyNumber:        newPolicyNumber(),
		contractedAt:        time.Now().UTC(),
		coveragePeriodStart: coveragePeriodStart,
		coveragePeriodEnd:   coveragePeriodEnd,
		premium:             premiumAmount,
	}, nil
}

// RestorePolicy rebuilds a policy previously persisted by this service.
// Repositories only; no business validation.
func RestorePolicy(
	id, proposalID, policyNumber string,
	contractedAt, coveragePeriodStart, coveragePeriodEnd time.Time,
	premium valueobjects.MonetaryAmount,
) Policy {
	return Policy{
		id:                  id,
		proposalID:          proposalID,
		policyNumber:        policyNumber,
		contractedAt:        contractedAt,
		coveragePeriodStart: coveragePeriodStart,
		coveragePeriodEnd:   coveragePeriodEnd,
		premium:             premium,
	}
}

// newPolicyNumber generates APO-YYYYMMDD-XXXXXX. The suffix comes from a
// fresh uuid, so two policies contracted the same day still differ.
func newPolicyNumber() string {
	date := time.Now().UTC().Format("20060102")
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("APO-%s-%s", date, suffix)
}

func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (p Policy) ID() string                            { return p.id }
func (p Policy) ProposalID() string                    { return p.proposalID }
func (p Policy) PolicyNumber() string                  { return p.policyNumber }
func (p Policy) ContractedAt() time.Time               { return p.contractedAt }
func (p Policy) CoveragePeriodStart() time.Time        { return p.coveragePeriodStart }
func (p Policy) CoveragePeriodEnd() time.Time          { return p.coveragePeriodEnd }
func (p Policy) Premium() valueobjects.MonetaryAmount  { return p.premium }
