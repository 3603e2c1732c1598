package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// EtaBasis names the rule that produced an estimate.
type EtaBasis string

const (
	EtaBasisAssigned   EtaBasis = "assigned"
	EtaBasisUnassigned EtaBasis = "unassigned"
	EtaBasisTerminal   EtaBasis = "terminal"
)

// EtaEstimate is the estimated total delivery duration from confirmation, in minutes.
// It is recomputed on every request and never persisted.
type EtaEstimate struct {
	Minutes int
	Basis   EtaBasis
}

// MaxEtaMinutes is the largest estimate that still fits in a time.Duration.
const MaxEtaMinutes = int(math.MaxInt64 / int64(time.Minute))

// EtaConfig is fixed at process start.
type EtaConfig struct {
	// BaseTimeMinutes is the nominal preparation plus delivery time once a courier is assigned.
	BaseTimeMinutes int
	// NoCourierMultiplier scales the base time while the order still waits for dispatch.
	NoCourierMultiplier int
}

// Validate rejects configurations that cannot produce a meaningful estimate,
// including ones whose unassigned estimate would exceed MaxEtaMinutes.
func (c EtaConfig) Validate() error {
	var baseErr, multiplierErr, rangeErr error
	if c.BaseTimeMinutes <= 0 {
		baseErr = errs.NewValueIsInvalidErrorWithCause(
			"eta base time minutes",
			fmt.Errorf("%d is not greater than 0", c.BaseTimeMinutes),
		)
	}
	if c.NoCourierMultiplier < 1 {
		multiplierErr = errs.NewValueIsInvalidErrorWithCause(
			"eta no courier multiplier",
			fmt.Errorf("%d is less than 1", c.NoCourierMultiplier),
		)
	}
	if baseErr == nil && multiplierErr == nil && c.NoCourierMultiplier > MaxEtaMinutes/c.BaseTimeMinutes {
		rangeErr = errs.NewValueIsOutOfRangeError(
			"eta base time minutes times no courier multiplier",
			fmt.Sprintf("%d*%d", c.BaseTimeMinutes, c.NoCourierMultiplier), 1, MaxEtaMinutes,
		)
	}
	return errors.Join(baseErr, multiplierErr, rangeErr)
}

// EtaEstimator computes estimates as a pure function of configuration, order
// status and assignment presence.
//
//	estimator, err := services.NewEtaEstimator(services.EtaConfig{BaseTimeMinutes: 30, NoCourierMultiplier: 3})
//	eta := estimator.Estimate(o, nil) // {90, unassigned} for a confirmed order without courier
type EtaEstimator struct {
	cfg EtaConfig
}

// NewEtaEstimator fails on invalid configuration so the process can refuse to start.
func NewEtaEstimator(cfg EtaConfig) (EtaEstimator, error) {
	if err := cfg.Validate(); err != nil {
		return EtaEstimator{}, err
	}
	return EtaEstimator{cfg: cfg}, nil
}

func (e EtaEstimator) Config() EtaConfig {
	return e.cfg
}

// Estimate returns 0 minutes for terminal orders, the base time when an assignment
// exists and base time times the multiplier otherwise. The result is not reduced by
// the time elapsed since the last status change; callers that need a remaining
// duration subtract it using StatusChangedAt.
func (e EtaEstimator) Estimate(o *order.Order, assignment *courier.Assignment) EtaEstimate {
	return e.EstimateFor(o.Status(), assignment != nil)
}

// EstimateFor applies the same rules as Estimate to a status and an assignment flag,
// for callers that read orders as projections rather than aggregates.
func (e EtaEstimator) EstimateFor(status order.Status, assigned bool) EtaEstimate {
	if status.IsTerminal() {
		return EtaEstimate{Minutes: 0, Basis: EtaBasisTerminal}
	}

	if assigned {
		return EtaEstimate{Minutes: e.cfg.BaseTimeMinutes, Basis: EtaBasisAssigned}
	}

	return EtaEstimate{
		Minutes: e.cfg.BaseTimeMinutes * e.cfg.NoCourierMultiplier,
		Basis:   EtaBasisUnassigned,
	}
}
