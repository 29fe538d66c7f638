package account

import (
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/validator.v2"

	"github.com/Jaskaranbir/account-balance/logger"
	"github.com/Jaskaranbir/account-balance/model"
)

// BalancePolicy decides how a negative balance is treated.
type BalancePolicy string

// Supported balance-policies.
const (
	// RejectNegative fails with *model.NegativeBalanceError
	// when transactions sum to less than zero.
	RejectNegative BalancePolicy = "RejectNegative"
	// AllowNegative returns the raw sum.
	AllowNegative BalancePolicy = "AllowNegative"
)

// Calculator computes account-balances.
// Use #NewCalculator to create new instance.
type Calculator struct {
	log    logger.Logger
	policy BalancePolicy
}

// CalculatorCfg defines config for Calculator.
type CalculatorCfg struct {
	Log    logger.Logger `validate:"nonnil"`
	Policy BalancePolicy `validate:"nonzero"`
}

// NewCalculator validates Calculator-Config
// and creates new Calculator-instance.
func NewCalculator(cfg *CalculatorCfg) (*Calculator, error) {
	err := validator.Validate(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "error validating config")
	}
	if cfg.Policy != RejectNegative && cfg.Policy != AllowNegative {
		return nil, errors.Errorf("unknown balance-policy: %s", cfg.Policy)
	}

	return &Calculator{
		log:    cfg.Log,
		policy: cfg.Policy,
	}, nil
}

// Sum adds up amounts of all transactions of acc.
// An account without transactions sums to 0.
func Sum(acc *model.Account) int64 {
	var total int64
	for _, txn := range acc.Transactions {
		total += txn.Amount
	}
	return total
}

// Balance returns the balance of acc according to the
// Calculator's policy.
func (c *Calculator) Balance(acc *model.Account) (int64, error) {
	if acc == nil {
		return 0, errors.New("account is nil")
	}
	logPrefix := fmt.Sprintf("[Account: %s]:", acc.ID)

	balance := Sum(acc)
	c.log.Tracef(
		"%s Summed %d transactions to %d",
		logPrefix, len(acc.Transactions), balance,
	)

	if balance < 0 && c.policy == RejectNegative {
		c.log.Debugf("%s Rejecting negative balance", logPrefix)
		return 0, &model.NegativeBalanceError{Balance: balance}
	}
	return balance, nil
}
