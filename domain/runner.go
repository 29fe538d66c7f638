package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/validator.v2"

	"github.com/Jaskaranbir/account-balance/domain/account"
	"github.com/Jaskaranbir/account-balance/domain/reader"
	"github.com/Jaskaranbir/account-balance/domain/writer"
	"github.com/Jaskaranbir/account-balance/logger"
)

// RunCfg is config for a single summarizing run.
type RunCfg struct {
	Log         logger.Logger `validate:"nonnil"`
	AccountFile string        `validate:"nonzero"`

	ReaderCfg     *reader.Cfg            `validate:"nonnil"`
	CalculatorCfg *account.CalculatorCfg `validate:"nonnil"`
	WriterCfg     *writer.Cfg            `validate:"nonnil"`
}

// Run loads the account-file, computes its balance and writes
// the report. The first failing step ends the run, and nothing
// is written after a failure.
func Run(cfg *RunCfg) error {
	err := validator.Validate(cfg)
	if err != nil {
		return errors.Wrap(err, "error validating config")
	}

	r, err := reader.NewReader(cfg.ReaderCfg)
	if err != nil {
		return errors.Wrap(err, "error creating reader")
	}
	calc, err := account.NewCalculator(cfg.CalculatorCfg)
	if err != nil {
		return errors.Wrap(err, "error creating calculator")
	}
	w, err := writer.NewWriter(cfg.WriterCfg)
	if err != nil {
		return errors.Wrap(err, "error creating writer")
	}

	runID, err := uuid.NewRandom()
	if err != nil {
		return errors.Wrap(err, "error generating run-id")
	}
	logPrefix := fmt.Sprintf("[Run: %s]:", runID)

	cfg.Log.Infof("%s Loading account from %s", logPrefix, cfg.AccountFile)
	acc, err := r.Load(cfg.AccountFile)
	if err != nil {
		return errors.Wrap(err, "error loading account")
	}
	logPrefix = fmt.Sprintf("%s [Account: %s]:", logPrefix, acc.ID)

	cfg.Log.Debugf("%s Computing balance", logPrefix)
	balance, err := calc.Balance(acc)
	if err != nil {
		return errors.Wrap(err, "impossible balance")
	}

	cfg.Log.Debugf("%s Writing report", logPrefix)
	err = w.WriteReport(acc, balance)
	if err != nil {
		return errors.Wrap(err, "error writing report")
	}
	cfg.Log.Infof("%s Finished with balance %d", logPrefix, balance)

	return nil
}
