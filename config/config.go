package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// DefaultAccountFile is read when ACCOUNT_FILE is unset or empty.
// Path is relative to the working directory.
const DefaultAccountFile = "account.json"

// Env-vars read by #FromEnv.
const (
	AccountFileEnv          = "ACCOUNT_FILE"
	AllowNegativeBalanceEnv = "ALLOW_NEGATIVE_BALANCE"
	ReportTxnsEnv           = "REPORT_TXNS"
)

var defaultEnv = map[string]string{
	"LOG_LEVEL": "warn",
}

func init() {
	for envVar, envVal := range defaultEnv {
		if os.Getenv(envVar) == "" {
			os.Setenv(envVar, envVal)
		}
	}
}

// Cfg is process-level configuration.
type Cfg struct {
	// AccountFile is the path of the account-record to summarize.
	AccountFile string
	// AllowNegativeBalance disables the negative-balance check.
	AllowNegativeBalance bool
	// ReportTxns prints one line per transaction before the balance.
	ReportTxns bool
}

// FromEnv builds Cfg from env-vars, applying defaults
// for unset values. Boolean env-vars must be parseable
// by strconv.ParseBool when set.
func FromEnv() (*Cfg, error) {
	allowNegative, err := boolEnv(AllowNegativeBalanceEnv)
	if err != nil {
		return nil, err
	}
	reportTxns, err := boolEnv(ReportTxnsEnv)
	if err != nil {
		return nil, err
	}

	return &Cfg{
		AccountFile:          valueOrDefault(AccountFileEnv, DefaultAccountFile),
		AllowNegativeBalance: allowNegative,
		ReportTxns:           reportTxns,
	}, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func boolEnv(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.Wrapf(err, "invalid %s value %q", key, v)
	}
	return b, nil
}
