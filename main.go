package main

import (
	"log"
	"os"

	"github.com/pkg/errors"

	globalcfg "github.com/Jaskaranbir/account-balance/config"
	"github.com/Jaskaranbir/account-balance/logger"

	"github.com/Jaskaranbir/account-balance/domain"
	"github.com/Jaskaranbir/account-balance/domain/account"
	"github.com/Jaskaranbir/account-balance/domain/reader"
	"github.com/Jaskaranbir/account-balance/domain/writer"
)

func main() {
	cfg, err := globalcfg.FromEnv()
	if err != nil {
		err = errors.Wrap(err, "error reading config")
		log.Fatalln(err)
	}

	policy := account.RejectNegative
	if cfg.AllowNegativeBalance {
		policy = account.AllowNegative
	}

	err = domain.Run(&domain.RunCfg{
		Log:         logger.NewStdLogger("runner"),
		AccountFile: cfg.AccountFile,

		ReaderCfg: &reader.Cfg{
			Log: logger.NewStdLogger("reader"),
		},
		CalculatorCfg: &account.CalculatorCfg{
			Log:    logger.NewStdLogger("account/Calculator"),
			Policy: policy,
		},
		WriterCfg: &writer.Cfg{
			Log:      logger.NewStdLogger("writer"),
			Writer:   os.Stdout,
			ListTxns: cfg.ReportTxns,
		},
	})
	if err != nil {
		log.Fatalln(err)
	}
}
