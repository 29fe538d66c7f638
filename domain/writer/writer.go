package writer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/validator.v2"

	"github.com/Jaskaranbir/account-balance/logger"
	"github.com/Jaskaranbir/account-balance/model"
)

// Writer prints account-reports to
// a buffered-writer.
// Use #NewWriter to create new instance.
type Writer struct {
	log        logger.Logger
	buffWriter *bufio.Writer
	listTxns   bool
}

// Cfg defines config for Writer.
type Cfg struct {
	Log    logger.Logger `validate:"nonnil"`
	Writer io.Writer     `validate:"nonnil"`

	// ListTxns prints a line for each
	// transaction before the balance-line.
	ListTxns bool
}

// NewWriter validates Writer-Config
// and creates new Writer-instance.
func NewWriter(cfg *Cfg) (*Writer, error) {
	err := validator.Validate(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "error validating config")
	}

	// Check if passed writer is bufio-writer,
	// else create bufio-writer
	buffWriter, castSuccess := cfg.Writer.(*bufio.Writer)
	if !castSuccess {
		buffWriter = bufio.NewWriter(cfg.Writer)
	}

	return &Writer{
		log:        cfg.Log,
		buffWriter: buffWriter,
		listTxns:   cfg.ListTxns,
	}, nil
}

// WriteReport writes the report for acc and flushes it.
func (w *Writer) WriteReport(acc *model.Account, balance int64) error {
	if acc == nil {
		return errors.New("account is nil")
	}
	logPrefix := fmt.Sprintf("[Account: %s]:", acc.ID)

	if w.listTxns {
		w.log.Tracef("%s Writing %d transaction-lines", logPrefix, len(acc.Transactions))
		for _, txn := range acc.Transactions {
			_, err := fmt.Fprintf(w.buffWriter, "Spent %d credits on transaction %s\n", txn.Amount, txn.ID)
			if err != nil {
				return errors.Wrapf(err, "error writing transaction %s", txn.ID)
			}
		}
	}

	w.log.Tracef("%s Writing balance-line", logPrefix)
	_, err := fmt.Fprintf(w.buffWriter, "Balance of account %s is %d\n", acc.ID, balance)
	if err != nil {
		return errors.Wrap(err, "error writing balance")
	}
	err = w.buffWriter.Flush()
	if err != nil {
		return errors.Wrap(err, "error flushing bufferred-writer")
	}
	w.log.Tracef("%s Wrote report", logPrefix)

	return nil
}
