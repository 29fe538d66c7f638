package domain

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pkg/errors"

	"github.com/Jaskaranbir/account-balance/domain/account"
	"github.com/Jaskaranbir/account-balance/domain/reader"
	"github.com/Jaskaranbir/account-balance/domain/writer"
	"github.com/Jaskaranbir/account-balance/logger"
	"github.com/Jaskaranbir/account-balance/model"
)

var _ = Describe("Run", func() {
	var tmpDir string
	var out *bytes.Buffer

	var writeAccount = func(content string) string {
		path := filepath.Join(tmpDir, "account.json")
		err := ioutil.WriteFile(path, []byte(content), 0644)
		Expect(err).ToNot(HaveOccurred())
		return path
	}

	var runCfg = func(path string, policy account.BalancePolicy, listTxns bool) *RunCfg {
		return &RunCfg{
			Log:         logger.Nop(),
			AccountFile: path,

			ReaderCfg: &reader.Cfg{
				Log: logger.NewStdLogger("reader"),
			},
			CalculatorCfg: &account.CalculatorCfg{
				Log:    logger.NewStdLogger("account/Calculator"),
				Policy: policy,
			},
			WriterCfg: &writer.Cfg{
				Log:      logger.NewStdLogger("writer"),
				Writer:   out,
				ListTxns: listTxns,
			},
		}
	}

	BeforeEach(func() {
		var err error
		tmpDir, err = ioutil.TempDir("", "runner-test")
		Expect(err).ToNot(HaveOccurred())
		out = &bytes.Buffer{}
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	It("prints balance of account", func() {
		path := writeAccount(`{"id": "a1", "transactions": [
			{"id": "t1", "amount": 5000},
			{"id": "t2", "amount": -464}
		]}`)

		err := Run(runCfg(path, account.RejectNegative, false))
		Expect(err).ToNot(HaveOccurred())
		Expect(out.String()).To(Equal("Balance of account a1 is 4536\n"))
	})

	It("prints transactions before balance when enabled", func() {
		path := writeAccount(`{"id": "a1", "transactions": [
			{"id": "t1", "amount": 5000},
			{"id": "t2", "amount": -464}
		]}`)

		err := Run(runCfg(path, account.RejectNegative, true))
		Expect(err).ToNot(HaveOccurred())
		Expect(out.String()).To(Equal(
			"Spent 5000 credits on transaction t1\n" +
				"Spent -464 credits on transaction t2\n" +
				"Balance of account a1 is 4536\n",
		))
	})

	Context("negative balance", func() {
		var path string

		BeforeEach(func() {
			path = writeAccount(`{"id": "a1", "transactions": [
				{"id": "t1", "amount": -5000},
				{"id": "t2", "amount": -464}
			]}`)
		})

		It("fails without output when negative balances are rejected", func() {
			err := Run(runCfg(path, account.RejectNegative, true))
			Expect(model.Kind(err)).To(Equal(model.KindNegativeBalance))
			Expect(err.Error()).To(Equal("impossible balance: Negative balance of -5464 credits"))
			Expect(errors.Cause(err)).To(Equal(&model.NegativeBalanceError{Balance: -5464}))
			Expect(out.String()).To(BeEmpty())
		})

		It("prints negative balance when allowed", func() {
			err := Run(runCfg(path, account.AllowNegative, false))
			Expect(err).ToNot(HaveOccurred())
			Expect(out.String()).To(Equal("Balance of account a1 is -5464\n"))
		})
	})

	It("fails with I/O error for missing file", func() {
		err := Run(runCfg(filepath.Join(tmpDir, "missing.json"), account.RejectNegative, false))
		Expect(model.Kind(err)).To(Equal(model.KindIO))
		Expect(err.Error()).To(HavePrefix("error loading account: I/O error: "))
		Expect(out.String()).To(BeEmpty())
	})

	It("fails with parse error for malformed file", func() {
		path := writeAccount(`{"id": "a"}`)

		err := Run(runCfg(path, account.RejectNegative, false))
		Expect(model.Kind(err)).To(Equal(model.KindParse))
		Expect(out.String()).To(BeEmpty())
	})

	It("errors on invalid config", func() {
		cfg := runCfg("", account.RejectNegative, false)
		Expect(Run(cfg)).To(HaveOccurred())

		cfg = runCfg(writeAccount(`{"id": "a", "transactions": []}`), account.RejectNegative, false)
		cfg.WriterCfg = nil
		Expect(Run(cfg)).To(HaveOccurred())
	})
})
