package reader

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
	"gopkg.in/validator.v2"

	"github.com/Jaskaranbir/account-balance/logger"
	"github.com/Jaskaranbir/account-balance/model"
)

// Reader loads account-records from JSON files.
// Use #NewReader to create new instance.
type Reader struct {
	log logger.Logger
}

// Cfg defines config for Reader.
type Cfg struct {
	Log logger.Logger `validate:"nonnil"`
}

// accountDoc mirrors model.Account with pointer-fields
// so that absent keys can be told apart from zero-values.
// Transactions stay raw and are checked one by one.
type accountDoc struct {
	ID           *string            `validate:"nonnil"`
	Transactions *[]json.RawMessage `validate:"nonnil"`
}

type txnDoc struct {
	ID     *string `validate:"nonnil"`
	Amount *int64  `validate:"nonnil"`
}

// NewReader validates Reader-Config
// and creates new Reader-instance.
func NewReader(cfg *Cfg) (*Reader, error) {
	err := validator.Validate(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "error validating config")
	}

	return &Reader{
		log: cfg.Log,
	}, nil
}

// Load reads the account-record at path.
// Returns *model.IOError if the file cannot be opened or read,
// and *model.ParseError if its content is not a valid account-record.
// The file is always closed before returning.
func (r *Reader) Load(path string) (*model.Account, error) {
	r.log.Debugf("[File: %s]: Opening account-file", path)
	file, err := os.Open(path)
	if err != nil {
		return nil, &model.IOError{Path: path, Err: err}
	}
	defer file.Close()

	data, err := ioutil.ReadAll(file)
	if err != nil {
		return nil, &model.IOError{Path: path, Err: err}
	}
	r.log.Tracef("[File: %s]: Read %d bytes", path, len(data))

	acc, err := r.parse(data)
	if err != nil {
		return nil, &model.ParseError{Path: path, Err: err}
	}
	r.log.Debugf(
		"[File: %s]: Loaded account %s with %d transactions",
		path, acc.ID, len(acc.Transactions),
	)
	return acc, nil
}

// Decode reads an account-record from rd.
// Errors follow the same kinds as #Load, without a path.
func (r *Reader) Decode(rd io.Reader) (*model.Account, error) {
	if rd == nil {
		return nil, errors.New("reader is nil")
	}
	data, err := ioutil.ReadAll(rd)
	if err != nil {
		return nil, &model.IOError{Err: err}
	}

	acc, err := r.parse(data)
	if err != nil {
		return nil, &model.ParseError{Err: err}
	}
	return acc, nil
}

func (r *Reader) parse(data []byte) (*model.Account, error) {
	if !utf8.Valid(data) {
		return nil, errors.New("account-record is not valid UTF-8")
	}

	fields, err := objectFields(data)
	if err != nil {
		return nil, errors.Wrap(err, "error decoding account-record")
	}
	doc := accountDoc{}
	err = unmarshalField(fields, "id", &doc.ID)
	if err != nil {
		return nil, err
	}
	err = unmarshalField(fields, "transactions", &doc.Transactions)
	if err != nil {
		return nil, err
	}
	err = validator.Validate(doc)
	if err != nil {
		return nil, errors.Wrap(err, "invalid account-record")
	}

	acc := &model.Account{
		ID:           *doc.ID,
		Transactions: make([]model.Transaction, 0, len(*doc.Transactions)),
	}
	for i, rawTxn := range *doc.Transactions {
		txn, err := parseTxn(rawTxn)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid transaction at index %d", i)
		}
		acc.Transactions = append(acc.Transactions, txn)
	}
	return acc, nil
}

func parseTxn(data json.RawMessage) (model.Transaction, error) {
	fields, err := objectFields(data)
	if err != nil {
		return model.Transaction{}, err
	}
	doc := txnDoc{}
	err = unmarshalField(fields, "id", &doc.ID)
	if err != nil {
		return model.Transaction{}, err
	}
	err = unmarshalField(fields, "amount", &doc.Amount)
	if err != nil {
		return model.Transaction{}, err
	}
	err = validator.Validate(doc)
	if err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		ID:     *doc.ID,
		Amount: *doc.Amount,
	}, nil
}

// objectFields splits a JSON-object into its raw field-values.
// Keys are matched exactly, and repeated keys are rejected.
// Only whitespace may follow the object.
func objectFields(data []byte) (map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(err, "error reading object")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.Errorf("expected object, found %v", tok)
	}

	fields := make(map[string]json.RawMessage)
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, "error reading field-name")
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.Errorf("expected field-name, found %v", tok)
		}
		if _, found := fields[key]; found {
			return nil, errors.Errorf("duplicate field %q", key)
		}

		value := json.RawMessage{}
		err = dec.Decode(&value)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading field %q", key)
		}
		fields[key] = value
	}
	// Closing brace
	_, err = dec.Token()
	if err != nil {
		return nil, errors.Wrap(err, "error reading object")
	}

	_, err = dec.Token()
	if err != io.EOF {
		return nil, errors.New("unexpected data after object")
	}
	return fields, nil
}

// unmarshalField decodes fields[key] into target.
// Absent keys and null values leave target nil.
func unmarshalField(fields map[string]json.RawMessage, key string, target interface{}) error {
	raw, found := fields[key]
	if !found {
		return nil
	}
	err := json.Unmarshal(raw, target)
	return errors.Wrapf(err, "error decoding field %q", key)
}
