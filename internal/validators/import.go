// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"

	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/utils"
	"github.com/MKhiriev/go-finance-keeper/models"
)

// RecordStatus tags a [RecordResult].
type RecordStatus int

const (
	RecordAccepted RecordStatus = iota
	RecordRejected
)

// RecordResult is the outcome for one entry of an import document.
type RecordResult struct {
	// Index is the zero-based position of the entry in the document.
	Index  int
	Status RecordStatus
	// Account is set when Status is RecordAccepted.
	Account models.Account
	// Err is the rejection reason when Status is RecordRejected.
	Err error
}

// Accepted reports whether the record may be applied.
func (r RecordResult) Accepted() bool {
	return r.Status == RecordAccepted
}

type idGenerator interface {
	Generate() string
}

type importSanitizer struct {
	ids idGenerator
}

// NewImportSanitizer returns the sanitizer used by backup import.
//
// Required: id, accountName, type, accountNumber, createdAt and updatedAt
// as non-empty strings and currentBalance as a finite number. Everything
// else is kept when it has the right kind and dropped silently otherwise:
// an unknown service fee frequency and a passwordEnc that is not a complete
// blob lose only that field. A type outside the known set is kept verbatim.
// A record repeating an earlier id is kept under a freshly generated id.
func NewImportSanitizer() ImportSanitizer {
	return &importSanitizer{ids: utils.NewUUIDGenerator()}
}

func (s *importSanitizer) Sanitize(ctx context.Context, doc any) ([]RecordResult, error) {
	records, err := importRecords(doc)
	if err != nil {
		return nil, err
	}

	results := make([]RecordResult, 0, len(records))
	firstSeen := make(map[string]int, len(records))

	for i, raw := range records {
		account, err := s.sanitizeRecord(raw)
		if err != nil {
			results = append(results, RecordResult{Index: i, Status: RecordRejected, Err: err})
			continue
		}

		if first, dup := firstSeen[account.ID]; dup {
			renamed := s.ids.Generate()
			logger.FromContext(ctx).Info().Str("func", "importSanitizer.Sanitize").
				Str("id", account.ID).Int("first", first).Int("index", i).Str("new_id", renamed).
				Msg("duplicate id in import, record kept under a new id")
			account.ID = renamed
		}
		firstSeen[account.ID] = i

		results = append(results, RecordResult{Index: i, Status: RecordAccepted, Account: account})
	}

	return results, nil
}

// importRecords unwraps a bare list or a version 1 wrapper.
func importRecords(doc any) ([]any, error) {
	switch value := doc.(type) {
	case []any:
		return value, nil
	case map[string]any:
		version, ok := asNumber(value["version"])
		if !ok || version != models.ExportFileVersion {
			return nil, ErrInvalidDocument
		}
		accounts, ok := value["accounts"].([]any)
		if !ok {
			return nil, ErrInvalidDocument
		}
		return accounts, nil
	default:
		return nil, ErrInvalidDocument
	}
}

func (s *importSanitizer) sanitizeRecord(raw any) (models.Account, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return models.Account{}, ErrNotAnObject
	}

	balance, ok := asNumber(obj["currentBalance"])
	if !ok {
		return models.Account{}, ErrInvalidBalance
	}

	a := models.Account{
		ID:                   stringField(obj, "id"),
		AccountName:          stringField(obj, "accountName"),
		Type:                 models.AccountType(stringField(obj, "type")),
		AccountNumber:        stringField(obj, "accountNumber"),
		CurrentBalance:       balance,
		CurrentCardNumber:    optionalString(obj, "currentCardNumber"),
		CreditLimit:          optionalNumber(obj, "creditLimit"),
		OpenDate:             optionalString(obj, "openDate"),
		InterestRateAPR:      optionalNumber(obj, "interestRateApr"),
		ServiceFeeAmount:     optionalNumber(obj, "serviceFeeAmount"),
		ActualLastMinPayment: optionalNumber(obj, "actualLastMinPayment"),
		LoginURL:             optionalString(obj, "loginUrl"),
		Username:             optionalString(obj, "username"),
		Notes:                optionalString(obj, "notes"),
		CreatedAt:            stringField(obj, "createdAt"),
		UpdatedAt:            stringField(obj, "updatedAt"),
	}

	if freq := models.ServiceFeeFrequency(stringField(obj, "serviceFeeFrequency")); freq.IsValid() {
		a.ServiceFeeFrequency = &freq
	}

	if blobObj, ok := obj["passwordEnc"].(map[string]any); ok {
		if blob := blobFromMap(blobObj); wellFormedBlob(blob) {
			a.PasswordEnc = &blob
		}
	}

	switch {
	case a.ID == "":
		return models.Account{}, ErrMissingID
	case a.AccountName == "":
		return models.Account{}, ErrMissingAccountName
	case a.Type == "":
		return models.Account{}, ErrInvalidAccountType
	case a.AccountNumber == "":
		return models.Account{}, ErrMissingAccountNumber
	case a.CreatedAt == "" || a.UpdatedAt == "":
		return models.Account{}, ErrMissingTimestamps
	}
	return a, nil
}

func blobFromMap(obj map[string]any) models.EncryptedBlob {
	b := models.EncryptedBlob{
		Alg:           stringField(obj, "alg"),
		KDF:           stringField(obj, "kdf"),
		SaltB64:       stringField(obj, "saltB64"),
		IVB64:         stringField(obj, "ivB64"),
		CipherTextB64: stringField(obj, "cipherTextB64"),
	}
	if n, ok := asNumber(obj["iterations"]); ok && n == math.Trunc(n) && n <= math.MaxInt32 {
		b.Iterations = int(n)
	}
	return b
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

func optionalString(obj map[string]any, key string) *string {
	s, ok := obj[key].(string)
	if !ok {
		return nil
	}
	return &s
}

func optionalNumber(obj map[string]any, key string) *float64 {
	n, ok := asNumber(obj[key])
	if !ok {
		return nil
	}
	return &n
}

// asNumber accepts the numeric kinds produced by encoding/json and
// gopkg.in/yaml.v3 when decoding into an empty interface.
func asNumber(v any) (float64, bool) {
	var n float64
	switch value := v.(type) {
	case float64:
		n = value
	case int:
		n = float64(value)
	case int64:
		n = float64(value)
	case uint64:
		n = float64(value)
	default:
		return 0, false
	}
	if !isFinite(n) {
		return 0, false
	}
	return n, true
}
