package gdlint

import (
	"crypto/sha256"
	"encoding/json"

	"github.com/boltdb/bolt"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vilterp/gdlint/pkg/validator"
)

// Verdict is the outcome of validating one rulesheet: either valid
// (possibly with warnings) or invalid with the first fatal error.
type Verdict struct {
	ID       string              `json:"id"`
	Valid    bool                `json:"valid"`
	Error    string              `json:"error,omitempty"`
	Warnings []validator.Warning `json:"warnings,omitempty"`
}

var verdictsBucket = []byte("verdicts")

// verdictCache persists verdicts keyed by a hash of the rulesheet text,
// so repeated validations of the same game don't redo the analysis.
type verdictCache struct {
	boltDB *bolt.DB
}

func openVerdictCache(dataFile string) (*verdictCache, error) {
	boltDB, err := bolt.Open(dataFile, 0600, nil)
	if err != nil {
		return nil, err
	}
	err = boltDB.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(verdictsBucket)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating verdicts bucket")
	}
	return &verdictCache{boltDB: boltDB}, nil
}

func (c *verdictCache) close() error {
	return c.boltDB.Close()
}

func rulesheetKey(rulesheet string) []byte {
	sum := sha256.Sum256([]byte(rulesheet))
	return sum[:]
}

// get returns the cached verdict for a rulesheet, or nil on a miss.
func (c *verdictCache) get(rulesheet string) (*Verdict, error) {
	var verdict *Verdict
	err := c.boltDB.View(func(tx *bolt.Tx) error {
		verdictBytes := tx.Bucket(verdictsBucket).Get(rulesheetKey(rulesheet))
		if verdictBytes == nil {
			return nil
		}
		verdict = &Verdict{}
		return json.Unmarshal(verdictBytes, verdict)
	})
	if err != nil {
		return nil, errors.Wrap(err, "reading verdict")
	}
	return verdict, nil
}

// put stores a verdict, assigning it an id.
func (c *verdictCache) put(rulesheet string, verdict *Verdict) error {
	verdict.ID = uuid.New().String()
	verdictBytes, err := json.Marshal(verdict)
	if err != nil {
		return err
	}
	err = c.boltDB.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(verdictsBucket).Put(rulesheetKey(rulesheet), verdictBytes)
	})
	return errors.Wrap(err, "storing verdict")
}
