package gdlint

import (
	"context"

	"github.com/gorilla/websocket"
	"github.com/vilterp/gdlint/pkg/parse"
	"github.com/vilterp/gdlint/pkg/validator"
)

// Linter validates rulesheets on behalf of websocket connections,
// memoizing verdicts in an on-disk cache.
type Linter struct {
	cache            *verdictCache
	connections      map[connectionID]*connection
	nextConnectionID int

	ctx     context.Context
	metrics *metrics
}

func NewLinter(dataFile string) (*Linter, error) {
	cache, err := openVerdictCache(dataFile)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()

	linter := &Linter{
		cache:            cache,
		connections:      make(map[connectionID]*connection),
		nextConnectionID: 0,
		ctx:              ctx,
	}

	linter.metrics = newMetrics(linter)

	return linter, nil
}

// addConnection connects a websocket to the linter, s.t. the linter
// will serve validation requests arriving on the connection.
func (l *Linter) addConnection(wsConn *websocket.Conn) {
	conn := newConnection(wsConn, l, l.nextConnectionID)
	l.nextConnectionID++
	l.connections[conn.id] = conn
	conn.handleRequests()
}

func (l *Linter) removeConn(conn *connection) {
	delete(l.connections, conn.id)
}

func (l *Linter) Close() error {
	return l.cache.close()
}

// validateRulesheet runs the full static analysis on one rulesheet and
// folds the outcome into a Verdict. Parse failures and validation
// failures both yield an invalid verdict rather than an error; only the
// machinery around the check can fail.
func validateRulesheet(rulesheet string) *Verdict {
	if err := parse.CheckParens(rulesheet); err != nil {
		parseErr := &parseError{error: err}
		return &Verdict{Valid: false, Error: parseErr.Error()}
	}
	description, err := parse.Parse(rulesheet)
	if err != nil {
		parseErr := &parseError{error: err}
		return &Verdict{Valid: false, Error: parseErr.Error()}
	}
	warnings, err := validator.Validate(description)
	if err != nil {
		validationErr := &validationError{error: err}
		return &Verdict{Valid: false, Error: validationErr.Error()}
	}
	return &Verdict{Valid: true, Warnings: warnings}
}
