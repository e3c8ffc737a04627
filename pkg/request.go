package gdlint

import (
	"context"
	"fmt"
	"time"

	clog "github.com/vilterp/gdlint/pkg/log"
)

// request is one rulesheet sent over a connection for validation,
// answered by exactly one verdict or error message.
type request struct {
	connection *connection
	rulesheet  string
	id         int // unique within containing connection

	context context.Context
}

func (req *request) Ctx() context.Context {
	return req.context
}

func newRequest(rulesheet string, ID int, conn *connection) *request {
	ctx := context.WithValue(conn.Ctx(), clog.RequestIDKey, ID)
	req := &request{
		connection: conn,
		rulesheet:  rulesheet,
		id:         ID,
		context:    ctx,
	}
	return req
}

func (req *request) handle() {
	verdict, err := req.validate()
	if err != nil {
		clog.Printf(req, err.Error())
		req.writeErrorMessage(err)
	} else {
		req.writeVerdict(verdict)
	}
	req.connection.removeRequest(req)
}

// validate consults the verdict cache before running the analysis.
// The returned error only covers cache failures; an invalid rulesheet
// is a verdict, not an error.
func (req *request) validate() (*Verdict, error) {
	linter := req.connection.linter

	cached, err := linter.cache.get(req.rulesheet)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		linter.metrics.cacheHits.Inc()
		return cached, nil
	}
	linter.metrics.cacheMisses.Inc()

	startTime := time.Now()
	verdict := validateRulesheet(req.rulesheet)
	endTime := time.Now()
	duration := endTime.Sub(startTime)
	linter.metrics.validateLatency.Observe(float64(duration.Nanoseconds()))

	if err := linter.cache.put(req.rulesheet, verdict); err != nil {
		return nil, err
	}
	return verdict, nil
}

type RequestMessage struct {
	RequestID int              `json:"request_id"`
	Message   *MessageToClient `json:"message"`
}

type MessageToClientType int

const (
	ErrorMessage MessageToClientType = iota
	VerdictMessage
)

func (m *MessageToClientType) String() string {
	switch *m {
	case ErrorMessage:
		return "error"
	case VerdictMessage:
		return "verdict"
	}
	panic(fmt.Errorf("unknown type %d", *m))
}

func (m *MessageToClientType) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *MessageToClientType) UnmarshalText(text []byte) error {
	textStr := string(text)
	switch textStr {
	case "error":
		*m = ErrorMessage
	case "verdict":
		*m = VerdictMessage
	}
	return nil
}

type MessageToClient struct {
	Type         MessageToClientType `json:"type"`
	ErrorMessage *string             `json:"error,omitempty"`
	Verdict      *Verdict            `json:"verdict,omitempty"`
}

func (req *request) writeErrorMessage(err error) {
	errStr := err.Error()
	req.writeMessage(&MessageToClient{
		Type:         ErrorMessage,
		ErrorMessage: &errStr,
	})
}

func (req *request) writeVerdict(verdict *Verdict) {
	req.writeMessage(&MessageToClient{
		Type:    VerdictMessage,
		Verdict: verdict,
	})
}

func (req *request) writeMessage(message *MessageToClient) {
	req.connection.messages <- &RequestMessage{
		RequestID: req.id,
		Message:   message,
	}
}
