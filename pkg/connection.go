package gdlint

import (
	"context"

	"github.com/gorilla/websocket"
	clog "github.com/vilterp/gdlint/pkg/log"
)

type connectionID int

type connection struct {
	clientConn    *websocket.Conn
	id            connectionID
	linter        *Linter
	requests      map[int]*request // keyed by request id
	nextRequestID int
	messages      chan *RequestMessage
	context       context.Context
}

func newConnection(wsConn *websocket.Conn, linter *Linter, ID int) *connection {
	ctx := context.WithValue(linter.ctx, clog.ConnIDKey, ID)
	conn := &connection{
		clientConn:    wsConn,
		id:            connectionID(ID),
		linter:        linter,
		requests:      make(map[int]*request),
		nextRequestID: 0,
		messages:      make(chan *RequestMessage),
		context:       ctx,
	}
	go conn.writeMessagesToSocket()
	return conn
}

func (conn *connection) Ctx() context.Context {
	return conn.context
}

func (conn *connection) writeMessagesToSocket() {
	for msg := range conn.messages {
		if err := conn.clientConn.WriteJSON(msg); err != nil {
			clog.Println(conn, "error writing msg to conn:", err)
		}
	}
}

func (conn *connection) handleRequests() {
	clog.Println(conn, "initiated from", conn.clientConn.RemoteAddr())
	for {
		_, message, readErr := conn.clientConn.ReadMessage()
		if readErr != nil {
			clog.Println(conn, "terminated:", readErr)
			conn.linter.removeConn(conn)
			return
		}
		rulesheet := string(message)
		conn.addRequest(rulesheet)
	}
}

func (conn *connection) addRequest(rulesheet string) {
	req := newRequest(rulesheet, conn.nextRequestID, conn)
	conn.nextRequestID++
	conn.requests[req.id] = req

	req.handle()
}

func (conn *connection) removeRequest(req *request) {
	delete(conn.requests, req.id)
}
