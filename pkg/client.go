package gdlint

// maybe this should be in a different package idk

import (
	"errors"
	"log"

	"github.com/gorilla/websocket"
)

type Client struct {
	WebSocketConn    *websocket.Conn
	URL              string
	NextRequestID    int
	RequestsToSend   chan *ValidationRequest
	IncomingMessages chan *RequestMessage
	Requests         map[int]*ClientRequest
	ServerClosed     chan struct{}
}

type ValidationRequest struct {
	Rulesheet  string
	ResultChan chan *ClientRequest
}

func NewClient(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	clientConn := &Client{
		NextRequestID:    0,
		WebSocketConn:    conn,
		URL:              url,
		RequestsToSend:   make(chan *ValidationRequest),
		IncomingMessages: make(chan *RequestMessage),
		Requests:         map[int]*ClientRequest{},
		ServerClosed:     make(chan struct{}),
	}
	go clientConn.handleRequests()
	go clientConn.handleIncoming()
	return clientConn, nil
}

func (conn *Client) Close() error {
	return conn.WebSocketConn.Close()
	// idk if it should also do something to the in-flight requests
}

func (conn *Client) handleRequests() {
	for {
		select {
		case request := <-conn.RequestsToSend:
			clientReq := &ClientRequest{
				Conn:      conn,
				RequestID: conn.NextRequestID,
				Rulesheet: request.Rulesheet,
				Replies:   make(chan *MessageToClient),
			}
			conn.NextRequestID++
			conn.Requests[clientReq.RequestID] = clientReq
			request.ResultChan <- clientReq
			conn.WebSocketConn.WriteMessage(websocket.TextMessage, []byte(request.Rulesheet))

		case incomingMsg := <-conn.IncomingMessages:
			clientReq := conn.Requests[incomingMsg.RequestID]
			clientReq.Replies <- incomingMsg.Message
		}
	}
}

func (conn *Client) handleIncoming() {
	defer conn.WebSocketConn.Close()
	for {
		parsedMessage := &RequestMessage{}
		err := conn.WebSocketConn.ReadJSON(&parsedMessage)
		if err != nil {
			log.Println("connection closed:", err)
			close(conn.ServerClosed)
			return
		}
		conn.IncomingMessages <- parsedMessage
	}
}

type ClientRequest struct {
	Conn      *Client
	RequestID int
	Rulesheet string
	Replies   chan *MessageToClient
}

// Send submits a rulesheet for validation without waiting for the verdict.
func (conn *Client) Send(rulesheet string) *ClientRequest {
	resultChan := make(chan *ClientRequest)
	conn.RequestsToSend <- &ValidationRequest{
		ResultChan: resultChan,
		Rulesheet:  rulesheet,
	}
	return <-resultChan
}

// Validate submits a rulesheet and blocks until the server replies.
func (conn *Client) Validate(rulesheet string) (*Verdict, error) {
	request := conn.Send(rulesheet)
	reply := <-request.Replies
	if reply.ErrorMessage != nil {
		return nil, errors.New(*reply.ErrorMessage)
	} else if reply.Verdict != nil {
		return reply.Verdict, nil
	}
	return nil, errors.New("validation result neither error nor verdict")
}
