package gdlint

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/phayes/freeport"
)

func NewTestServer(dir string) (*Server, *Client, error) {
	port := freeport.GetPort()

	server := NewServer(dir+"/verdicts.data", "localhost", port)
	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	url := fmt.Sprintf("ws://localhost:%d/ws", port)
	client, err := dialWithRetry(url)
	if err != nil {
		return nil, nil, err
	}

	return server, client, nil
}

// dialWithRetry gives the listener goroutine a moment to bind the port.
func dialWithRetry(url string) (*Client, error) {
	var client *Client
	var err error
	for i := 0; i < 50; i++ {
		client, err = NewClient(url)
		if err == nil {
			return client, nil
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil, err
}

// each case sends one rulesheet and checks the resulting verdict
type validationTestCase struct {
	rulesheet string

	valid bool
	error string
}

type testServerRef struct {
	server *Server
	client *Client
}

func (tsr *testServerRef) Close() {
	tsr.server.Close()
	tsr.client.Close()
}

// runValidationScript spins up a test server and validates rulesheets on it,
// checking each verdict.
func runValidationScript(t *testing.T, cases []validationTestCase) *testServerRef {
	server, client, err := NewTestServer(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	for idx, testCase := range cases {
		verdict, err := client.Validate(testCase.rulesheet)
		if err != nil {
			t.Fatalf("case %d: %v", idx, err)
		}
		if verdict.Valid != testCase.valid {
			t.Fatalf(
				"case %d: expected valid=%v; got valid=%v (error: %q)",
				idx, testCase.valid, verdict.Valid, verdict.Error,
			)
		}
		if verdict.Error != testCase.error {
			t.Fatalf(`case %d: expected error %q; got %q`, idx, testCase.error, verdict.Error)
		}
	}

	return &testServerRef{
		server: server,
		client: client,
	}
}
