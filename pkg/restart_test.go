package gdlint

import (
	"testing"
)

// TestRestart tests that cached verdicts are reloaded when
// the process restarts.
func TestRestart(t *testing.T) {
	dir := t.TempDir()

	// Validate, remember the verdict, shutdown.
	server, client, err := NewTestServer(dir)
	if err != nil {
		t.Fatal(err)
	}

	verdict, err2 := client.Validate(validGame)
	if err2 != nil {
		t.Fatal(err2)
	}

	server.Close()
	client.Close()

	// Start 'er back up again and see if our verdict is still there.
	server2, client2, err3 := NewTestServer(dir)
	if err3 != nil {
		t.Fatalf("error restarting: %v", err3)
	}
	defer server2.Close()
	defer client2.Close()

	verdict2, err4 := client2.Validate(validGame)
	if err4 != nil {
		t.Fatal(err4)
	}
	if verdict2.ID != verdict.ID {
		t.Fatalf("expected verdict %s to survive the restart; got %s", verdict.ID, verdict2.ID)
	}
}
