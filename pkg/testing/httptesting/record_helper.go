package httptesting

import (
	"net/http"
	"os"
	"testing"
)

// AlwaysRecord forces RunHttpTestWithRecorder into recording mode, as TEST_HTTP_RECORD=1 does.
var AlwaysRecord = false

// RunHttpTestWithRecorder replays recordFile through client, or records the live exchanges
// into it when recording is enabled. The returned func saves the recording and must be
// deferred by the caller.
func RunHttpTestWithRecorder(t *testing.T, client *http.Client, recordFile string) (bool, func()) {
	if os.Getenv("TEST_HTTP_RECORD") == "1" || AlwaysRecord {
		recorder := NewRecorder(http.DefaultTransport)
		client.Transport = recorder
		return true, func() {
			if err := recorder.Save(recordFile); err != nil {
				t.Errorf("failed to save recorded requests: %v", err)
			}
		}
	}

	recorder := NewRecorder(nil)
	if err := recorder.Load(recordFile); err != nil {
		t.Fatalf("failed to load recorded requests: %v", err)
	}

	mockTransport := &MockTransport{}
	if err := mockTransport.LoadFromRecorder(recorder); err != nil {
		t.Fatalf("failed to load recordings: %v", err)
	}

	client.Transport = mockTransport
	return false, func() {}
}
