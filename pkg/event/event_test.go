package event_test

import (
	"testing"

	"github.com/ovenfresh/cookieshop/pkg/event"
)

func TestFireReachesAllListeners(t *testing.T) {
	event.Flush()
	t.Cleanup(event.Flush)

	var got []interface{}
	event.Listen("thing.happened", func(payload interface{}) {
		got = append(got, payload)
	})
	event.Listen("thing.happened", func(payload interface{}) {
		got = append(got, payload)
	})

	event.Fire("thing.happened", 7)

	if len(got) != 2 {
		t.Fatalf("listeners called %d times, want 2", len(got))
	}
	if got[0] != 7 || got[1] != 7 {
		t.Errorf("payloads = %v", got)
	}
}

func TestFireUnknownEvent(t *testing.T) {
	event.Flush()
	// Must not panic with no listeners registered.
	event.Fire("nobody.listens", nil)
}
