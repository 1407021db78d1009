package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/getmockd/igdmock/pkg/requestlog"
)

func TestMemoryRequestLogFIFOEviction(t *testing.T) {
	l := NewMemoryRequestLog(3)
	for i := 0; i < 5; i++ {
		l.Record(requestlog.Request{Action: fmt.Sprintf("A%d", i)})
	}

	if l.Count() != 3 {
		t.Fatalf("count = %d, want 3", l.Count())
	}
	got := l.List()
	for i, want := range []string{"A2", "A3", "A4"} {
		if got[i].Action != want {
			t.Errorf("entry[%d] = %s, want %s", i, got[i].Action, want)
		}
	}
}

func TestMemoryRequestLogFillsIDAndTimestamp(t *testing.T) {
	l := NewMemoryRequestLog(0)
	l.Record(requestlog.Request{Action: "GetStatusInfo"})

	e := l.List()[0]
	if e.ID == "" {
		t.Error("ID not filled")
	}
	if e.ReceivedAt.IsZero() {
		t.Error("ReceivedAt not filled")
	}

	// Caller-provided values survive.
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	l.Record(requestlog.Request{ID: "req-fixed", Action: "X", ReceivedAt: fixed})
	e = l.List()[1]
	if e.ID != "req-fixed" || !e.ReceivedAt.Equal(fixed) {
		t.Errorf("entry: %+v", e)
	}
}

func TestMemoryRequestLogClear(t *testing.T) {
	l := NewMemoryRequestLog(0)
	l.Record(requestlog.Request{Action: "A"})
	l.Clear()
	if l.Count() != 0 || len(l.List()) != 0 {
		t.Error("log not cleared")
	}
}

func TestMemoryRequestLogSubscribe(t *testing.T) {
	l := NewMemoryRequestLog(0)
	ch, unsubscribe := l.Subscribe()

	l.Record(requestlog.Request{Action: "AddPortMapping"})

	select {
	case got := <-ch:
		if got.Action != "AddPortMapping" {
			t.Errorf("delivered: %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("no delivery")
	}

	unsubscribe()
	// After unsubscribe the channel is closed and records no longer
	// reach it.
	l.Record(requestlog.Request{Action: "late"})
	if got, open := <-ch; open {
		t.Errorf("channel still open, got %+v", got)
	}
}

func TestMemoryRequestLogSlowSubscriberDrops(t *testing.T) {
	l := NewMemoryRequestLog(0)
	ch, unsubscribe := l.Subscribe()
	defer unsubscribe()

	// Overflow the buffer; Record must never block.
	for i := 0; i < 150; i++ {
		l.Record(requestlog.Request{Action: "A"})
	}
	if l.Count() != 150 {
		t.Errorf("count = %d", l.Count())
	}
	if len(ch) != cap(ch) {
		t.Errorf("subscriber buffer = %d, want full at %d", len(ch), cap(ch))
	}
}

func TestMemoryDiscoveryLogFIFOEviction(t *testing.T) {
	l := NewMemoryDiscoveryLog(2)
	for i := 0; i < 4; i++ {
		l.Record(requestlog.Discovery{Source: fmt.Sprintf("127.0.0.1:%d", 5000+i)})
	}
	got := l.List()
	if len(got) != 2 || got[0].Source != "127.0.0.1:5002" || got[1].Source != "127.0.0.1:5003" {
		t.Errorf("entries: %+v", got)
	}
}

func TestMemoryDiscoveryLogSubscribe(t *testing.T) {
	l := NewMemoryDiscoveryLog(0)
	ch, unsubscribe := l.Subscribe()
	defer unsubscribe()

	l.Record(requestlog.Discovery{SearchTarget: "ssdp:all", MaxWait: 2})

	select {
	case got := <-ch:
		if got.SearchTarget != "ssdp:all" || got.ID == "" {
			t.Errorf("delivered: %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("no delivery")
	}
}
