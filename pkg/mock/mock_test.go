package mock

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/getmockd/igdmock/pkg/igd"
	"github.com/getmockd/igdmock/pkg/matching"
	"github.com/getmockd/igdmock/pkg/responder"
)

func externalIPRequest() *igd.Request {
	return &igd.Request{
		ActionName:  "GetExternalIPAddress",
		ServiceType: igd.ServiceWANIPConnection,
	}
}

func TestNewDefaults(t *testing.T) {
	m := New(matching.Any(), responder.Success())

	if m.Priority() != 0 {
		t.Errorf("Priority() = %d, want 0", m.Priority())
	}
	if _, limited := m.MaxMatches(); limited {
		t.Error("new mock has a quota")
	}
	if m.Matched() != 0 {
		t.Errorf("Matched() = %d, want 0", m.Matched())
	}
	if !m.Eligible() {
		t.Error("new mock not eligible")
	}
	if m.Action() != igd.ActionAny {
		t.Errorf("Action() = %v, want wildcard", m.Action())
	}
}

func TestOptions(t *testing.T) {
	m := New(matching.ExternalIPAddress(), responder.Success(), WithPriority(10), WithMaxMatches(2))

	if m.Priority() != 10 {
		t.Errorf("Priority() = %d, want 10", m.Priority())
	}
	max, limited := m.MaxMatches()
	if !limited || max != 2 {
		t.Errorf("MaxMatches() = (%d, %v), want (2, true)", max, limited)
	}
}

func TestTryMatchDoesNotMutate(t *testing.T) {
	m := New(matching.ExternalIPAddress(), responder.Success(), WithMaxMatches(1))

	for i := 0; i < 5; i++ {
		if !m.TryMatch(externalIPRequest()) {
			t.Fatal("TryMatch rejected a matching request")
		}
	}
	if m.Matched() != 0 {
		t.Errorf("TryMatch advanced the counter to %d", m.Matched())
	}
}

func TestTryMatchRespectsMatcher(t *testing.T) {
	m := New(matching.StatusInfo(), responder.Success())
	if m.TryMatch(externalIPRequest()) {
		t.Error("TryMatch accepted a request of the wrong kind")
	}
}

func TestAnswerIncrements(t *testing.T) {
	m := New(matching.Any(), responder.Fault(igd.ErrCodeActionFailed, "ActionFailed"))

	resp, ok := m.Answer(externalIPRequest())
	if !ok {
		t.Fatal("Answer returned false without a quota")
	}
	if resp.Kind != igd.ResponseFault || resp.Code != 501 {
		t.Errorf("Answer response = %+v", resp)
	}
	if m.Matched() != 1 {
		t.Errorf("Matched() = %d, want 1", m.Matched())
	}
}

func TestQuotaExhaustion(t *testing.T) {
	m := New(matching.Any(), responder.Success(), WithMaxMatches(2))
	req := externalIPRequest()

	for i := 0; i < 2; i++ {
		if !m.TryMatch(req) {
			t.Fatalf("TryMatch false on answer %d", i+1)
		}
		if _, ok := m.Answer(req); !ok {
			t.Fatalf("Answer false on answer %d", i+1)
		}
	}

	if m.Eligible() {
		t.Error("mock still eligible after quota exhausted")
	}
	if m.TryMatch(req) {
		t.Error("TryMatch true after quota exhausted")
	}
	if _, ok := m.Answer(req); ok {
		t.Error("Answer true after quota exhausted")
	}
	if m.Matched() != 2 {
		t.Errorf("Matched() = %d, want 2", m.Matched())
	}
}

func TestQuotaHardCapUnderConcurrency(t *testing.T) {
	const quota = 5
	const callers = 64

	m := New(matching.Any(), responder.Success(), WithMaxMatches(quota))
	req := externalIPRequest()

	var answered atomic.Uint32
	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer done.Done()
			start.Wait()
			if m.TryMatch(req) {
				if _, ok := m.Answer(req); ok {
					answered.Add(1)
				}
			}
		}()
	}
	start.Done()
	done.Wait()

	if answered.Load() != quota {
		t.Errorf("answered %d dispatches, want exactly %d", answered.Load(), quota)
	}
	if m.Matched() != quota {
		t.Errorf("Matched() = %d, want %d", m.Matched(), quota)
	}
}

func TestUnlimitedConcurrentAnswers(t *testing.T) {
	const callers = 32

	m := New(matching.Any(), responder.Success())
	req := externalIPRequest()

	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			if _, ok := m.Answer(req); !ok {
				t.Error("Answer returned false without a quota")
			}
		}()
	}
	wg.Wait()

	if m.Matched() != callers {
		t.Errorf("Matched() = %d, want %d (lost updates)", m.Matched(), callers)
	}
}
