package notify

import (
	"testing"
	"time"
)

func TestBanner_StartsIdle(t *testing.T) {
	b := NewBanner(0)
	if b.State() != Idle {
		t.Fatalf("state=%v, want idle", b.State())
	}
	if b.Delay() != DefaultDelay {
		t.Fatalf("delay=%v, want %v", b.Delay(), DefaultDelay)
	}
	if _, ok := b.Current(); ok {
		t.Fatalf("expected no current notification")
	}
}

func TestBanner_ExpiresAfterOwnTimer(t *testing.T) {
	b := NewBanner(time.Millisecond)
	cmd := b.Show(NewInfo("hello"))
	if cmd == nil {
		t.Fatalf("expected expiry command")
	}
	n, ok := b.Current()
	if !ok || n.Message != "hello" || n.Kind != Info {
		t.Fatalf("current=%+v ok=%v", n, ok)
	}

	msg := cmd()
	exp, isExpired := msg.(ExpiredMsg)
	if !isExpired {
		t.Fatalf("cmd produced %T, want ExpiredMsg", msg)
	}
	if exp.ID != 1 {
		t.Fatalf("id=%d, want 1", exp.ID)
	}
	if !b.Update(msg) {
		t.Fatalf("expected banner to change on its own expiry")
	}
	if b.State() != Idle {
		t.Fatalf("state=%v, want idle", b.State())
	}
}

func TestBanner_NewerNotificationSupersedesOlderTimer(t *testing.T) {
	b := NewBanner(time.Second)
	_ = b.Show(NewError("first"))
	_ = b.Show(NewSuccess("second"))

	// The first timer fires at 1000ms: the second notification must survive.
	if b.Update(ExpiredMsg{ID: 1}) {
		t.Fatalf("stale timer must not change the banner")
	}
	n, ok := b.Current()
	if !ok || n.Message != "second" {
		t.Fatalf("current=%+v ok=%v, want second visible", n, ok)
	}

	// The second timer clears it.
	if !b.Update(ExpiredMsg{ID: 2}) {
		t.Fatalf("expected the latest timer to clear the banner")
	}
	if _, ok := b.Current(); ok {
		t.Fatalf("expected banner cleared")
	}
}

func TestBanner_IgnoresExpiryWhileIdle(t *testing.T) {
	b := NewBanner(time.Second)
	if b.Update(ExpiredMsg{ID: 0}) {
		t.Fatalf("idle banner must ignore expiry")
	}
	if b.Update("not an expiry") {
		t.Fatalf("banner must ignore unrelated messages")
	}
}

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{Error: "error", Success: "success", Info: "info", Kind(9): "unknown"}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Fatalf("Kind(%d).String()=%q, want %q", int(k), got, want)
		}
	}
}
