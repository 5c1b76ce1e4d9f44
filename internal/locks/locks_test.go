package locks_test

import (
	"testing"

	"github.com/davvil/pdfpc/internal/locks"
)

func TestInitIsIdempotent(t *testing.T) {
	locks.Init()
	first, err := locks.Get(locks.RenderLock)
	if err != nil {
		t.Fatalf("Get after Init: %v", err)
	}

	// A second Init must not replace the existing set.
	locks.Init("other")
	if _, err := locks.Get("other"); err == nil {
		t.Fatal("re-Init should not register new locks")
	}
	second, err := locks.Get(locks.RenderLock)
	if err != nil {
		t.Fatalf("Get after re-Init: %v", err)
	}
	if first != second {
		t.Fatal("lock identity changed across Init calls")
	}
	if !locks.Initialized() {
		t.Fatal("Initialized should report true")
	}
}

func TestGetUnknownLock(t *testing.T) {
	locks.Init()
	if _, err := locks.Get("no-such-lock"); err == nil {
		t.Fatal("expected error for unknown lock name")
	}
	if _, err := locks.Get(locks.CompressLock); err != nil {
		t.Fatalf("compress lock should exist: %v", err)
	}
}
