package ipv4

import (
	"errors"
	"net/netip"
	"testing"
)

func mustAddr(t *testing.T, s string) netip.Addr {
	t.Helper()
	addr, err := ParseAddress(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return addr
}

func TestCompareIsNumericNotLexicographic(t *testing.T) {
	a := mustAddr(t, "10.0.0.1")
	b := mustAddr(t, "9.255.255.255")

	// "10..." sorts before "9..." as a string; numerically it is larger.
	if Compare(a, b) != 1 {
		t.Fatalf("expected 10.0.0.1 > 9.255.255.255, got %d", Compare(a, b))
	}
	if Compare(b, a) != -1 {
		t.Fatalf("expected 9.255.255.255 < 10.0.0.1, got %d", Compare(b, a))
	}
	if Compare(a, a) != 0 {
		t.Fatalf("expected equality, got %d", Compare(a, a))
	}
}

func TestNextIsMonotonic(t *testing.T) {
	for _, s := range []string{"0.0.0.0", "10.0.0.255", "192.167.255.255"} {
		addr := mustAddr(t, s)
		next, err := Next(addr)
		if err != nil {
			t.Fatalf("next of %s: %v", addr, err)
		}
		if Compare(addr, next) >= 0 {
			t.Fatalf("expected %s < %s", addr, next)
		}
	}
}

func TestNextCrossesOctetBoundary(t *testing.T) {
	next, err := Next(mustAddr(t, "10.0.0.255"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if next.String() != "10.0.1.0" {
		t.Fatalf("expected 10.0.1.0, got %s", next)
	}
}

func TestNextFailsAtTopBoundary(t *testing.T) {
	if _, err := Next(mustAddr(t, "255.255.255.255")); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestPreviousFailsAtBottomBoundary(t *testing.T) {
	if _, err := Previous(mustAddr(t, "0.0.0.0")); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestPrevious(t *testing.T) {
	prev, err := Previous(mustAddr(t, "10.0.1.0"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if prev.String() != "10.0.0.255" {
		t.Fatalf("expected 10.0.0.255, got %s", prev)
	}
}

func TestRangeEnumeratesInclusive(t *testing.T) {
	r, err := NewRange(mustAddr(t, "192.168.1.1"), mustAddr(t, "192.168.1.3"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if r.Len() != 3 {
		t.Fatalf("expected length 3, got %d", r.Len())
	}

	var got []string
	for a := range r.Addresses() {
		got = append(got, a.String())
	}
	want := []string{"192.168.1.1", "192.168.1.2", "192.168.1.3"}
	if len(got) != len(want) {
		t.Fatalf("expected %d addresses, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestRangeOfSingleAddress(t *testing.T) {
	addr := mustAddr(t, "10.0.0.5")
	r, err := NewRange(addr, addr)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("expected length 1, got %d", r.Len())
	}
}

func TestRangeRejectsReversedBounds(t *testing.T) {
	_, err := NewRange(mustAddr(t, "192.168.1.3"), mustAddr(t, "192.168.1.1"))
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestRangeIsLazy(t *testing.T) {
	// A /8 worth of addresses; consuming only a handful must terminate
	// without walking the rest.
	r, err := NewRange(mustAddr(t, "10.0.0.0"), mustAddr(t, "10.255.255.255"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	count := 0
	for range r.Addresses() {
		count++
		if count == 5 {
			break
		}
	}
	if count != 5 {
		t.Fatalf("expected 5 addresses, got %d", count)
	}
}

func TestRangeIsRestartable(t *testing.T) {
	r, err := NewRange(mustAddr(t, "10.0.0.1"), mustAddr(t, "10.0.0.3"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	first := make([]netip.Addr, 0, 3)
	for a := range r.Addresses() {
		first = append(first, a)
	}
	second := make([]netip.Addr, 0, 3)
	for a := range r.Addresses() {
		second = append(second, a)
	}

	if len(first) != len(second) {
		t.Fatalf("iterations differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("position %d differs: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestRangeCoversFullAddressSpaceBounds(t *testing.T) {
	r, err := NewRange(mustAddr(t, "0.0.0.0"), mustAddr(t, "255.255.255.255"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if r.Len() != 1<<32 {
		t.Fatalf("expected 2^32 addresses, got %d", r.Len())
	}
}

func TestClassificationRFC1918(t *testing.T) {
	private := []string{"10.0.0.1", "10.255.255.255", "172.16.0.1", "172.31.255.254", "192.168.0.1", "192.168.255.255"}
	public := []string{"9.255.255.255", "11.0.0.1", "172.15.255.255", "172.32.0.0", "192.167.255.255", "192.169.0.0", "8.8.8.8"}

	for _, s := range private {
		if !IsPrivate(mustAddr(t, s)) {
			t.Fatalf("expected %s private", s)
		}
	}
	for _, s := range public {
		if !IsPublic(mustAddr(t, s)) {
			t.Fatalf("expected %s public", s)
		}
	}
}

func TestClassificationIsMutuallyExclusive(t *testing.T) {
	for _, s := range []string{"10.0.0.1", "8.8.8.8", "192.168.1.1", "172.16.0.1", "0.0.0.0", "255.255.255.255"} {
		addr := mustAddr(t, s)
		if IsPrivate(addr) == IsPublic(addr) {
			t.Fatalf("%s classified as both or neither", addr)
		}
	}
}

func TestLoopbackLinkLocalMulticastClassifyAsPublic(t *testing.T) {
	// Classification is exactly RFC 1918; everything else, including
	// loopback, link-local and multicast, counts as public.
	for _, s := range []string{"127.0.0.1", "169.254.1.1", "224.0.0.1"} {
		if !IsPublic(mustAddr(t, s)) {
			t.Fatalf("expected %s public", s)
		}
	}
}
