package picker

import (
	"context"
	"testing"
)

func TestSingleUseTokenReclaimedOnFirstDelivery(t *testing.T) {
	r := newRegistry()
	tx, rx := newOneshot()
	token := r.register(singleUse, tx)

	r.deliver([]byte("first"), token)
	r.deliver([]byte("second"), token)
	r.deliver(nil, token)

	if r.live() != 0 {
		t.Fatalf("registry still holds %d slots", r.live())
	}
	v, open := <-rx
	if !open || v == nil || string(v.Bytes()) != "first" {
		t.Fatalf("first receive = %v, %v; want first", v, open)
	}
	if _, open := <-rx; open {
		t.Fatal("oneshot channel not closed after delivery")
	}
}

func TestSingleUseNullDelivery(t *testing.T) {
	r := newRegistry()
	tx, rx := newOneshot()
	r.deliver(nil, r.register(singleUse, tx))

	v, open := <-rx
	if !open || v != nil {
		t.Fatalf("receive = %v, %v; want an explicit empty result", v, open)
	}
}

func TestEmptyFileIsNotNull(t *testing.T) {
	r := newRegistry()
	tx, rx := newOneshot()
	r.deliver([]byte{}, r.register(singleUse, tx))

	v := <-rx
	if v == nil {
		t.Fatal("zero-length file was treated as no file")
	}
	if v.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", v.Len())
	}
}

func TestMultiUseTokenSurvivesDeliveries(t *testing.T) {
	r := newRegistry()
	w := newWatch()
	rx := w.subscribe()
	token := r.register(multiUse, w)

	for _, content := range []string{"one", "two"} {
		r.deliver([]byte(content), token)
		if r.live() != 1 {
			t.Fatalf("slot reclaimed after delivering %q", content)
		}
		h, ok, err := rx.next(context.Background())
		if err != nil || !ok || string(h.Bytes()) != content {
			t.Fatalf("next = %q, %v, %v; want %q", h.Bytes(), ok, err, content)
		}
	}

	r.deliver(nil, token)
	if r.live() != 0 {
		t.Fatal("null delivery did not reclaim the multi-use slot")
	}
	if _, ok, _ := rx.next(context.Background()); ok {
		t.Fatal("stream still open after null delivery")
	}
}

func TestReleaseMakesLateDeliveryANoOp(t *testing.T) {
	r := newRegistry()
	tx, rx := newOneshot()
	token := r.register(singleUse, tx)

	r.release(token)
	r.release(token)
	r.deliver([]byte("late"), token)

	if v, open := <-rx; open {
		t.Fatalf("released channel delivered %v", v)
	}
}

func TestTokensAreDistinct(t *testing.T) {
	r := newRegistry()
	a, _ := newOneshot()
	b, _ := newOneshot()
	if r.register(singleUse, a) == r.register(singleUse, b) {
		t.Fatal("two sessions got the same token")
	}
}
