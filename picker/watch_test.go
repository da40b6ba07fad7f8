package picker

import (
	"context"
	"errors"
	"testing"
	"time"
)

func handleOf(s string) *FileHandle {
	h := newFileHandle([]byte(s))
	return &h
}

func shortContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	t.Cleanup(cancel)
	return ctx
}

func TestWatchSkipsSeed(t *testing.T) {
	w := newWatch()
	rx := w.subscribe()
	_, _, err := rx.next(shortContext(t))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("next on a fresh watch returned err=%v, want deadline exceeded", err)
	}
}

func TestWatchDeliversLatestValue(t *testing.T) {
	w := newWatch()
	rx := w.subscribe()

	w.send(handleOf("a"))
	h, ok, err := rx.next(context.Background())
	if err != nil || !ok || string(h.Bytes()) != "a" {
		t.Fatalf("next = %q, %v, %v; want a", h.Bytes(), ok, err)
	}

	// Two sends before a read coalesce into the newest.
	w.send(handleOf("b"))
	w.send(handleOf("c"))
	h, ok, err = rx.next(context.Background())
	if err != nil || !ok || string(h.Bytes()) != "c" {
		t.Fatalf("next = %q, %v, %v; want c", h.Bytes(), ok, err)
	}

	if _, _, err := rx.next(shortContext(t)); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("next after draining returned err=%v, want deadline exceeded", err)
	}
}

func TestWatchWakesWaiter(t *testing.T) {
	w := newWatch()
	rx := w.subscribe()

	got := make(chan string, 1)
	go func() {
		h, ok, err := rx.next(context.Background())
		if err != nil || !ok {
			got <- ""
			return
		}
		got <- string(h.Bytes())
	}()

	time.Sleep(10 * time.Millisecond)
	w.send(handleOf("wake"))

	select {
	case v := <-got:
		if v != "wake" {
			t.Fatalf("waiter got %q, want wake", v)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for waiter")
	}
}

func TestWatchCloseAfterUnseenValue(t *testing.T) {
	w := newWatch()
	rx := w.subscribe()

	w.send(handleOf("last"))
	w.close()
	w.send(handleOf("ignored"))

	h, ok, err := rx.next(context.Background())
	if err != nil || !ok || string(h.Bytes()) != "last" {
		t.Fatalf("next = %q, %v, %v; want last", h.Bytes(), ok, err)
	}
	_, ok, err = rx.next(context.Background())
	if err != nil || ok {
		t.Fatalf("next after close = %v, %v; want end of stream", ok, err)
	}
}

func TestWatchCloseWakesWaiter(t *testing.T) {
	w := newWatch()
	rx := w.subscribe()

	done := make(chan bool, 1)
	go func() {
		_, ok, _ := rx.next(context.Background())
		done <- ok
	}()

	time.Sleep(10 * time.Millisecond)
	w.close()
	w.close()

	select {
	case ok := <-done:
		if ok {
			t.Fatal("closed watch yielded a value")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for close")
	}
}
