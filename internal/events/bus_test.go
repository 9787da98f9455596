package events

import (
	"sync"
	"testing"
	"time"
)

func TestPublishReachesSubscriber(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	sub := bus.Subscribe(EventSitePublished)
	defer bus.Unsubscribe(EventSitePublished, sub)

	bus.Publish(EventSitePublished, Payload{"slug": "acme"})

	select {
	case p := <-sub:
		if p["slug"] != "acme" {
			t.Fatalf("payload = %v", p)
		}
	case <-time.After(time.Second):
		t.Fatalf("subscriber never received the event")
	}
}

func TestPublishDropsWhenSubscriberIsFull(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	sub := bus.Subscribe(EventVisitRecorded)
	defer bus.Unsubscribe(EventVisitRecorded, sub)

	// Fill the buffer and keep publishing; the publisher must not block.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < cap(sub)*3; i++ {
			bus.Publish(EventVisitRecorded, Payload{"n": i})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("publish blocked on a full subscriber")
	}
}

func TestUnsubscribeDuringPublishDoesNotPanic(t *testing.T) {
	t.Parallel()

	bus := NewBus()

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				bus.Publish(EventSiteDeleted, Payload{"slug": "acme"})
			}
		}
	}()

	for i := 0; i < 200; i++ {
		sub := bus.Subscribe(EventSiteDeleted)
		bus.Unsubscribe(EventSiteDeleted, sub)
	}

	close(stop)
	wg.Wait()
}
