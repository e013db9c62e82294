package eventemitter

import "sync"

// EventEmitter delivers messages of a single type to every subscribed
// callback. Each subscriber consumes its own queue on a dedicated
// goroutine, so a slow callback never blocks the emitter or the other
// subscribers.
type EventEmitter[T any] struct {
	mutex       sync.Mutex
	subscribers []*subscriber[T]
}

func (eventEmitter *EventEmitter[T]) Emit(message T) {
	eventEmitter.mutex.Lock()
	defer eventEmitter.mutex.Unlock()
	for _, subscriber := range eventEmitter.subscribers {
		subscriber.enqueue(message)
	}
}

func (eventEmitter *EventEmitter[T]) Subscribe(callback func(T)) {
	eventEmitter.mutex.Lock()
	defer eventEmitter.mutex.Unlock()
	eventEmitter.subscribers = append(eventEmitter.subscribers, newSubscriber(callback))
}

type subscriber[T any] struct {
	inputQueue chan T
	callback   func(T)
}

func newSubscriber[T any](callback func(T)) *subscriber[T] {
	instance := &subscriber[T]{
		inputQueue: make(chan T, 1),
		callback:   callback,
	}
	go func() {
		for message := range instance.inputQueue {
			instance.callback(message)
		}
	}()
	return instance
}

func (subscriber *subscriber[T]) enqueue(message T) {
	subscriber.inputQueue <- message
}
