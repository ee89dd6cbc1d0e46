/*
Package blockingqueue provides a thread-safe FIFO where consumers block until
an element is available, built on a mutex and condition variable.

The queue is the handoff primitive for producer/consumer pipelines where
channel semantics are too coarse: elements can be inspected without removal
(Front, Back), the whole queue can be discarded atomically (Clear), and two
queues can be compared under both locks without deadlock (Equal, Compare).

Basic usage:

	q := blockingqueue.New[string]()

	go func() {
		q.Push("hello")
	}()

	msg := q.Pop() // blocks until the producer pushes

Unlike most container types there is no Len or IsEmpty: any size observed
would be stale by the time the caller acted on it, which invites
check-then-act races. Consumers should block in Pop rather than poll.
*/
package blockingqueue
