package internal

import "sync"

// MsgQueue holds messages until the next commit of a component.
type MsgQueue struct {
	mu   sync.Mutex
	msgs []Msg
}

func NewMsgQueue() *MsgQueue {
	return &MsgQueue{
		msgs: make([]Msg, 0),
	}
}

func (q *MsgQueue) Enqueue(msg Msg) {
	q.mu.Lock()
	q.msgs = append(q.msgs, msg)
	q.mu.Unlock()
}

// Drain empties the queue and returns its messages in insertion order.
func (q *MsgQueue) Drain() []Msg {
	q.mu.Lock()
	defer q.mu.Unlock()

	msgs := q.msgs
	q.msgs = make([]Msg, 0)
	return msgs
}

func (q *MsgQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.msgs)
}
