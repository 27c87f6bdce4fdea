package Queues

import (
	"errors"
	"math/rand"
	"testing"
)

func TestArrayQueue_Order(t *testing.T) {
	q := MakeArrayQueue[int](0)
	if _, e := q.Pop(); e == nil {
		t.Error("pop on empty queue should fail")
	}
	for i := 0; i < 100; i++ {
		q.Push(i)
	}
	if q.Size() != 100 {
		t.Errorf("size is %d, want 100", q.Size())
	}
	for i := 0; i < 100; i++ {
		if q.Peek() != i {
			t.Errorf("peek is %d, want %d", q.Peek(), i)
		}
		if v, e := q.Pop(); e != nil || v != i {
			t.Errorf("pop is %d, %v, want %d", v, e, i)
		}
	}
	if !q.Empty() {
		t.Error("queue should be empty")
	}
	var qe *EmptyQueueError
	if _, e := q.Pop(); !errors.As(e, &qe) {
		t.Errorf("want *EmptyQueueError, got %v", e)
	}
}

func TestArrayQueue_Wrap(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	q := MakeArrayQueue[int](4)
	var model []int
	for i := 0; i < 5000; i++ {
		if rg.Intn(3) > 0 {
			q.Push(i)
			model = append(model, i)
		} else if len(model) > 0 {
			v, _ := q.Pop()
			if v != model[0] {
				t.Fatalf("pop is %d, want %d", v, model[0])
			}
			model = model[1:]
		}
		if i%500 == 0 {
			q.Shrink()
		}
	}
	if q.Size() != uint(len(model)) {
		t.Errorf("size is %d, want %d", q.Size(), len(model))
	}
	for _, m := range model {
		if v, _ := q.Pop(); v != m {
			t.Fatalf("pop is %d, want %d", v, m)
		}
	}
}

func TestArrayQueue_Clear(t *testing.T) {
	q := MakeArrayQueue[*int](2)
	for i := 0; i < 3; i++ {
		q.Push(new(int))
	}
	q.Clear()
	if !q.Empty() || q.Peek() != nil {
		t.Error("queue should be empty after clear")
	}
	q.Push(nil)
	if q.Size() != 1 {
		t.Errorf("size is %d, want 1", q.Size())
	}
}
