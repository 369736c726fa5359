package common

import "testing"

type item struct {
	ID    int
	Value float64
}

func TestPool_AcquireUntilFull(t *testing.T) {
	p := NewPool[item](3)

	for i := 0; i < 3; i++ {
		if p.Acquire() == nil {
			t.Fatalf("Expected acquire %d to succeed", i)
		}
	}
	if p.Acquire() != nil {
		t.Error("Expected nil from a full pool")
	}
	if p.Len() != 3 {
		t.Errorf("Expected 3 active, got %d", p.Len())
	}
}

func TestPool_AcquireZeroes(t *testing.T) {
	p := NewPool[item](1)
	it := p.Acquire()
	it.ID, it.Value = 7, 1.5
	p.Release(0)

	again := p.Acquire()
	if again.ID != 0 || again.Value != 0 {
		t.Errorf("Expected a zeroed object, got %+v", *again)
	}
}

func TestPool_ReleaseSwapsWithLast(t *testing.T) {
	p := NewPool[item](4)
	for i := 1; i <= 4; i++ {
		p.Acquire().ID = i
	}

	p.Release(1)

	got := []int{}
	for _, it := range p.Slice() {
		got = append(got, it.ID)
	}
	want := []int{1, 4, 3}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, got)
			break
		}
	}
}

func TestPool_ReleaseOutOfRange(t *testing.T) {
	p := NewPool[item](2)
	p.Acquire()

	p.Release(5)
	p.Release(-1)
	p.Release(1)
	if p.Len() != 1 {
		t.Errorf("Expected 1 active, got %d", p.Len())
	}
}

func TestPool_ForEachReverseRelease(t *testing.T) {
	p := NewPool[item](5)
	for i := 1; i <= 5; i++ {
		p.Acquire().ID = i
	}

	p.ForEachReverse(func(it *item, i int) {
		if it.ID%2 == 0 {
			p.Release(i)
		}
	})

	if p.Len() != 3 {
		t.Fatalf("Expected 3 odd items left, got %d", p.Len())
	}
	for _, it := range p.Slice() {
		if it.ID%2 == 0 {
			t.Errorf("Expected even item %d released", it.ID)
		}
	}

	p.Clear()
	if p.Len() != 0 {
		t.Errorf("Expected empty pool after Clear, got %d", p.Len())
	}
}
