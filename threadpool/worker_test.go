package threadpool

import "testing"

func TestCoreForRoundRobin(t *testing.T) {
	cores := []int{0, 1, 5}
	want := []int{0, 1, 5, 0, 1, 5, 0}
	for id, core := range want {
		if got := coreFor(cores, id); got != core {
			t.Errorf("coreFor(%v, %d) = %d, want %d", cores, id, got, core)
		}
	}
}

func TestCoreForShorterListThanWorkers(t *testing.T) {
	cores := []int{3}
	for id := 0; id < 8; id++ {
		if got := coreFor(cores, id); got != 3 {
			t.Errorf("coreFor single-element list, worker %d = %d, want 3", id, got)
		}
	}
}
