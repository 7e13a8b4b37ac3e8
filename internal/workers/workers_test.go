package workers

import (
	"testing"
)

// trackingWorker records Run/Stop calls and their order.
type trackingWorker struct {
	id    int
	runs  int
	stops int
	order *[]int
}

func (w *trackingWorker) Run() {
	w.runs++
	if w.order != nil {
		*w.order = append(*w.order, w.id)
	}
}

func (w *trackingWorker) Stop() {
	w.stops++
	if w.order != nil {
		*w.order = append(*w.order, -w.id)
	}
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &trackingWorker{}
	w2 := &trackingWorker{}
	w3 := &trackingWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*trackingWorker{w1, w2, w3} {
		if w.runs != 1 {
			t.Errorf("worker[%d]: expected runs=1, got %d", i, w.runs)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on an empty workers list.
	ws.Run()
	ws.Stop()
}

func TestWorkers_Stop_ReverseOrder(t *testing.T) {
	order := []int{}

	ws := NewWorkers(
		&trackingWorker{id: 1, order: &order},
		&trackingWorker{id: 2, order: &order},
		&trackingWorker{id: 3, order: &order},
	)

	ws.Run()
	ws.Stop()

	want := []int{1, 2, 3, -3, -2, -1}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}
