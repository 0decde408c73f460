package kernel

// task pairs the timed computation with the witness it produces. The
// output is stored on the task so the computation always has an observer.
type task[Out any] struct {
	run     func() Out
	witness func(Out) Witness
	out     Out
}

// Run executes the timed computation.
func (t *task[Out]) Run() {
	t.out = t.run()
}

// Witness derives the witness from the last Run.
func (t *task[Out]) Witness() Witness {
	return t.witness(t.out)
}

func newTask[Out any](run func() Out, witness func(Out) Witness) Task {
	return &task[Out]{run: run, witness: witness}
}
