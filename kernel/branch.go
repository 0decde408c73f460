package kernel

import "github.com/weiihann/kernbench/workload"

// branchMax is the upper bound of the classifier's input values. The
// decision tree boundaries below are fixed against it.
const branchMax = 1000

// ClassCounts are the four category totals of the branch classifier.
type ClassCounts struct {
	Small  int64
	Medium int64
	Large  int64
	Weird  int64
}

// Total returns the number of classified values.
func (c ClassCounts) Total() int64 {
	return c.Small + c.Medium + c.Large + c.Weird
}

// NewBranchClassifier returns the branch-heavy classification kernel.
func NewBranchClassifier(p BranchParams) Kernel {
	return &paramKernel[BranchParams]{
		name:     NameBranch,
		category: CategoryBranch,
		seed:     p.Seed,
		params:   p,
		prepare:  prepareBranch,
	}
}

func prepareBranch(p BranchParams, gen *workload.Generator) (Task, error) {
	data, err := gen.UniformInts(p.N, 0, branchMax)
	if err != nil {
		return nil, err
	}

	return newTask(
		func() ClassCounts { return Classify(data) },
		func(c ClassCounts) Witness {
			return Witness{
				Int("small", c.Small),
				Int("medium", c.Medium),
				Int("large", c.Large),
				Int("weird", c.Weird),
			}
		},
	), nil
}

// Classify partitions data with a fixed decision tree of range checks and
// modulo tie-breaks.
func Classify(data []int) ClassCounts {
	var c ClassCounts

	for _, x := range data {
		switch {
		case x < 100:
			if x%2 == 0 {
				c.Small++
			} else {
				c.Weird++
			}
		case x < 500:
			if x%3 == 0 {
				c.Medium++
			} else if x%5 == 0 {
				c.Weird++
			} else {
				c.Small++
			}
		case x < 800:
			if x%7 == 0 {
				c.Large++
			} else if x%11 == 0 {
				c.Weird++
			} else {
				c.Medium++
			}
		default:
			if x%2 == 1 && x%3 == 0 {
				c.Large++
			} else {
				c.Weird++
			}
		}
	}

	return c
}
