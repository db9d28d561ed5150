// Command measure runs a remove-then-query benchmark on BSTree at increasing
// removal ratios and reports the mean and standard deviation of ms/op.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/g-m-twostay/bstree/Trees"
)

var (
	bAddN = 200000
	bRmvN = bAddN
	bQryN = bRmvN
)
var _R rand.Rand = *rand.New(rand.NewSource(0))

func create(b *testing.B, all []int) (*Trees.BSTree[int], []int) {
	b.Helper()
	tree := Trees.New[int]()
	for range bAddN {
		a := _R.Int()
		tree.Insert(a)
		all = append(all, a)
	}
	return tree, all
}

var __r1 bool

// heights of the trees left by each iteration of the current step.
var heights []int

func averageHeight(hs []int) float64 {
	if len(hs) == 0 {
		return 0
	}
	var sum float64
	for _, h := range hs {
		sum += float64(h)
	}
	return sum / float64(len(hs))
}

func BenchmarkDelQry(b *testing.B) {
	all := make([]int, 0, bAddN)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		var tree *Trees.BSTree[int]
		tree, all = create(b, all[:0])
		b.StartTimer()
		for _, v := range all[:bRmvN] {
			tree.Remove(v)
		}
		for _, v := range all[bRmvN:] {
			__r1 = tree.Has(v)
		}
		for range bQryN {
			__r1 = tree.Has(_R.Int())
		}
		b.StopTimer()
		heights = append(heights, tree.Height())
		b.StartTimer()
	}
}

const bNumSteps = 20

// step benchmarks removing rmv of the bAddN elements and returns the result
// with the average height of the trees left by this step only.
func step(rmv int) (testing.BenchmarkResult, float64) {
	bRmvN, bQryN = rmv, rmv
	heights = heights[:0]
	br := testing.Benchmark(BenchmarkDelQry)
	return br, averageHeight(heights)
}

func main() {
	testing.Init()
	var cs []float64
	var N int
	for i := 1; i < bNumSteps; i++ {
		br, h := step(bAddN / bNumSteps * i)
		cs = append(cs, float64(br.T.Milliseconds()))
		N += br.N
		fmt.Printf("step %d: removed %d, %v, average height: %f\n", i, bRmvN, br, h)
	}
	var sum float64 = 0
	for _, v := range cs {
		sum += v
	}
	avg := sum / float64(N)
	fmt.Printf("average: %fms/op\n", avg)
	sum = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}
	fmt.Printf("stddev: %fms/op\n", math.Sqrt(sum/float64(N)))
}
