package trampoline_test

import (
	"fmt"

	"github.com/npillmayer/fpcall/args"
	"github.com/npillmayer/fpcall/call"
	"github.com/npillmayer/fpcall/trampoline"
)

type counter struct {
	n   int
	acc int
}

func ExampleLoop() {
	fact := func(s counter) trampoline.Bounce[counter, int] {
		if s.n == 0 {
			return trampoline.Done[counter](s.acc)
		}
		return trampoline.More[counter, int](counter{s.n - 1, s.n * s.acc})
	}
	fmt.Println(trampoline.Loop(counter{n: 5, acc: 1}, fact))
	// Output: 120
}

func ExampleWrap() {
	fact, _ := trampoline.Wrap[int](func(n, acc int) trampoline.Signal[int] {
		if n == 0 {
			return trampoline.Return(acc)
		}
		return trampoline.Continue[int](n-1, n*acc)
	}, call.Names("n", "acc"), call.Default("acc", 1))
	for n := 0; n < 10; n++ {
		v, _ := fact(n)
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 1 1 2 6 24 120 720 5040 40320 362880
}

// Mutually recursive functions share one step function, which dispatches on
// the name of the function to call next.
func ExampleWrap_mutualRecursion() {
	parity, _ := trampoline.Wrap[bool](func(fn string, n int) trampoline.Signal[bool] {
		switch {
		case fn == "even" && n == 0:
			return trampoline.Return(true)
		case fn == "odd" && n == 0:
			return trampoline.Return(false)
		case fn == "even":
			return trampoline.Continue[bool]("odd", n-1)
		}
		return trampoline.Continue[bool]("even", n-1)
	})
	even, _ := parity("even", 100001)
	odd, _ := parity("odd", 100001)
	fmt.Println(even, odd)
	// Output: false true
}

func ExampleRun() {
	last := trampoline.Run(func(a args.Args) trampoline.Signal[any] {
		if a.NumPositional() == 1 {
			return trampoline.Return(a.At(0))
		}
		return trampoline.Continue[any](a.Positional()[1:]...)
	}, "a", "b", nil)
	fmt.Println(last)
	// Output: <nil>
}
