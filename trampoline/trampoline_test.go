package trampoline

import (
	"errors"
	"math/big"
	"testing"

	"github.com/npillmayer/fpcall/args"
	"github.com/npillmayer/fpcall/call"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type factState struct {
	n   int
	acc int
}

func factStep(s factState) Bounce[factState, int] {
	if s.n == 0 {
		return Done[factState](s.acc)
	}
	return More[factState, int](factState{n: s.n - 1, acc: s.n * s.acc})
}

func naiveFactorial(n int) int {
	if n == 0 {
		return 1
	}
	return n * naiveFactorial(n-1)
}

// fibonacci with first two terms 1, 1
func naiveFibonacci(n int) int {
	if n < 2 {
		return 1
	}
	return naiveFibonacci(n-1) + naiveFibonacci(n-2)
}

func fibonacciStep(n, cur, next int) Signal[int] {
	if n == 0 {
		return Return(cur)
	}
	return Continue[int](n-1, next, cur+next)
}

func TestLoopFactorial(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpcall.trampoline")
	defer teardown()
	//
	for n := 0; n <= 10; n++ {
		assert.Equal(t, naiveFactorial(n), Loop(factState{n: n, acc: 1}, factStep), "factorial(%d)", n)
	}
	assert.Equal(t, 120, Loop(factState{n: 5, acc: 1}, factStep))
}

func TestWrapFactorialWithDefault(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpcall.trampoline")
	defer teardown()
	//
	fact, err := Wrap[int](func(n, acc int) Signal[int] {
		if n == 0 {
			return Return(acc)
		}
		return Continue[int](n-1, n*acc)
	}, call.Names("n", "acc"), call.Default("acc", 1))
	require.NoError(t, err)
	expected := []int{1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880}
	for n, e := range expected {
		v, err := fact(n)
		require.NoError(t, err)
		assert.Equal(t, e, v, "factorial(%d)", n)
	}
}

func TestWrapFibonacci(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpcall.trampoline")
	defer teardown()
	//
	fib, err := Wrap[int](fibonacciStep, call.Names("n", "cur", "next"),
		call.Default("cur", 1), call.Default("next", 1))
	require.NoError(t, err)
	for n := 0; n < 10; n++ {
		v, err := fib(n)
		require.NoError(t, err)
		assert.Equal(t, naiveFibonacci(n), v, "fibonacci(%d)", n)
	}
	v, _ := fib(9)
	assert.Equal(t, 55, v)
}

func TestStackSafety(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpcall.trampoline")
	defer teardown()
	//
	type bigState struct {
		n   int64
		acc *big.Int
	}
	bigFact := func(s bigState) Bounce[bigState, *big.Int] {
		if s.n == 0 {
			return Done[bigState](s.acc)
		}
		return More[bigState, *big.Int](bigState{n: s.n - 1, acc: new(big.Int).Mul(s.acc, big.NewInt(s.n))})
	}
	result := Loop(bigState{n: 10000, acc: big.NewInt(1)}, bigFact)
	expected := new(big.Int).MulRange(1, 10000)
	assert.Equal(t, 0, expected.Cmp(result), "factorial(10000) differs")
	//
	sum, err := Wrap[int](func(n, acc int) Signal[int] {
		if n == 0 {
			return Return(acc)
		}
		return Continue[int](n-1, acc+n)
	}, call.Names("n", "acc"), call.Default("acc", 0))
	require.NoError(t, err)
	v, err := sum(100000)
	require.NoError(t, err)
	assert.Equal(t, 5000050000, v)
}

func TestNothingIsATerminalValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpcall.trampoline")
	defer teardown()
	//
	calls := 0
	countdown := func(a args.Args) Signal[*int] {
		calls++
		n, _ := args.Get[int](a, 0)
		if n == 0 {
			return Return[*int](nil)
		}
		return Continue[*int](n - 1)
	}
	assert.Nil(t, Run(countdown, 3))
	assert.Equal(t, 4, calls)
	//
	zero, err := Wrap[int](func(n int) Signal[int] {
		if n == 0 {
			return Return(0)
		}
		return Continue[int](n - 1)
	})
	require.NoError(t, err)
	v, err := zero(5)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
	//
	empty := Loop("abc", func(s string) Bounce[string, string] {
		if s == "" {
			return Done[string](s)
		}
		return More[string, string](s[1:])
	})
	assert.Equal(t, "", empty)
}

func TestWrapNamedContinue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpcall.trampoline")
	defer teardown()
	//
	count, err := Wrap[string](func(n int, tag string) Signal[string] {
		if n == 0 {
			return Return(tag)
		}
		return Continue[string](n-1, args.Kw("tag", tag+"."))
	}, call.Names("n", "tag"), call.Default("tag", ""))
	require.NoError(t, err)
	v, err := count(3)
	require.NoError(t, err)
	assert.Equal(t, "...", v)
}

func TestWrapPassesCallErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpcall.trampoline")
	defer teardown()
	//
	broken, err := Wrap[int](func(n int) Signal[int] {
		if n == 0 {
			return Return(0)
		}
		return Continue[int](n-1, "surplus")
	})
	require.NoError(t, err)
	_, err = broken(2)
	assert.True(t, errors.Is(err, call.ErrArity))
	_, err = broken("two")
	assert.True(t, errors.Is(err, call.ErrType))
}

func TestWrapPassesStepErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpcall.trampoline")
	defer teardown()
	//
	errTooSmall := errors.New("too small")
	steps := 0
	down, err := Wrap[int](func(n int) (Signal[int], error) {
		steps++
		if n < 0 {
			return Signal[int]{}, errTooSmall
		}
		return Continue[int](n - 2), nil
	})
	require.NoError(t, err)
	_, err = down(5)
	assert.Equal(t, errTooSmall, err)
	assert.Equal(t, 4, steps)
}

func TestWrapRejectsNonSteps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpcall.trampoline")
	defer teardown()
	//
	_, err := Wrap[int](func(n int) int { return n })
	assert.True(t, errors.Is(err, ErrNotAStep))
	_, err = Wrap[int](func(n int) Signal[string] { return Return("") })
	assert.True(t, errors.Is(err, ErrNotAStep))
	_, err = Wrap[int](17)
	assert.True(t, errors.Is(err, call.ErrNotAFunc))
}

func TestWrapRawArgsStep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpcall.trampoline")
	defer teardown()
	//
	length, err := Wrap[int](func(a args.Args) Signal[int] {
		if a.NumPositional() == 1 {
			n, _ := args.GetNamed[int](a, "count")
			return Return(n)
		}
		n, _ := args.GetNamed[int](a, "count")
		return Continue[int](append(a.Positional()[1:], args.Kw("count", n+1))...)
	})
	require.NoError(t, err)
	v, err := length("a", "b", "c", "d", args.Kw("count", 0))
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestLoopErr(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpcall.trampoline")
	defer teardown()
	//
	errNegative := errors.New("negative")
	step := func(n int) (Bounce[int, int], error) {
		switch {
		case n < 0:
			return Bounce[int, int]{}, errNegative
		case n < 10:
			return Done[int](n), nil
		}
		return More[int, int](n - 3), nil
	}
	v, err := LoopErr(25, step)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	_, err = LoopErr(-1, step)
	assert.Equal(t, errNegative, err)
}

func TestBounceMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpcall.trampoline")
	defer teardown()
	//
	var s factState
	var r int
	more := More[factState, int](factState{n: 3, acc: 2})
	switch m := more.Match(); m {
	case m.Done(&r):
		t.Errorf("expected More to not match Done")
	case m.More(&s):
		t.Logf("More(%v)", s)
	}
	assert.Equal(t, factState{n: 3, acc: 2}, s)
	done := Return(42)
	var a args.Args
	switch m := done.Match(); m {
	case m.More(&a):
		t.Errorf("expected Done to not match More")
	case m.Done(&r):
		t.Logf("Done(%d)", r)
	}
	assert.Equal(t, 42, r)
	assert.True(t, done.IsDone())
	assert.False(t, more.IsDone())
	assert.Equal(t, 42, done.Value())
	assert.Equal(t, 3, more.State().n)
}
