package scenario

import "github.com/joshuapare/policyvec/internal/logger"

// Single appends 10, 20 and 30, reads and rewrites index 1, removes the last
// element, then copies and moves the result.
func Single(o Options) (*Report, error) {
	tr, rec, err := tracer(o)
	if err != nil {
		return nil, err
	}
	v, stats, err := open[int](o.Allocator, o.Lock, 0, tr)
	if err != nil {
		return nil, err
	}
	logger.Info("running scenario", "scenario", "single", "allocator", o.Allocator, "lock", o.Lock)

	r := &Report{Scenario: "single", Policies: v.Policies()}
	for _, x := range []int{10, 20, 30} {
		if err := v.Append(x); err != nil {
			v.Close()
			return nil, err
		}
	}
	r.step("append 10, 20, 30", "%s", v)
	r.step("read [1]", "%d", v.Get(1))

	*v.At(1) = 25
	r.step("write [1] = 25", "%s", v)

	v.RemoveLast()
	r.step("remove last", "%s", v)

	cp, err := v.Clone()
	if err != nil {
		v.Close()
		return nil, err
	}
	r.step("copy: source", "%s", v)
	r.step("copy: copy", "%s", cp)

	moved := v.Take()
	r.step("move: source", "%s", v)
	r.step("move: target", "%s", moved)

	moved.Close()
	cp.Close()
	v.Close()

	finish(r, stats, rec)
	return r, nil
}
