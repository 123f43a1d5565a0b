package scenario

import (
	"fmt"

	"github.com/joshuapare/policyvec/internal/logger"
)

// Allocators builds a five-element float64 Vector with each named allocator
// and appends one value to it, forcing one growth.
func Allocators(o Options, names []string) ([]*Report, error) {
	tr, rec, err := tracer(o)
	if err != nil {
		return nil, err
	}

	reports := make([]*Report, 0, len(names))
	for i, name := range names {
		v, stats, err := open[float64](name, o.Lock, 5, tr)
		if err != nil {
			return nil, fmt.Errorf("allocator %s: %w", name, err)
		}
		logger.Info("running scenario", "scenario", "allocators", "allocator", name)

		r := &Report{Scenario: "allocators", Policies: v.Policies()}
		r.step("construct 5", "%s", v)

		x := 3.14
		if i%2 == 1 {
			x = 2.71
		}
		if err := v.Append(x); err != nil {
			v.Close()
			return nil, fmt.Errorf("allocator %s: %w", name, err)
		}
		r.step(fmt.Sprintf("append %g", x), "%s", v)
		v.Close()

		finish(r, stats, rec)
		rec.Reset()
		reports = append(reports, r)
	}
	return reports, nil
}
