package alloc

import "math/bits"

// numClasses is the number of pooled size classes. Class c holds blocks with
// capacity 1<<c slots, so the largest pooled block has 1<<(numClasses-1) slots.
// Larger requests bypass the pool.
const numClasses = 24

// sizeClass returns the class whose capacity is the smallest power of two >= n.
// n must be positive. Returns numClasses for requests too large to pool.
func sizeClass(n int) int {
	cls := bits.Len(uint(n - 1))
	if cls >= numClasses {
		return numClasses
	}
	return cls
}

// classCap returns the slot capacity of blocks in class cls.
func classCap(cls int) int {
	return 1 << cls
}
