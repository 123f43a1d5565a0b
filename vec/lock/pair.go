package lock

// LockPair acquires a and b in ascending id order. Ids must be stable and
// unique per lock; equal ids are treated as the same lock and acquired once.
func LockPair[L any, PL Locker[L]](a PL, aID uint64, b PL, bID uint64) {
	switch {
	case aID == bID:
		a.Lock()
	case aID < bID:
		a.Lock()
		b.Lock()
	default:
		b.Lock()
		a.Lock()
	}
}

// UnlockPair releases locks acquired by LockPair with the same arguments, in
// the reverse order of acquisition.
func UnlockPair[L any, PL Locker[L]](a PL, aID uint64, b PL, bID uint64) {
	switch {
	case aID == bID:
		a.Unlock()
	case aID < bID:
		b.Unlock()
		a.Unlock()
	default:
		a.Unlock()
		b.Unlock()
	}
}
