package capital

import "sync"

// The gate's check and the subsequent insert are not atomic on the
// database level: two concurrent requests could both pass the check
// against the same available balance and jointly overdraw a layer.
// Serializing check+insert+recompute per year closes that window.
var (
	locksMu sync.Mutex
	locks   = map[uint]*sync.Mutex{}
)

// LockYear acquires the lock serializing gated writes for a year and
// returns the release function.
//
//	defer capital.LockYear(year)()
func LockYear(year uint) func() {
	locksMu.Lock()
	lock, ok := locks[year]
	if !ok {
		lock = &sync.Mutex{}
		locks[year] = lock
	}
	locksMu.Unlock()

	lock.Lock()
	return lock.Unlock
}
