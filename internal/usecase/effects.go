package usecase

import "log"

// sideEffect is a best-effort task run after a durable write (emails,
// real-time notifications). Failures are logged and dropped; they must never
// convert a successful write into a reported failure.

type sideEffect struct {
	name string
	run  func() error
}

// dispatchSideEffects runs tasks in order on the current request, logging
// each failure as a silent-degradation condition.
func dispatchSideEffects(component string, effects ...sideEffect) {
	for _, e := range effects {
		if e.run == nil {
			continue
		}
		if err := e.run(); err != nil {
			log.Printf("[%s][effects] %s failed (degraded, not fatal): %v", component, e.name, err)
		}
	}
}
