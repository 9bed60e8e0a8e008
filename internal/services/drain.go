package services

import "sync"

// Drain keeps track of work that outlives its registry entry, such as an
// analysis deleted while its call is still in flight, so shutdown can wait
// for it.
type Drain struct {
	wg sync.WaitGroup
}

func NewDrain() *Drain {
	return &Drain{}
}

// Track waits for wait in the background.
func (d *Drain) Track(wait func()) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		wait()
	}()
}

func (d *Drain) Wait() {
	d.wg.Wait()
}
