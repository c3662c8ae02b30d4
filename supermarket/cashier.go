package supermarket

import "time"

// runCashier is the producer loop: scan an item, reserve a free slot in the
// packing area, place the item, and publish it to the packers. The stop
// flag is re-checked after every suspension point so a worker woken by the
// timer exits instead of resuming work.
func (s *Simulation) runCashier(id int) {
	defer s.cashierWg.Done()

	for s.running.Load() {
		time.Sleep(s.cfg.Pacing.cashierDelay())
		if !s.running.Load() {
			break
		}

		it := RandomItem()

		s.empty.Wait()
		if !s.running.Load() {
			// Hand the reserved slot back so a blocked peer can
			// also wake up and exit.
			s.empty.Signal()
			break
		}

		occupied := s.area.Enqueue(it)
		s.log.Event(RoleCashier, id, "ENTRA SC - coloca producto", it.Name, occupied, s.cfg.Capacity)
		s.log.Event(RoleCashier, id, "SALE  SC", it.Name, occupied, s.cfg.Capacity)

		s.full.Signal()
	}

	s.log.Line("[FIN] Cajero     #%d termino.", id)
}
