package supermarket

import "time"

// runPacker is the consumer loop: reserve a filled slot, take the item out
// of the packing area, free the slot for the cashiers, then simulate the
// packing work. A packer woken by the timer returns the slot credit it
// consumed and exits; any item it would have taken stays in the area and is
// counted as remaining.
func (s *Simulation) runPacker(id int) {
	defer s.packerWg.Done()

	for s.running.Load() {
		s.full.Wait()
		if !s.running.Load() {
			s.full.Signal()
			break
		}

		it, occupied := s.area.Dequeue()
		s.log.Event(RolePacker, id, "ENTRA SC - toma producto", it.Name, occupied, s.cfg.Capacity)
		s.log.Event(RolePacker, id, "SALE  SC", it.Name, occupied, s.cfg.Capacity)

		s.empty.Signal()

		time.Sleep(s.cfg.Pacing.packerDelay())
	}

	s.log.Line("[FIN] Empacador  #%d termino.", id)
}
