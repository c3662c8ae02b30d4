package supermarket

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Worker roles as they appear in the event log.
const (
	RoleCashier = "CAJERO"
	RolePacker  = "EMPACADOR"
)

// EventLog writes simulation output one line at a time. All workers share a
// single instance; the mutex keeps concurrent lines from interleaving.
// Workers call it only outside the packing area's critical section.
type EventLog struct {
	mu sync.Mutex
	w  io.Writer
}

// NewEventLog creates a log that writes to w.
func NewEventLog(w io.Writer) *EventLog {
	return &EventLog{w: w}
}

// Event emits one timestamped worker event:
//
//	[HH:MM:SS] CAJERO     #1 | ENTRA SC - coloca producto          | Producto: Leche      | Buffer: 3/5
func (l *EventLog) Event(role string, id int, action, product string, occupied, capacity int) {
	now := time.Now()
	l.mu.Lock()
	fmt.Fprintf(l.w, "[%02d:%02d:%02d] %-10s #%d | %-35s | Producto: %-10s | Buffer: %d/%d\n",
		now.Hour(), now.Minute(), now.Second(),
		role, id, action, product, occupied, capacity)
	l.mu.Unlock()
}

// Line emits one plain line.
func (l *EventLog) Line(format string, args ...any) {
	l.mu.Lock()
	fmt.Fprintf(l.w, format+"\n", args...)
	l.mu.Unlock()
}

var rule = strings.Repeat("-", 80)

// Banner prints the simulation header with the configured parameters.
func (l *EventLog) Banner(cfg Config) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, rule)
	fmt.Fprintln(l.w, "                    Bounded Buffer - Semáforos + Mutex")
	fmt.Fprintln(l.w, "                    Simulación Supermercado")
	fmt.Fprintln(l.w)
	fmt.Fprintf(l.w, "    Buffer - Área Empaque: %d Productos\n", cfg.Capacity)
	fmt.Fprintf(l.w, "    Cajeros - Productores: %d\n", cfg.NumCashiers)
	fmt.Fprintf(l.w, "    Empacadores - Consumidores: %d\n\n", cfg.NumPackers)
	fmt.Fprintf(l.w, "    Duración Simulación: %d Segundos\n", int(cfg.Duration.Seconds()))
	fmt.Fprintln(l.w, rule)
}

// Report prints the final counters.
func (l *EventLog) Report(stats Statistics) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, rule)
	fmt.Fprintln(l.w, "                                FIN SIMULACIÓN")
	fmt.Fprintln(l.w, rule)
	fmt.Fprintf(l.w, "  Productos Escaneados - Producidos: %d\n", stats.Produced)
	fmt.Fprintf(l.w, "  Productos Empacados - consumidos: %d\n", stats.Consumed)
	fmt.Fprintf(l.w, "  Productos en el Área de Empaque en el Fin: %d\n", stats.Remaining)
	fmt.Fprintln(l.w, rule)
}
