package supermarket

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"
)

var timestampPattern = regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] $`)

func TestEventLineFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewEventLog(&buf)

	log.Event(RoleCashier, 1, "ENTRA SC - coloca producto", "Leche", 3, 5)

	line := strings.TrimSuffix(buf.String(), "\n")
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Fatal("Event did not end the line with a newline")
	}

	const tsLen = len("[HH:MM:SS] ")
	if len(line) < tsLen {
		t.Fatalf("Line too short: %q", line)
	}
	if !timestampPattern.MatchString(line[:tsLen]) {
		t.Errorf("Bad timestamp prefix: %q", line[:tsLen])
	}

	want := fmt.Sprintf("%-10s #%d | %-35s | Producto: %-10s | Buffer: %d/%d",
		RoleCashier, 1, "ENTRA SC - coloca producto", "Leche", 3, 5)
	if got := line[tsLen:]; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestEventLinesAreAtomic(t *testing.T) {
	var buf bytes.Buffer
	log := NewEventLog(&buf)

	const workers = 8
	const linesPerWorker = 50

	var wg sync.WaitGroup
	for i := 1; i <= workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < linesPerWorker; j++ {
				log.Event(RolePacker, id, "ENTRA SC - toma producto", "Pan", 1, 5)
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != workers*linesPerWorker {
		t.Fatalf("Expected %d lines, got %d", workers*linesPerWorker, len(lines))
	}
	for _, line := range lines {
		if !strings.Contains(line, "EMPACADOR") || !strings.Contains(line, "Producto: Pan") {
			t.Errorf("Interleaved or malformed line: %q", line)
		}
	}
}

func TestReportWording(t *testing.T) {
	var buf bytes.Buffer
	log := NewEventLog(&buf)

	log.Report(Statistics{Produced: 12, Consumed: 9, Remaining: 3})

	out := buf.String()
	for _, want := range []string{
		"FIN SIMULACIÓN",
		"Productos Escaneados - Producidos: 12",
		"Productos Empacados - consumidos: 9",
		"Productos en el Área de Empaque en el Fin: 3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Report missing %q in:\n%s", want, out)
		}
	}
}

func TestBannerShowsParameters(t *testing.T) {
	var buf bytes.Buffer
	log := NewEventLog(&buf)

	log.Banner(Config{Capacity: 7, NumCashiers: 4, NumPackers: 3, Duration: 90 * time.Second})

	out := buf.String()
	for _, want := range []string{
		"Simulación Supermercado",
		"Buffer - Área Empaque: 7 Productos",
		"Cajeros - Productores: 4",
		"Empacadores - Consumidores: 3",
		"Duración Simulación: 90 Segundos",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Banner missing %q in:\n%s", want, out)
		}
	}
}
