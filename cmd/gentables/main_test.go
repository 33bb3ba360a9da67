package main

import (
	"bytes"
	"os"
	"testing"
)

func TestGeneratedTablesMatchCheckedIn(t *testing.T) {
	want, err := os.ReadFile("../../internal/tables/tables_gen.go")
	if err != nil {
		t.Fatalf("read tables_gen.go: %v", err)
	}
	got, err := generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("tables_gen.go is stale; run go generate ./internal/tables")
	}
}

func TestPeriodTableEnds(t *testing.T) {
	p := periodTable()
	if p[0] != 9091 || p[len(p)-1] != 134 {
		t.Fatalf("period ends = %d, %d; want 9091, 134", p[0], p[len(p)-1])
	}
	for i := 1; i < len(p); i++ {
		if p[i] > p[i-1] {
			t.Fatalf("period table rises at %d", i)
		}
	}
}

func TestQuantizeTableRails(t *testing.T) {
	for _, n := range []int{16, 8, 4} {
		q := quantizeTable(n)
		if q[0] != 0 || q[levels-1] != 31 {
			t.Fatalf("Quantize%d rails = %d, %d", n, q[0], q[levels-1])
		}
	}
}
