package sieve

import (
	"bytes"
	"slices"
	"strconv"
	"strings"
	"testing"
)

func TestPrimes_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []int
	}{
		{name: "negative", n: -7, want: nil},
		{name: "zero", n: 0, want: nil},
		{name: "one", n: 1, want: nil},
		{name: "two", n: 2, want: []int{2}},
		{name: "three", n: 3, want: []int{2, 3}},
		{name: "ten", n: 10, want: []int{2, 3, 5, 7}},
		{name: "twenty", n: 20, want: []int{2, 3, 5, 7, 11, 13, 17, 19}},
		{name: "prime bound inclusive", n: 31, want: []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Primes(tt.n)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Primes(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

// isPrime — контрольная проверка пробными делениями.
func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func TestPrimes_MatchesTrialDivision(t *testing.T) {
	const n = 5000

	got := Primes(n)

	set := make(map[int]bool, len(got))
	for _, p := range got {
		set[p] = true
	}

	for i := 0; i <= n; i++ {
		if isPrime(i) != set[i] {
			t.Errorf("disagreement at %d: trial division says %v", i, isPrime(i))
		}
	}
}

func TestPrimes_StrictlyAscending(t *testing.T) {
	primes := Primes(10000)

	for i := 1; i < len(primes); i++ {
		if primes[i] <= primes[i-1] {
			t.Fatalf("not strictly ascending at index %d: %d after %d", i, primes[i], primes[i-1])
		}
	}
}

func TestPrimes_Idempotent(t *testing.T) {
	first := Primes(3571)
	second := Primes(3571)

	if !slices.Equal(first, second) {
		t.Error("two calls with the same bound returned different sequences")
	}
}

func TestPrimes_DefaultBoundYields500(t *testing.T) {
	primes := Primes(3571)

	if len(primes) != 500 {
		t.Errorf("expected 500 primes up to 3571, got %d", len(primes))
	}
	if primes[len(primes)-1] != 3571 {
		t.Errorf("expected last prime 3571, got %d", primes[len(primes)-1])
	}
}

func TestFprint_Format(t *testing.T) {
	var buf bytes.Buffer

	count, err := Fprint(&buf, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 8 {
		t.Errorf("expected count 8, got %d", count)
	}

	want := "2\n3\n5\n7\n11\n13\n17\n19\n"
	if buf.String() != want {
		t.Errorf("output %q, want %q", buf.String(), want)
	}
}

func TestFprint_DegenerateBound(t *testing.T) {
	var buf bytes.Buffer

	count, err := Fprint(&buf, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 {
		t.Errorf("expected count 0, got %d", count)
	}
	if buf.Len() != 0 {
		t.Errorf("expected empty output, got %q", buf.String())
	}
}

func TestFprint_MatchesPrimes(t *testing.T) {
	const n = 3571

	var buf bytes.Buffer
	count, err := Fprint(&buf, n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	primes := Primes(n)

	if count != len(primes) {
		t.Errorf("count %d, want %d", count, len(primes))
	}
	if len(lines) != len(primes) {
		t.Fatalf("printed %d lines, want %d", len(lines), len(primes))
	}
	for i, p := range primes {
		if lines[i] != strconv.Itoa(p) {
			t.Errorf("line %d: got %q, want %d", i, lines[i], p)
		}
	}
}

func BenchmarkPrimes(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Primes(100000)
	}
}
