package sieve

import (
	"bufio"
	"io"
	"strconv"
)

// mark выполняет фазу разметки: возвращает срез длины n+1,
// где marker[i] == true означает "i составное".
//
// Условие внешнего цикла записано как i <= n/i (эквивалент i*i <= n),
// поэтому произведение не вычисляется для i вне диапазона и не
// переполняется. Разметка кратных начинается с i*i: все меньшие
// кратные уже размечены меньшими простыми делителями.
func mark(n int) []bool {
	marker := make([]bool, n+1)

	for i := 2; i <= n/i; i++ {
		if marker[i] {
			continue
		}
		for j := i * i; j <= n; j += i {
			marker[j] = true
		}
	}

	return marker
}

// Primes возвращает все простые числа в диапазоне [2, n]
// по возрастанию. Для n < 2 возвращает nil без аллокаций.
func Primes(n int) []int {
	if n < 2 {
		return nil
	}

	marker := mark(n)

	primes := []int{2}
	for i := 3; i <= n; i += 2 {
		if !marker[i] {
			primes = append(primes, i)
		}
	}

	return primes
}

// Fprint печатает простые числа в диапазоне [2, n] в w,
// по одному на строку, в десятичной записи, по возрастанию.
// Числа пишутся по мере обхода маркеров, без промежуточного среза.
// Вывод буферизуется и сбрасывается один раз в конце.
// Возвращает количество напечатанных простых.
func Fprint(w io.Writer, n int) (int, error) {
	if n < 2 {
		return 0, nil
	}

	marker := mark(n)

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("2\n"); err != nil {
		return 0, err
	}

	count := 1
	for i := 3; i <= n; i += 2 {
		if marker[i] {
			continue
		}
		if _, err := bw.WriteString(strconv.Itoa(i)); err != nil {
			return count, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return count, err
		}
		count++
	}

	return count, bw.Flush()
}
