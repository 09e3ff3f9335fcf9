package cli

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shaiso/eratos/internal/sieve"
	"github.com/shaiso/eratos/internal/telemetry"
)

// DefaultBound — верхняя граница по умолчанию.
// Первые 500 простых чисел лежат в диапазоне 2..3571.
const DefaultBound = 3571

// ParseBound разбирает верхнюю границу из аргумента командной строки.
// Принимает только неотрицательные целые числа; всё остальное —
// ошибка конфигурации, а не повод просеивать непредвиденный диапазон.
func ParseBound(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, NewBoundError(arg, "value out of range", ErrInvalidBound)
		}
		return 0, NewBoundError(arg, "not an integer", ErrInvalidBound)
	}
	if n < 0 {
		return 0, NewBoundError(arg, "must be non-negative", ErrNegativeBound)
	}
	return n, nil
}

// NewRootCmd создаёт корневую команду eratos.
// outputFn — замыкание для ленивого создания Output,
// чтобы тесты могли подменить потоки вывода.
func NewRootCmd(version string, outputFn func() *Output) *cobra.Command {
	long := "Print all prime numbers in [2, bound] to stdout, one per line,\n" +
		"in ascending order. Without an argument the bound defaults to " + strconv.Itoa(DefaultBound) + ",\n" +
		"which yields the first 500 primes."

	return &cobra.Command{
		Use:           "eratos [bound]",
		Short:         "Print all primes up to a bound (sieve of Eratosthenes)",
		Long:          long,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			bound := DefaultBound
			if len(args) == 1 {
				n, err := ParseBound(args[0])
				if err != nil {
					return err
				}
				bound = n
			}

			logger := telemetry.WithBound(slog.Default(), bound)
			logger.Debug("sieve started")

			count, err := sieve.Fprint(out.Data(), bound)
			if err != nil {
				return err
			}

			logger.Debug("sieve finished", "primes", count)
			return nil
		},
	}
}
