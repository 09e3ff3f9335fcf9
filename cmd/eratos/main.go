// eratos — инструмент командной строки: печатает все простые числа
// до заданной верхней границы решетом Эратосфена.
//
// Использование:
//
//	eratos [bound]
//
// bound — необязательная неотрицательная граница поиска.
// Без аргумента используется 3571 (первые 500 простых).
package main

import (
	"os"

	"github.com/shaiso/eratos/internal/cli"
	"github.com/shaiso/eratos/internal/telemetry"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	telemetry.SetupLogger()

	out := cli.NewOutput()
	outputFn := func() *cli.Output { return out }

	rootCmd := cli.NewRootCmd(version, outputFn)

	if err := rootCmd.Execute(); err != nil {
		out.Error(err.Error())
		os.Exit(1)
	}
}
