package cli

import (
	"fmt"
	"io"
	"os"
)

// Output разделяет потоки вывода CLI: данные идут в stdout,
// сообщения — в stderr. Это позволяет использовать pipe:
// eratos 100 | wc -l.
type Output struct {
	w    io.Writer // stdout для простых чисел
	errW io.Writer // stderr для сообщений
}

// NewOutput создаёт Output поверх стандартных потоков процесса.
func NewOutput() *Output {
	return &Output{
		w:    os.Stdout,
		errW: os.Stderr,
	}
}

// Data возвращает writer для потока данных.
func (o *Output) Data() io.Writer {
	return o.w
}

// Error выводит сообщение об ошибке в stderr.
func (o *Output) Error(msg string) {
	fmt.Fprintln(o.errW, "Error: "+msg)
}
