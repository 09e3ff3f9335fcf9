// Package sieve реализует решето Эратосфена.
//
// Включает:
//   - sieve.go — разметка составных чисел и перечисление простых
//
// Движок не хранит состояние между вызовами: каждый вызов
// выделяет свой массив маркеров и освобождает его после обхода.
package sieve
