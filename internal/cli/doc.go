// Package cli реализует инструмент командной строки eratos.
//
// # Обзор
//
// CLI — утилита одного прохода: разбирает необязательную верхнюю
// границу, прогоняет решето и печатает простые числа в stdout по
// одному на строку. Никакого состояния между запусками нет.
//
// # Ключевые компоненты
//
// ## Output
//
// Разделение потоков: простые числа идут в stdout, сообщения об
// ошибках — в stderr. Это позволяет использовать pipe:
// eratos 100 | wc -l.
//
// ## ParseBound
//
// Строгий разбор границы. Нечисловой или отрицательный аргумент —
// ошибка конфигурации (BoundError с базовым sentinel), а не повод
// молча просеивать непредвиденный диапазон.
//
// ## NewRootCmd
//
// Корневая cobra-команда. Принимает outputFn — замыкание для
// ленивого создания Output, чтобы тесты подменяли потоки вывода.
package cli
