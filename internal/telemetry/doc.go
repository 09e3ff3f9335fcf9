// Package telemetry обеспечивает наблюдаемость утилиты.
//
// Включает:
//   - logging.go — structured logging через slog
//
// Логи идут в stderr, формат и уровень управляются переменными
// LOG_FORMAT и LOG_LEVEL. stdout занят данными и остаётся чистым.
package telemetry
