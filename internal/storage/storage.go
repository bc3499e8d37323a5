// Package storage реализует доступ только на чтение к таблице продаж.
// Поддерживаются два диалекта: файл SQLite (по умолчанию) и PostgreSQL.
// Соединение открывается один раз при старте и переиспользуется всеми запросами.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
	// Регистрация драйвера sqlite без cgo.
	_ "modernc.org/sqlite"
)

const (
	// DriverSQLite — хранилище в файле SQLite.
	DriverSQLite = "sqlite"
	// DriverPostgres — хранилище в PostgreSQL.
	DriverPostgres = "postgres"
)

// ErrUnsupportedDriver возвращается для неизвестного имени драйвера.
var ErrUnsupportedDriver = errors.New("unsupported storage driver")

// Storage инкапсулирует соединение с базой данных и набор запросов
// под выбранный диалект.
type Storage struct {
	DB      *sql.DB
	driver  string
	queries queries
}

// New открывает соединение с хранилищем и проверяет его доступность.
// Для sqlite dsn — путь к файлу, для postgres — строка подключения.
func New(driver, dsn string) (*Storage, error) {
	const op = "storage.New"

	sqlDriver, err := sqlDriverName(driver)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := sql.Open(sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s, err := FromDB(db, driver)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

// FromDB оборачивает уже открытое соединение. Используется в тестах
// и там, где пулом соединений управляет вызывающий код.
func FromDB(db *sql.DB, driver string) (*Storage, error) {
	q, err := newQueries(driver)
	if err != nil {
		return nil, err
	}
	return &Storage{
		DB:      db,
		driver:  driver,
		queries: q,
	}, nil
}

// Driver возвращает имя диалекта хранилища.
func (s *Storage) Driver() string {
	return s.driver
}

// Ping проверяет, что хранилище доступно.
func (s *Storage) Ping(ctx context.Context) error {
	const op = "storage.Ping"
	if err := s.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает соединение с хранилищем.
func (s *Storage) Close() error {
	return s.DB.Close()
}

// CheckDatabaseReady проверяет, что таблица продаж существует и читается.
func CheckDatabaseReady(ctx context.Context, s *Storage) error {
	const op = "storage.CheckDatabaseReady"

	var one int
	err := s.DB.QueryRowContext(ctx, s.queries.probe).Scan(&one)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: required table %s missing or query error: %w", op, s.queries.table, err)
	}
	return nil
}

func sqlDriverName(driver string) (string, error) {
	switch driver {
	case DriverSQLite:
		return "sqlite", nil
	case DriverPostgres:
		return "pgx", nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnsupportedDriver, driver)
	}
}
