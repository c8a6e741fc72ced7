package pg

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

type ErrorClassification int

const (
	NonRetriable ErrorClassification = iota
	Retriable
)

type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify понимает ошибки обоих драйверов: pgx (*pgconn.PgError) и lib/pq
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetriable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyCode(pgErr.Code)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classifyCode(string(pqErr.Code))
	}

	// не смогли подключиться - сервер мог ещё не подняться
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return Retriable
	}

	// По умолчанию считаем ошибку неповторяемой
	return NonRetriable
}

func classifyCode(code string) ErrorClassification {
	// Коды ошибок PostgreSQL: https://www.postgresql.org/docs/current/errcodes-appendix.html

	switch code {
	// Класс 08 - Ошибки соединения
	case pgerrcode.ConnectionException,
		pgerrcode.SQLClientUnableToEstablishSQLConnection,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.SQLServerRejectedEstablishmentOfSQLConnection,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionResolutionUnknown:
		return Retriable

	// Класс 40 - Откат транзакции
	case pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return Retriable

	// Класс 57 - Ошибка оператора
	case pgerrcode.CannotConnectNow:
		return Retriable
	}

	// Классы 22 (данные), 23 (ограничения), 42 (синтаксис) и прочие
	return NonRetriable
}

// isUniqueViolation - нарушение уникального ключа (23505)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgerrcode.UniqueViolation
	}

	return false
}
