package store

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers that indicate a transient condition.
// See https://dev.mysql.com/doc/mysql-errors/8.0/en/server-error-reference.html.
const (
	mysqlErrLockWaitTimeout uint16 = 1205
	mysqlErrLockDeadlock    uint16 = 1213
	mysqlErrTooManyConns    uint16 = 1040
)

// MySQLErrorClassifier implements [ErrorClassificator] for MySQL.
type MySQLErrorClassifier struct{}

// NewMySQLErrorClassifier constructs a [MySQLErrorClassifier].
func NewMySQLErrorClassifier() *MySQLErrorClassifier {
	return &MySQLErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *MySQLErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	if errors.Is(err, mysql.ErrInvalidConn) {
		return Retryable
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrLockWaitTimeout, mysqlErrLockDeadlock, mysqlErrTooManyConns:
			return Retryable
		}
	}

	return NonRetryable
}
