package migrate

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Per-entity resolution and ordering failures. These are recorded and the
// run continues.
var (
	ErrUnlinked       = errors.New("no identity link for entity")
	ErrUserNotFound   = errors.New("no target user for legacy email")
	ErrProfileMissing = errors.New("owning profile not found in target store")
	ErrProfileExists  = errors.New("target user already owns a profile")
)

// IsConstraint reports whether err is a per-row constraint violation
// (duplicate key, broken foreign key). The entity is marked failed and its
// transaction rolled back; the run keeps going.
func IsConstraint(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505", "23503", "23502", "23514":
			return true
		}
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "foreign key constraint")
}

// IsConnectivity reports whether err means a store connection is gone.
// Connectivity failures are fatal: they abort the whole run with a
// non-zero exit instead of being recorded per entity.
func IsConnectivity(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "08") {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "server has gone away") ||
		strings.Contains(msg, "invalid connection")
}
