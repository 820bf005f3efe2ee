package migrate

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestIsConstraint(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{gorm.ErrDuplicatedKey, true},
		{gorm.ErrForeignKeyViolated, true},
		{&pgconn.PgError{Code: "23505"}, true},
		{&pgconn.PgError{Code: "23503"}, true},
		{&pgconn.PgError{Code: "42703"}, false},
		{errors.New(`ERROR: duplicate key value violates unique constraint "users_email_key"`), true},
		{fmt.Errorf("wrapped: %w", gorm.ErrDuplicatedKey), true},
		{errors.New("some other failure"), false},
	}
	for _, c := range cases {
		if got := IsConstraint(c.err); got != c.want {
			t.Fatalf("IsConstraint(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}

func TestIsConnectivity(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{driver.ErrBadConn, true},
		{context.Canceled, true},
		{context.DeadlineExceeded, true},
		{&pgconn.PgError{Code: "08006"}, true},
		{&pgconn.PgError{Code: "23505"}, false},
		{errors.New("dial tcp 127.0.0.1:5432: connection refused"), true},
		{errors.New("mysql: server has gone away"), true},
		{fmt.Errorf("entity 7: %w", driver.ErrBadConn), true},
		{gorm.ErrDuplicatedKey, false},
	}
	for _, c := range cases {
		if got := IsConnectivity(c.err); got != c.want {
			t.Fatalf("IsConnectivity(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}
