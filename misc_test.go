package deeppager

import (
	"fmt"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type tMockDBFn func() (string, *gorm.DB, sqlmock.Sqlmock, error)

// mockDBFns opens GORM over sqlmock for every supported dialect.
var mockDBFns = []tMockDBFn{
	newGORMMySQLMock,
	newGORMPostgresMock,
}

func newGORMMySQLMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	return newGORMMock("mysql", func(conn gorm.ConnPool) gorm.Dialector {
		return mysql.New(mysql.Config{
			Conn:                      conn,
			SkipInitializeWithVersion: true,
		})
	})
}

func newGORMPostgresMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	return newGORMMock("postgres", func(conn gorm.ConnPool) gorm.Dialector {
		return postgres.New(postgres.Config{
			Conn: conn,
		})
	})
}

func newGORMMock(dialect string, dialectorFn func(conn gorm.ConnPool) gorm.Dialector) (string, *gorm.DB, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return "", nil, nil, fmt.Errorf("sqlmock: %w", err)
	}

	db, err := gorm.Open(dialectorFn(mockDB), &gorm.Config{})
	if err != nil {
		return "", nil, nil, fmt.Errorf("gorm open %s: %w", dialect, err)
	}

	return dialect, db.Debug(), mock, nil
}
