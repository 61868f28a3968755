package gormseq

import (
	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockOpener func() (string, *gorm.DB, sqlmock.Sqlmock, error)

var _mockOpeners = []mockOpener{
	newGORMMySQLMock,
	newGORMPostgresMock,
}

func openGORMMock(dialect string, dialector func(conn gorm.ConnPool) gorm.Dialector) (string, *gorm.DB, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return "", nil, nil, err
	}

	db, err := gorm.Open(dialector(mockDB), &gorm.Config{})
	if err != nil {
		return "", nil, nil, err
	}

	return dialect, db.Debug(), mock, nil
}

func newGORMMySQLMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	return openGORMMock("mysql", func(conn gorm.ConnPool) gorm.Dialector {
		return mysql.New(mysql.Config{
			Conn:                      conn,
			SkipInitializeWithVersion: true,
		})
	})
}

func newGORMPostgresMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	return openGORMMock("postgres", func(conn gorm.ConnPool) gorm.Dialector {
		return postgres.New(postgres.Config{
			Conn: conn,
		})
	})
}
