package db_test

import (
	"context"
	"database/sql"

	"github.com/FlamesIsCool/tagz-bio/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})
		JustBeforeEach(func() {
			err = testDB.MigrateTable(&Test{})
		})
		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("CreateRecord", func() {
		BeforeEach(func() {
			mock.ExpectBegin()

			mock.ExpectQuery(`^INSERT INTO "tests" \("username"\) VALUES \(\$1\) RETURNING "id"$`).
				WithArgs("Alice").
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

			mock.ExpectCommit()
		})

		It("should insert the record without errors", func() {
			record := Test{Username: "Alice"}
			err := testDB.CreateRecord(context.Background(), &record)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.ID).To(Equal(uint(1)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("SaveToTable", func() {
		It("should save records without errors", func() {
			mock.ExpectBegin()

			mock.ExpectQuery(`^INSERT INTO "tests" \("username","id"\) VALUES \(\$1,\$2\),\(\$3,\$4\) RETURNING "id"$`).
				WithArgs("Alice", 1, "Bob", 2).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

			mock.ExpectCommit()

			err := testDB.SaveToTable(context.Background(), &[]Test{
				{ID: 1, Username: "Alice"},
				{ID: 2, Username: "Bob"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})

		When("the slice is empty", func() {
			It("should skip the insert", func() {
				err := testDB.SaveToTable(context.Background(), &[]Test{})
				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("records is not a pointer to a slice", func() {
			It("should return an error", func() {
				err := testDB.SaveToTable(context.Background(), Test{})
				Expect(err).To(MatchError(ContainSubstring("pointer to a slice")))
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), "username", "Alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), "username", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAllByOrdered", func() {
		When("multiple records are found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY id ASC.*`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice").
						AddRow(2, "Alice"))
			})

			It("should return matching records in order", func() {
				var results []Test
				err := testDB.GetAllByOrdered(context.Background(), "username", "Alice", "id ASC", &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username.*`).
					WithArgs("Invalid").
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.GetAllByOrdered(context.Background(), "username", "Invalid", "id ASC", &results)
				Expect(err).To(MatchError(ContainSubstring("getting records by")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("ExistsBy", func() {
		When("a matching record exists", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "tests" WHERE username = \$1`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			})

			It("should return true", func() {
				exists, err := testDB.ExistsBy(context.Background(), "username", "Alice", &Test{})
				Expect(err).NotTo(HaveOccurred())
				Expect(exists).To(BeTrue())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no matching record exists", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "tests" WHERE username = \$1`).
					WithArgs("Ghost").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
			})

			It("should return false", func() {
				exists, err := testDB.ExistsBy(context.Background(), "username", "Ghost", &Test{})
				Expect(err).NotTo(HaveOccurred())
				Expect(exists).To(BeFalse())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("UpdateColumns", func() {
		It("should update only the given columns", func() {
			mock.ExpectBegin()

			mock.ExpectExec(`UPDATE "tests" SET "username"=\$1 WHERE "id" = \$2`).
				WithArgs("alice2", 1).
				WillReturnResult(sqlmock.NewResult(0, 1))

			mock.ExpectCommit()

			err := testDB.UpdateColumns(context.Background(), &Test{ID: 1}, map[string]any{"username": "alice2"})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})

		When("no values are given", func() {
			It("should not touch the database", func() {
				err := testDB.UpdateColumns(context.Background(), &Test{ID: 1}, map[string]any{})
				Expect(err).NotTo(HaveOccurred())
			})
		})
	})

	Describe("DeleteAllBy", func() {
		BeforeEach(func() {
			mock.ExpectBegin()

			mock.ExpectExec(`DELETE FROM "tests" WHERE username = \$1`).
				WithArgs("Alice").
				WillReturnResult(sqlmock.NewResult(0, 2))

			mock.ExpectCommit()
		})

		It("should delete all matching records", func() {
			err := testDB.DeleteAllBy(context.Background(), "username", "Alice", &Test{})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Transaction", func() {
		When("the callback succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()

				mock.ExpectExec(`DELETE FROM "tests" WHERE username = \$1`).
					WithArgs("Alice").
					WillReturnResult(sqlmock.NewResult(0, 1))

				mock.ExpectCommit()
			})

			It("should commit the transaction", func() {
				err := testDB.Transaction(context.Background(), func(tx db.Storage) error {
					return tx.DeleteAllBy(context.Background(), "username", "Alice", &Test{})
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the callback fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectRollback()
			})

			It("should roll back and return the error", func() {
				err := testDB.Transaction(context.Background(), func(tx db.Storage) error {
					return sql.ErrConnDone
				})
				Expect(err).To(MatchError(sql.ErrConnDone))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
