package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

// Storage is the generic persistence surface the typed repositories build on.
// Transaction hands the callback a tx-scoped Storage so a multi-step write
// commits or rolls back as a unit.
type Storage interface {
	MigrateTable(tbl ...any) error
	CreateRecord(ctx context.Context, record any) error
	SaveToTable(ctx context.Context, records any) error
	GetOneBy(ctx context.Context, column string, value any, dest any) error
	GetAllByOrdered(ctx context.Context, column string, value any, order string, dest any) error
	ExistsBy(ctx context.Context, column string, value any, model any) (bool, error)
	UpdateColumns(ctx context.Context, model any, values map[string]any) error
	DeleteAllBy(ctx context.Context, column string, value any, model any) error
	Transaction(ctx context.Context, fn func(tx Storage) error) error
}

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *PostgresDB) CreateRecord(ctx context.Context, record any) error {
	if err := f.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

func (f *PostgresDB) SaveToTable(ctx context.Context, records any) error {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("records type must be pointer to a slice: %T", records)
	}

	if v.Elem().Len() == 0 {
		return nil
	}

	if err := f.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, dest any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAllByOrdered(ctx context.Context, column string, value any, order string, dest any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s = ?", column), value).Order(order).Find(dest)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (f *PostgresDB) ExistsBy(ctx context.Context, column string, value any, model any) (bool, error) {
	var count int64
	err := f.DB.WithContext(ctx).Model(model).Where(fmt.Sprintf("%s = ?", column), value).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("counting records by %q: %w", column, err)
	}
	return count > 0, nil
}

func (f *PostgresDB) UpdateColumns(ctx context.Context, model any, values map[string]any) error {
	if len(values) == 0 {
		return nil
	}
	if err := f.DB.WithContext(ctx).Model(model).Updates(values).Error; err != nil {
		return fmt.Errorf("update columns: %w", err)
	}
	return nil
}

func (f *PostgresDB) DeleteAllBy(ctx context.Context, column string, value any, model any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s = ?", column), value).Delete(model)
	if tx.Error != nil {
		return fmt.Errorf("deleting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (f *PostgresDB) Transaction(ctx context.Context, fn func(tx Storage) error) error {
	return f.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresDB{DB: tx})
	})
}
