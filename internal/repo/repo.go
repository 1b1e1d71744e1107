package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Bjohan23/SIGES-sub000/internal/apperr"
)

// Scope narrows a query (filters, ordering). Nil means no narrowing.
type Scope func(*gorm.DB) *gorm.DB

// Repo is the generic persistence layer shared by every entity. Storage
// failures come back as apperr.Database; a missing row on read is (nil, nil)
// and on update/delete a false result, so callers branch on absence without
// error handling.
type Repo[T any] struct {
	db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) *Repo[T] { return &Repo[T]{db: db} }

// DB exposes the underlying handle for entity-specific queries.
func (r *Repo[T]) DB() *gorm.DB { return r.db }

// WithTx returns a repo bound to the given transaction.
func (r *Repo[T]) WithTx(tx *gorm.DB) *Repo[T] { return &Repo[T]{db: tx} }

func (r *Repo[T]) Create(ctx context.Context, m *T) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return apperr.Database("create failed", err)
	}
	return nil
}

func (r *Repo[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var m T
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Database("find failed", err)
	}
	return &m, nil
}

// FindAll returns one page of rows plus the total count under the same scope.
func (r *Repo[T]) FindAll(ctx context.Context, scope Scope, offset, limit int, order string) ([]T, int64, error) {
	var m T
	q := r.db.WithContext(ctx).Model(&m)
	if scope != nil {
		q = scope(q)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperr.Database("count failed", err)
	}

	if order == "" {
		order = "created_at DESC"
	}
	var items []T
	if err := q.Order(order).Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, 0, apperr.Database("list failed", err)
	}
	return items, total, nil
}

// Update saves the full row; false when the id does not exist.
func (r *Repo[T]) Update(ctx context.Context, id string, m *T) (bool, error) {
	res := r.db.WithContext(ctx).Model(m).Where("id = ?", id).Updates(m)
	if res.Error != nil {
		return false, apperr.Database("update failed", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Save overwrites every column including zero values.
func (r *Repo[T]) Save(ctx context.Context, m *T) error {
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return apperr.Database("save failed", err)
	}
	return nil
}

func (r *Repo[T]) Delete(ctx context.Context, id string) (bool, error) {
	var m T
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&m)
	if res.Error != nil {
		return false, apperr.Database("delete failed", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *Repo[T]) Count(ctx context.Context, scope Scope) (int64, error) {
	var m T
	q := r.db.WithContext(ctx).Model(&m)
	if scope != nil {
		q = scope(q)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, apperr.Database("count failed", err)
	}
	return total, nil
}

// IsDuplicate detects unique-constraint violations across drivers without
// depending on gorm.ErrDuplicatedKey version differences.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}

// ILike builds a portable case-insensitive substring predicate.
func ILike(col, term string) Scope {
	pattern := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	return func(q *gorm.DB) *gorm.DB {
		return q.Where("LOWER("+col+") LIKE ?", pattern)
	}
}
