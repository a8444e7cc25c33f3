package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/wfunc/hexrealm/internal/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BaseRepository 基础仓储接口
type BaseRepository interface {
	// GetDB 获取数据库实例
	GetDB() *gorm.DB
	// WithTx 使用事务
	WithTx(tx *gorm.DB) BaseRepository
}

// Pagination 分页参数
type Pagination struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

// NewPagination 创建分页参数，page 为 0 时返回 nil 表示不分页
func NewPagination(page, pageSize int) *Pagination {
	if page <= 0 {
		return nil
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 200 {
		pageSize = 200
	}
	return &Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// Offset 计算偏移量
func (p *Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Paginate 分页查询，p 为 nil 时不做限制
func Paginate(p *Pagination) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p == nil {
			return db
		}
		return db.Offset(p.Offset()).Limit(p.PageSize)
	}
}

// CoordFilter 精确坐标过滤，Q 与 R 同时给出时生效
type CoordFilter struct {
	Q *int
	R *int
}

func (f CoordFilter) apply(db *gorm.DB, qCol, rCol string) *gorm.DB {
	if f.Q != nil && f.R != nil {
		return db.Where(qCol+" = ? AND "+rCol+" = ?", *f.Q, *f.R)
	}
	return db
}

// BaseRepo 基础仓储实现
type BaseRepo struct {
	db *gorm.DB
}

// NewBaseRepo 创建基础仓储
func NewBaseRepo(db *gorm.DB) *BaseRepo {
	return &BaseRepo{db: db}
}

// GetDB 获取数据库实例
func (r *BaseRepo) GetDB() *gorm.DB {
	return r.db
}

// Transaction 执行事务
func (r *BaseRepo) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

// forUpdate 行锁，SQLite 会忽略该子句
func forUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// findErr 将查询错误转换为应用错误
func findErr(err error, what string) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.NotFound(fmt.Sprintf("%s not found", what))
	}
	return errors.Wrap(err, errors.ErrDatabaseQuery)
}

// writeErr 将写入错误转换为应用错误，唯一约束冲突返回 ErrAlreadyExists
func writeErr(err error, code errors.ErrorCode, conflict string) error {
	if err == nil {
		return nil
	}
	if IsDuplicate(err) {
		return errors.New(errors.ErrAlreadyExists, conflict)
	}
	return errors.Wrap(err, code)
}

// IsDuplicate 是否为唯一约束冲突，需要 gorm.Config.TranslateError
func IsDuplicate(err error) bool {
	return stderrors.Is(err, gorm.ErrDuplicatedKey)
}
