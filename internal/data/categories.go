// internal/data/categories.go
package data

import "context"

// Category represents a row in the "categories" table.
type Category struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
}

// CategoryInput is the body of both create and update requests.
type CategoryInput struct {
	Category string `json:"category" validate:"required,notblank"`
}

func scanCategory(rs rowScanner) (Category, error) {
	var c Category
	err := rs.Scan(&c.ID, &c.Category)
	return c, err
}

// CategoryModel provides the queries over the categories table.
type CategoryModel struct {
	exec Executor
}

// Exists reports whether a category with the given name is already stored.
func (m CategoryModel) Exists(ctx context.Context, name string) (bool, error) {
	return m.exec.Exists(ctx, ColumnCategory, name, TableCategories)
}

func (m CategoryModel) Insert(ctx context.Context, in CategoryInput) (*Category, error) {
	stmt := `INSERT INTO categories (category) VALUES ($1)
		RETURNING ` + TableCategories.selectList()
	return queryRow(ctx, m.exec, scanCategory, stmt, in.Category)
}

func (m CategoryModel) Get(ctx context.Context, id int64) (*Category, error) {
	return getRow(ctx, m.exec, scanCategory, TableCategories, id)
}

func (m CategoryModel) GetAll(ctx context.Context, filters Filters) (RowSet[Category], error) {
	return list(ctx, m.exec, scanCategory, TableCategories, Where{}, filters)
}

func (m CategoryModel) Update(ctx context.Context, id int64, in CategoryInput) (*Category, error) {
	var p Patch
	p.Set(ColumnCategory, in.Category)
	return updateRow(ctx, m.exec, scanCategory, TableCategories, p, id, false)
}

func (m CategoryModel) Delete(ctx context.Context, id int64) (*Category, error) {
	return deleteRow(ctx, m.exec, scanCategory, TableCategories, id)
}
