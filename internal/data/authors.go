// internal/data/authors.go
package data

import (
	"context"
	"time"
)

// Author represents a row in the "authors" table.
type Author struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateAuthorInput holds the fields a client must supply when creating an author.
type CreateAuthorInput struct {
	Name  string `json:"name"  validate:"required,notblank"`
	Email string `json:"email" validate:"required,notblank,email"`
}

// UpdateAuthorInput holds the fields a client may change. Every field is a
// pointer so "not provided" (nil) differs from an empty value.
type UpdateAuthorInput struct {
	Name  *string `json:"name"  validate:"omitempty,notblank"`
	Email *string `json:"email" validate:"omitempty,notblank,email"`
}

// Patch returns the assignments for the fields that were provided.
func (in UpdateAuthorInput) Patch() Patch {
	var p Patch
	if in.Name != nil {
		p.Set(ColumnName, *in.Name)
	}
	if in.Email != nil {
		p.Set(ColumnEmail, *in.Email)
	}
	return p
}

func scanAuthor(rs rowScanner) (Author, error) {
	var a Author
	err := rs.Scan(&a.ID, &a.Name, &a.Email, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// AuthorModel provides the queries over the authors table.
type AuthorModel struct {
	exec Executor
}

// EmailExists reports whether an author already uses email.
func (m AuthorModel) EmailExists(ctx context.Context, email string) (bool, error) {
	return m.exec.Exists(ctx, ColumnEmail, email, TableAuthors)
}

// Insert adds a new author and returns the stored row.
func (m AuthorModel) Insert(ctx context.Context, in CreateAuthorInput) (*Author, error) {
	stmt := `INSERT INTO authors (name, email) VALUES ($1, $2)
		RETURNING ` + TableAuthors.selectList()
	return queryRow(ctx, m.exec, scanAuthor, stmt, in.Name, in.Email)
}

// Get returns the author with the given id or ErrRecordNotFound.
func (m AuthorModel) Get(ctx context.Context, id int64) (*Author, error) {
	return getRow(ctx, m.exec, scanAuthor, TableAuthors, id)
}

// GetAll returns one page of authors.
func (m AuthorModel) GetAll(ctx context.Context, filters Filters) (RowSet[Author], error) {
	return list(ctx, m.exec, scanAuthor, TableAuthors, Where{}, filters)
}

// Update applies the provided fields and refreshes updated_at.
func (m AuthorModel) Update(ctx context.Context, id int64, in UpdateAuthorInput) (*Author, error) {
	return updateRow(ctx, m.exec, scanAuthor, TableAuthors, in.Patch(), id, true)
}

// Delete removes the author with the given id and returns the deleted row.
func (m AuthorModel) Delete(ctx context.Context, id int64) (*Author, error) {
	return deleteRow(ctx, m.exec, scanAuthor, TableAuthors, id)
}
