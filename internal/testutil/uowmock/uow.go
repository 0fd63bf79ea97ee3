package uowmock

import (
	"context"
	"errors"

	"stockroom-backend/internal/domain/material"
	"stockroom-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn         func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinMaterialTxFn func(ctx context.Context, materialID uint64, fn func(r uow.Repos, m *material.Material) error) error
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinMaterialTx(fn func(context.Context, uint64, func(uow.Repos, *material.Material) error) error) *UoW {
	m.WithinMaterialTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinMaterialTx(ctx context.Context, materialID uint64, fn func(r uow.Repos, mat *material.Material) error) error {
	if m.WithinMaterialTxFn != nil {
		return m.WithinMaterialTxFn(ctx, materialID, fn)
	}
	return errUnimplemented
}
