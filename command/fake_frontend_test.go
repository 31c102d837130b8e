package command

import (
	"context"
	"errors"

	"github.com/mstgnz/sqlengine/dml"
	"github.com/mstgnz/sqlengine/engine"
)

// fakeFrontend is a scripted engine.Frontend for exercising the
// command skins without a real storage driver.
type fakeFrontend struct {
	createErr error
	dropErr   error
	updateN   int64
	updateErr error
}

func (f *fakeFrontend) CreateSchema(ctx context.Context, name string) error {
	return f.createErr
}

func (f *fakeFrontend) DropSchema(ctx context.Context, name string) error {
	return f.dropErr
}

func (f *fakeFrontend) UpdateAll(ctx context.Context, schema, table string, pairs []dml.Pair) (int64, error) {
	return f.updateN, f.updateErr
}

var errGeneric = errors.New("boom")

var _ engine.Frontend = (*fakeFrontend)(nil)
