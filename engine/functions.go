package engine

import (
	"database/sql/driver"
	"fmt"
	"sync"

	sqlite "modernc.org/sqlite"

	"github.com/viant/coverdesign/combo"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterCoverFunctions registers cover_overlap, cover_covers and
// cover_size with the driver so they are available on connections opened
// after this call. Existing open connections will not see new functions.
//
//	cover_overlap(a, b)    number of values shared by two encoded combinations
//	cover_covers(a, b, s)  1 when cover_overlap(a, b) >= s, else 0
//	cover_size(a)          number of values in an encoded combination
//
// A NULL combination argument makes cover_overlap and cover_covers return
// NULL. Encode maps the empty combination to nil, so callers storing empty
// combinations must test for NULL themselves.
func RegisterCoverFunctions() error {
	registerOnce.Do(func() {
		registerErr = registerAll()
	})
	return registerErr
}

func registerAll() error {
	if err := sqlite.RegisterDeterministicScalarFunction("cover_overlap", 2, coverOverlapImpl); err != nil {
		return err
	}
	if err := sqlite.RegisterDeterministicScalarFunction("cover_covers", 3, coverCoversImpl); err != nil {
		return err
	}
	return sqlite.RegisterDeterministicScalarFunction("cover_size", 1, coverSizeImpl)
}

func asCombination(arg driver.Value) ([]int, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return combo.Decode(v)
	default:
		return nil, fmt.Errorf("cover: unsupported argument type %T for combination; want BLOB", arg)
	}
}

func coverOverlapImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("cover_overlap: expected 2 arguments, got %d", len(args))
	}
	a, err := asCombination(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asCombination(args[1])
	if err != nil {
		return nil, err
	}
	if a == nil || b == nil {
		return nil, nil
	}
	return int64(combo.Overlap(a, b)), nil
}

func coverCoversImpl(ctx *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("cover_covers: expected 3 arguments, got %d", len(args))
	}
	s, ok := args[2].(int64)
	if !ok {
		return nil, fmt.Errorf("cover_covers: threshold must be INTEGER, got %T", args[2])
	}
	n, err := coverOverlapImpl(ctx, args[:2])
	if err != nil || n == nil {
		return nil, err
	}
	if n.(int64) >= s {
		return int64(1), nil
	}
	return int64(0), nil
}

func coverSizeImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("cover_size: expected 1 argument, got %d", len(args))
	}
	a, err := asCombination(args[0])
	if err != nil {
		return nil, err
	}
	return int64(len(a)), nil
}
