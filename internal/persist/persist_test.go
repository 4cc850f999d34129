package persist_test

import (
	"context"
	"errors"
	"testing"

	"todoform/internal/model"
	"todoform/internal/persist"
	"todoform/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingKV struct{}

func (failingKV) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("disk on fire")
}

func (failingKV) Put(context.Context, string, []byte) error { return errors.New("disk on fire") }

func TestSaveThenLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := store.NewMemory()

	in := []model.DescribedTask{{ID: "a", Task: "Walk", Description: "dog"}, {ID: "b"}}
	require.NoError(t, persist.Save(ctx, kv, model.KeyTodoWithDescription, in))

	got := persist.Load[model.DescribedTask](ctx, kv, model.KeyTodoWithDescription, nil)
	assert.Equal(t, in, got)
}

func TestLoad_FailSoft(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cases := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "{oops"},
		{name: "empty array", raw: "[]"},
		{name: "object instead of array", raw: `{"id":"a","task":"x"}`},
		{name: "missing id", raw: `[{"task":"x"}]`},
		{name: "empty id", raw: `[{"id":"","task":"x"}]`},
		{name: "non-string field", raw: `[{"id":"a","task":3}]`},
		{name: "duplicate ids", raw: `[{"id":"a","task":"x"},{"id":"a","task":"y"}]`},
		{name: "null", raw: "null"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kv := store.NewMemory()
			require.NoError(t, kv.Put(ctx, model.KeyTodoList, []byte(tc.raw)))
			assert.Nil(t, persist.Load[model.Task](ctx, kv, model.KeyTodoList, nil))
		})
	}

	t.Run("absent key", func(t *testing.T) {
		assert.Nil(t, persist.Load[model.Task](ctx, store.NewMemory(), model.KeyTodoList, nil))
	})
	t.Run("store error", func(t *testing.T) {
		assert.Nil(t, persist.Load[model.Task](ctx, failingKV{}, model.KeyTodoList, nil))
	})
}

func TestRead_ReportsOnlyStoreErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	xs, err := persist.Read[model.Task](ctx, failingKV{}, model.KeyTodoList, nil)
	assert.Nil(t, xs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")

	kv := store.NewMemory()
	require.NoError(t, kv.Put(ctx, model.KeyTodoList, []byte("{oops")))
	xs, err = persist.Read[model.Task](ctx, kv, model.KeyTodoList, nil)
	assert.Nil(t, xs)
	assert.NoError(t, err, "malformed content is not a read failure")

	xs, err = persist.Read[model.Task](ctx, store.NewMemory(), model.KeyTodoList, nil)
	assert.Nil(t, xs)
	assert.NoError(t, err)
}

func TestLoad_MissingOptionalFieldsDecodeBlank(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Put(ctx, model.KeyTodoWithDescription, []byte(`[{"id":"a","task":"Walk"}]`)))

	got := persist.Load[model.DescribedTask](ctx, kv, model.KeyTodoWithDescription, nil)
	require.Len(t, got, 1)
	assert.Equal(t, model.DescribedTask{ID: "a", Task: "Walk"}, got[0])
}

func TestCheck_ReportsProblems(t *testing.T) {
	t.Parallel()

	err := persist.Check([]byte(`[{"id":"a","task":1}]`))
	var se *persist.SchemaError
	require.ErrorAs(t, err, &se)
	assert.NotEmpty(t, se.Problems)

	assert.NoError(t, persist.Check([]byte(`[{"id":"a","task":"x","description":""}]`)))
}

func TestSave_NilWritesEmptyArray(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := store.NewMemory()

	require.NoError(t, persist.Save[model.Task](ctx, kv, "k", nil))
	b, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", string(b))
}
