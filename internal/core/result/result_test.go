package result

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrElse(t *testing.T) {
	ok := Of("generated", nil)
	assert.Equal(t, "generated", ok.OrElse(func(error) string { return "fallback" }))

	var seen error
	failed := Of("", errors.New("provider down"))
	got := failed.OrElse(func(err error) string {
		seen = err
		return "fallback"
	})
	assert.Equal(t, "fallback", got)
	assert.EqualError(t, seen, "provider down")
}

func TestTry_RecoversPanic(t *testing.T) {
	r := Try(func() (int, error) {
		var m map[string]int
		m["x"] = 1
		return 1, nil
	})
	require.False(t, r.IsOk())
	assert.Contains(t, r.Err().Error(), "panic")
}

func TestThenAndMap(t *testing.T) {
	r := Ok("12").Then(func(s string) error {
		if s == "" {
			return errors.New("empty")
		}
		return nil
	})
	n := Map(r, strconv.Atoi)
	v, ok := n.Value()
	assert.True(t, ok)
	assert.Equal(t, 12, v)

	bad := Map(Ok("x"), strconv.Atoi)
	assert.False(t, bad.IsOk())

	rejected := Ok("").Then(func(s string) error { return errors.New("empty") })
	assert.EqualError(t, rejected.Err(), "empty")
}

func TestFail_NilCause(t *testing.T) {
	assert.Error(t, Fail[int](nil).Err())
}
