package mapper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   uint
	Name string
}

type item struct {
	Name string
}

func TestMapSlice(t *testing.T) {
	t.Run("nil input stays nil", func(t *testing.T) {
		assert.Nil(t, MapSlice[int, int](nil, func(i int) int { return i }))
	})

	t.Run("maps every element in order", func(t *testing.T) {
		got := MapSlice([]int{1, 2, 3}, func(i int) int { return i * 10 })
		assert.Equal(t, []int{10, 20, 30}, got)
	})
}

func TestMapSlicePtrWithID(t *testing.T) {
	toItem := func(r *row) (*item, error) {
		if r.Name == "" {
			return nil, errors.New("empty name")
		}
		return &item{Name: r.Name}, nil
	}
	getID := func(r *row) uint { return r.ID }

	t.Run("skips nil rows", func(t *testing.T) {
		got, err := MapSlicePtrWithID([]*row{{ID: 1, Name: "Kyiv"}, nil, {ID: 2, Name: "Lviv"}}, toItem, getID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Lviv", got[1].Name)
	})

	t.Run("error carries the row id", func(t *testing.T) {
		_, err := MapSlicePtrWithID([]*row{{ID: 7}}, toItem, getID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "item ID 7")
	})
}
