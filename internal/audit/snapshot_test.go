package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	previous := Snapshot{"nombre": "Ana", "salario": 4500.0, "activo": true}

	t.Run("No Changes", func(t *testing.T) {
		next := Snapshot{"nombre": "Ana", "salario": 4500.0, "activo": true}
		changed, err := Diff(previous, next)
		assert.NoError(t, err)
		assert.Empty(t, changed)
	})

	t.Run("Changed Fields Sorted", func(t *testing.T) {
		next := Snapshot{"nombre": "Eva", "salario": 5000.0, "activo": true}
		changed, err := Diff(previous, next)
		assert.NoError(t, err)
		assert.Equal(t, []string{"nombre", "salario"}, changed)
	})

	t.Run("Fields Only In Next Are Ignored", func(t *testing.T) {
		next := Snapshot{"nombre": "Ana", "telefono": "12345678"}
		changed, err := Diff(previous, next)
		assert.NoError(t, err)
		assert.Empty(t, changed)
	})

	t.Run("Nil And Value Differ", func(t *testing.T) {
		prev := Snapshot{"telefono": nil}
		next := Snapshot{"telefono": "12345678"}
		changed, err := Diff(prev, next)
		assert.NoError(t, err)
		assert.Equal(t, []string{"telefono"}, changed)
	})
}

func TestEncode(t *testing.T) {
	t.Run("Nil Snapshot", func(t *testing.T) {
		encoded, err := Encode(nil)
		assert.NoError(t, err)
		assert.Nil(t, encoded)
	})

	t.Run("Stable Key Order", func(t *testing.T) {
		snap := Snapshot{"b": 2, "a": 1, "c": 3}
		first, err := Encode(snap)
		assert.NoError(t, err)
		second, err := Encode(snap)
		assert.NoError(t, err)
		assert.Equal(t, *first, *second)
		assert.Equal(t, `{"a":1,"b":2,"c":3}`, *first)
	})
}

func TestCaptureIsDetached(t *testing.T) {
	record := &trackedRecord{ID: 7, Name: "Ana", Salary: 4500, Active: true}
	snap := Capture(record)

	record.Name = "Eva"

	assert.Equal(t, "Ana", snap["nombre_completo"])
}
