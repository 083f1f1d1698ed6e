package products

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildUpdate(t *testing.T) {
	nombre := "Widget"
	precio := 6.50

	query, args := buildUpdate(Changes{Nombre: &nombre, Precio: &precio}, 7)

	assert.Equal(t, "UPDATE productos SET nombre = $1, precio = $2 WHERE id = $3", query)
	assert.Equal(t, []any{"Widget", 6.50, int64(7)}, args)
}

func TestBuildUpdate_SingleField(t *testing.T) {
	stock := int64(3)

	query, args := buildUpdate(Changes{Stock: &stock}, 2)

	assert.Equal(t, "UPDATE productos SET stock = $1 WHERE id = $2", query)
	assert.Equal(t, []any{int64(3), int64(2)}, args)
}
