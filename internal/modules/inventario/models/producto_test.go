package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockBajo(t *testing.T) {
	assert.True(t, (&Producto{Stock: 0}).StockBajo())
	assert.True(t, (&Producto{Stock: 9}).StockBajo())
	assert.False(t, (&Producto{Stock: 10}).StockBajo())
	assert.False(t, (&Producto{Stock: 250}).StockBajo())
}
