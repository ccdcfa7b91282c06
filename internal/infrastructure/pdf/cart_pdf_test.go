package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/infrastructure/pdf"
)

func sampleLines() []*entity.CartLine {
	return []*entity.CartLine{
		{CartID: 1, ProductID: 10, Name: "Linen shirt", Category: "men", Price: decimal.RequireFromString("19.99"), Quantity: 1},
		{CartID: 2, ProductID: 10, Name: "Linen shirt", Category: "men", Price: decimal.RequireFromString("19.99"), Quantity: 1},
		{CartID: 3, ProductID: 11, Name: "Silk dress", Category: "women", Price: decimal.RequireFromString("49.50"), Quantity: 1},
	}
}

func TestGenerateCartPDF_DevuelvePDF(t *testing.T) {
	gen := pdf.NewMarotoCartPDFGenerator("storefront-api")

	out, err := gen.GenerateCartPDF(context.Background(), sampleLines())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un PDF")
}

func TestGenerateCartPDF_CarritoVacio(t *testing.T) {
	gen := pdf.NewMarotoCartPDFGenerator("storefront-api")

	out, err := gen.GenerateCartPDF(context.Background(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestTotal(t *testing.T) {
	assert.Equal(t, "89.48", pdf.Total(sampleLines()).StringFixed(2))
	assert.True(t, pdf.Total(nil).IsZero())
}
