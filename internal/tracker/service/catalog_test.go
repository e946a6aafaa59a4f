package service

import (
	"testing"

	"github.com/balco/tracker/internal/tracker/store"
	"github.com/balco/tracker/internal/tracker/store/drivers/offline"
	"github.com/stretchr/testify/require"
)

func TestCatalog_ProductTypes(t *testing.T) {
	ctx := testContext()
	c := &CatalogService{Store: newStore(t)}

	pt, err := c.CreateProductType(ctx, ProductTypeInput{Name: " Kapak ", Description: "Çeşitli kapak türleri"})
	require.NoError(t, err)
	require.NotEmpty(t, pt.ID)
	require.Equal(t, "Kapak", pt.Name)

	_, err = c.CreateProductType(ctx, ProductTypeInput{Name: "Conta"})
	require.NoError(t, err)

	_, err = c.CreateProductType(ctx, ProductTypeInput{Name: "Kapak"})
	require.ErrorIs(t, err, ErrDuplicateName)

	_, err = c.CreateProductType(ctx, ProductTypeInput{Name: "  "})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "name")

	list, err := c.ListProductTypes(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Conta", list[0].Name)
	require.Equal(t, "Kapak", list[1].Name)
}

func TestCatalog_Colors(t *testing.T) {
	ctx := testContext()
	c := &CatalogService{Store: newStore(t)}

	col, err := c.CreateColor(ctx, ColorInput{Name: "Turuncu", HexCode: "#ffa500"})
	require.NoError(t, err)
	require.Equal(t, "#FFA500", col.HexCode)

	_, err = c.CreateColor(ctx, ColorInput{Name: "Turuncu", HexCode: "#FFA500"})
	require.ErrorIs(t, err, ErrDuplicateName)

	for _, hex := range []string{"", "FFA500", "#FFA50", "#GGGGGG", "#FFA5000"} {
		_, err = c.CreateColor(ctx, ColorInput{Name: "Bad", HexCode: hex})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, hex)
		require.Contains(t, verr.Fields, "hex_code", hex)
	}

	list, err := c.ListColors(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestCatalog_Offline(t *testing.T) {
	ctx := testContext()
	c := &CatalogService{Store: offline.NewStore()}

	_, err := c.ListProductTypes(ctx)
	require.ErrorIs(t, err, store.ErrUnavailable)

	_, err = c.CreateColor(ctx, ColorInput{Name: "Mor", HexCode: "#800080"})
	require.ErrorIs(t, err, store.ErrUnavailable)
}
