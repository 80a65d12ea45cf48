package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomplanner/layout"
	"roomplanner/models"
)

func sampleResult() models.LayoutResult {
	return layout.GenerateLayout(models.RoomSpec{Length: 6, Width: 4, Budget: 3000}, []models.FurnitureItem{
		{Name: "Modern Sofa", Category: "sofa", Width: 2.0, Depth: 0.9, Price: 800},
		{Name: "Wooden Coffee Table", Category: "coffee", Width: 1.0, Depth: 0.5, Price: 200},
		{Name: "TV Stand", Category: "tvstand", Width: 1.5, Depth: 0.4, Price: 300},
	})
}

func TestChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Chart(&buf, sampleResult()))

	html := buf.String()
	assert.Contains(t, html, "<html")
	assert.Contains(t, html, "Room layout")
	assert.Contains(t, html, "Modern Sofa")
	assert.Contains(t, html, "TV Stand")
}

func TestOutlineIsClosed(t *testing.T) {
	data := outline(1, 2, 3, 4)

	require.Len(t, data, 5)
	assert.Equal(t, data[0].Value, data[4].Value)
	assert.Equal(t, []interface{}{4.0, 6.0}, data[2].Value)
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, sampleResult(), 60))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 6*60+40, img.Bounds().Dx())
	assert.Equal(t, 4*60+40, img.Bounds().Dy())
}

func TestPNG_RejectsBadScale(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, PNG(&buf, sampleResult(), 0))
}
