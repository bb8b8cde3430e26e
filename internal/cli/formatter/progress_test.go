package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderUsageBar_Percentages(t *testing.T) {
	assert.Contains(t, RenderUsageBar(0.5, 10), " 50%")
	assert.Contains(t, RenderUsageBar(0.971, 10), " 97%")
	assert.Contains(t, RenderUsageBar(0, 10), "  0%")
}

func TestRenderUsageBar_ClampsOutOfRange(t *testing.T) {
	assert.Contains(t, RenderUsageBar(1.8, 10), "100%")
	assert.Contains(t, RenderUsageBar(-0.4, 10), "  0%")
}

func TestRenderUsageBar_FillProportion(t *testing.T) {
	out := RenderUsageBar(0.5, 8)
	assert.Contains(t, out, "████░░░░")
}
