package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetClassWeightDisabledByFlag(t *testing.T) {
	doc := parseFragment(t, `<div class="article" id="content"></div>`)
	div := doc.Find("div").First()
	assert.Equal(t, 0, getClassWeight(div, false))
}

func TestGetClassWeightCombinesClassAndID(t *testing.T) {
	doc := parseFragment(t, `<div class="article" id="content"></div>`)
	div := doc.Find("div").First()
	assert.Equal(t, 50, getClassWeight(div, true))
}

func TestGetClassWeightNegative(t *testing.T) {
	doc := parseFragment(t, `<div class="sidebar" id="widget"></div>`)
	div := doc.Find("div").First()
	assert.Equal(t, -50, getClassWeight(div, true))
}

func TestGetClassWeightRangeBound(t *testing.T) {
	doc := parseFragment(t, `<div class="article sidebar" id="content widget"></div>`)
	div := doc.Find("div").First()
	w := getClassWeight(div, true)
	assert.GreaterOrEqual(t, w, -50)
	assert.LessOrEqual(t, w, 50)
}
