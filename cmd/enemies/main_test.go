package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-leo/gox/errorx"
	jsoniter "github.com/json-iterator/go"
	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-leo/enemy-factory/enemy"
)

func TestParseRatios(t *testing.T) {
	ratios, err := parseRatios([]string{"boo=1", " Goomba = 2.5", "KOOPA=2"})
	require.NoError(t, err)
	assert.Equal(t, []enemy.Ratio{
		{Kind: enemy.KindBoo, Weight: 1},
		{Kind: enemy.KindGoomba, Weight: 2.5},
		{Kind: enemy.KindKoopa, Weight: 2},
	}, ratios)

	_, err = parseRatios([]string{"boo"})
	assert.ErrorContains(t, err, "want kind=weight")

	_, err = parseRatios([]string{"bowser=1"})
	assert.ErrorIs(t, err, enemy.ErrUnknownKind)

	_, err = parseRatios([]string{"boo=lots"})
	assert.ErrorContains(t, err, "bad weight")

	_, err = parseRatios([]string{"boo=2x"})
	assert.ErrorContains(t, err, "bad weight")
}

func TestFormatRatios(t *testing.T) {
	assert.Equal(t, "Boo:1 Goomba:2 Koopa:2", formatRatios(enemy.DefaultRatios()))
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	err := render(&buf, "text", []enemy.Enemy{enemy.NewBoo(), enemy.NewKoopa()})
	require.NoError(t, err)
	assert.Equal(t, "Boo speed=2\nKoopa speed=3\n", buf.String())
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	err := render(&buf, "JSON", []enemy.Enemy{enemy.NewGoomba(), enemy.NewKoopa()})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	ja := jsonassert.New(t)
	ja.Assertf(lines[0], `{"name": "Goomba", "speed": 2}`)
	ja.Assertf(lines[1], `{"name": "Koopa", "speed": 3}`)

	expected := string(errorx.Ignore(jsoniter.Marshal(viewOf(enemy.NewGoomba()))))
	ja.Assertf(lines[0], expected)
}

func TestSummarize(t *testing.T) {
	var buf bytes.Buffer
	counts := map[enemy.Kind]int{enemy.KindBoo: 1, enemy.KindKoopa: 3}
	expected := map[enemy.Kind]float64{enemy.KindBoo: 0.5, enemy.KindGoomba: 0.25, enemy.KindKoopa: 0.25}
	require.NoError(t, summarize(&buf, counts, 4, expected))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Boo "))
	assert.Contains(t, lines[0], "count=1")
	assert.Contains(t, lines[0], "share=0.250")
	assert.Contains(t, lines[0], "expected=0.500")
	assert.True(t, strings.HasPrefix(lines[1], "Goomba "))
	assert.Contains(t, lines[1], "count=0")
	assert.True(t, strings.HasPrefix(lines[2], "Koopa "))
	assert.Contains(t, lines[2], "share=0.750")
}
