package main

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/go-leo/enemy-factory/enemy"
)

type enemyView struct {
	Name  enemy.Kind `json:"name"`
	Speed int        `json:"speed"`
}

func viewOf(e enemy.Enemy) enemyView {
	return enemyView{Name: e.Kind(), Speed: e.Speed()}
}

// render writes one enemy per line.
func render(w io.Writer, format string, batch []enemy.Enemy) error {
	switch strings.ToLower(format) {
	case "json":
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		for _, e := range batch {
			if err := enc.Encode(viewOf(e)); err != nil {
				return fmt.Errorf("couldn't encode enemy: %w", err)
			}
		}
		return nil
	default:
		for _, e := range batch {
			if _, err := fmt.Fprintf(w, "%s speed=%d\n", e.Kind(), e.Speed()); err != nil {
				return err
			}
		}
		return nil
	}
}

// summarize writes observed counts and shares next to the expected shares, sorted by kind.
func summarize(w io.Writer, counts map[enemy.Kind]int, total int, expected map[enemy.Kind]float64) error {
	kinds := maps.Keys(expected)
	for k := range counts {
		if _, ok := expected[k]; !ok {
			kinds = append(kinds, k)
		}
	}
	slices.Sort(kinds)
	for _, k := range kinds {
		var share float64
		if total > 0 {
			share = float64(counts[k]) / float64(total)
		}
		if _, err := fmt.Fprintf(w, "%-8s count=%-6d share=%.3f expected=%.3f\n", k, counts[k], share, expected[k]); err != nil {
			return err
		}
	}
	return nil
}
