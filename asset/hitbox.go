package asset

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/bodgit/rom8/rom8"
	"golang.org/x/net/html"
)

// ParseHitboxes extracts the key rectangles from face.html markup. Each key
// is a div carrying data-ki and data-ko attributes positioned with left, top,
// width and height in its style. Coordinates are doubled to match the doubled
// face artwork
func ParseHitboxes(b []byte) (rom8.HitKeys, error) {
	z := html.NewTokenizer(bytes.NewReader(b))

	keys := rom8.HitKeys{}
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return keys, nil
			}
			return nil, z.Err()
		case html.StartTagToken, html.SelfClosingTagToken:
			t := z.Token()
			if t.Data != "div" {
				continue
			}

			k, ok, err := hitbox(t.Attr)
			if err != nil {
				return nil, err
			}
			if ok {
				keys = append(keys, k)
			}
		}
	}
}

func hitbox(attrs []html.Attribute) (rom8.HitKey, bool, error) {
	var ki, ko, style string
	for _, a := range attrs {
		switch a.Key {
		case "data-ki":
			ki = a.Val
		case "data-ko":
			ko = a.Val
		case "style":
			style = a.Val
		}
	}

	if ki == "" || ko == "" {
		return rom8.HitKey{}, false, nil
	}

	box, ok := parseStyle(style)
	if !ok {
		return rom8.HitKey{}, false, nil
	}

	kiv, err := strconv.ParseUint(ki, 10, 16)
	if err != nil {
		return rom8.HitKey{}, false, err
	}

	kov, err := strconv.ParseUint(ko, 10, 16)
	if err != nil {
		return rom8.HitKey{}, false, err
	}

	code, err := rom8.Pack(uint16(kiv), uint16(kov))
	if err != nil {
		return rom8.HitKey{}, false, err
	}

	var v [4]uint16
	for i := range box {
		if v[i], err = doubled(box[i]); err != nil {
			return rom8.HitKey{}, false, err
		}
	}

	return rom8.HitKey{
		X:    v[0],
		Y:    v[1],
		W:    v[2],
		H:    v[3],
		Code: uint16(code),
	}, true, nil
}

// doubled scales a pixel value to the doubled artwork, truncating any
// fraction
func doubled(px float64) (uint16, error) {
	d := px * 2
	if math.IsNaN(d) || d < 0 || d >= math.MaxUint16+1 {
		return 0, fmt.Errorf("%w: %gpx", rom8.ErrOutOfRange, px)
	}
	return uint16(d), nil
}

var boxProperties = []string{"left", "top", "width", "height"}

// parseStyle returns the left, top, width and height pixel values of an
// inline style
func parseStyle(style string) ([4]float64, bool) {
	values := make(map[string]float64)
	for _, decl := range strings.Split(style, ";") {
		kv := strings.SplitN(decl, ":", 2)
		if len(kv) != 2 {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(kv[1]), "px"), 64)
		if err != nil {
			continue
		}
		values[strings.TrimSpace(kv[0])] = v
	}

	var box [4]float64
	for i, p := range boxProperties {
		v, ok := values[p]
		if !ok {
			return box, false
		}
		box[i] = v
	}

	return box, true
}
