package geometry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
	"github.com/twpayne/go-geom/encoding/geojson"
)

const (
	DefaultSRID = 4326
	DefaultCRS  = "EPSG:4326"
)

var (
	ErrInvalidGeometry = errors.New("invalid geometry")
	ErrUnsupportedCRS  = errors.New("unsupported coordinate reference system")
)

// Decode converts a stored geometry into a GeoJSON geometry object. Stored
// geometries are (E)WKB as produced by PostGIS, coordinates are kept in the
// stored lon/lat order. A nil value means there is no geometry and yields nil
// without error; every other unrecognised value fails.
func Decode(raw any) (*geojson.Geometry, error) {
	var g geom.T

	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []byte:
		if v == nil {
			return nil, nil
		}
		if len(v) == 0 {
			return nil, fmt.Errorf("%w: empty value", ErrInvalidGeometry)
		}

		t, err := ewkb.Unmarshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidGeometry, err.Error())
		}
		g = t
	case geom.T:
		g = v
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidGeometry, raw)
	}

	if srid := g.SRID(); srid != 0 && srid != DefaultSRID {
		return nil, fmt.Errorf("%w: srid %d, expected %d", ErrInvalidGeometry, srid, DefaultSRID)
	}

	gj, err := geojson.Encode(g)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidGeometry, err.Error())
	}

	return gj, nil
}

// NegotiateCRS validates an Accept-Crs header value and returns the CRS the
// response is written in.
func NegotiateCRS(acceptCrs string) (string, error) {
	crs := strings.TrimSpace(acceptCrs)
	if crs == "" || strings.EqualFold(crs, DefaultCRS) {
		return DefaultCRS, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedCRS, crs)
}
