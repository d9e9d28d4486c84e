// Package geomap renders an interactive Leaflet point map of wind
// installations. Records without usable coordinates are left off the
// map; they never fail the render.
package geomap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"math"

	"github.com/galeworks/windreport/internal/dataset"
	"github.com/galeworks/windreport/internal/utils"
)

// Options controls map rendering.
type Options struct {
	// Zoom is the initial zoom level; <=0 falls back to 4.
	Zoom int
	// TileURL is the tile layer template; empty falls back to OSM.
	TileURL string
}

const defaultTileURL = "https://tile.openstreetmap.org/{z}/{x}/{y}.png"

type marker struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Project  string  `json:"project"`
	Facility string  `json:"facility"`
	Capacity string  `json:"capacity"`
}

type pageData struct {
	Title     string
	CenterLat float64
	CenterLon float64
	Zoom      int
	TileURL   string
	Markers   template.JS
}

// Render produces the HTML document. The map is centered at the mean
// latitude/longitude of the records that carry valid coordinates; with
// no such records it centers on (0, 0) and simply has no markers.
func Render(t *dataset.Table, opt Options) ([]byte, error) {
	zoom := opt.Zoom
	if zoom <= 0 {
		zoom = 4
	}
	tiles := opt.TileURL
	if tiles == "" {
		tiles = defaultTileURL
	}

	// Always a JSON array, never null, so the page script can iterate
	// an empty map.
	markers := []marker{}
	var sumLat, sumLon float64
	for _, rec := range t.Records {
		if !rec.HasCoords {
			continue
		}
		// ParseFloat accepts "NaN" and "Inf"; such coordinates cannot
		// be placed (and would not survive json.Marshal), so they are
		// excluded like any other unmappable record.
		if !finite(rec.Latitude) || !finite(rec.Longitude) {
			continue
		}
		capText := "n/a"
		if rec.Capacity.Valid {
			capText = fmt.Sprintf("%.2f MW", rec.Capacity.MW)
		}
		markers = append(markers, marker{
			Lat:      rec.Latitude,
			Lon:      rec.Longitude,
			Project:  rec.ProjectName,
			Facility: rec.Facility,
			Capacity: capText,
		})
		sumLat += rec.Latitude
		sumLon += rec.Longitude
	}
	data := pageData{
		Title:   "Wind Installations",
		Zoom:    zoom,
		TileURL: tiles,
	}
	if len(markers) > 0 {
		data.CenterLat = sumLat / float64(len(markers))
		data.CenterLon = sumLon / float64(len(markers))
	}
	mj, err := json.Marshal(markers)
	if err != nil {
		return nil, fmt.Errorf("marshal markers: %w", err)
	}
	data.Markers = template.JS(mj)

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render map: %w", err)
	}
	return buf.Bytes(), nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// WriteFile renders the map and writes the HTML atomically.
func WriteFile(path string, t *dataset.Table, opt Options) error {
	b, err := Render(t, opt)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(path, b)
}

var pageTmpl = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>html, body, #map { height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
<script>
var map = L.map('map').setView([{{.CenterLat}}, {{.CenterLon}}], {{.Zoom}});
L.tileLayer('{{.TileURL}}', {
  attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);
var markers = {{.Markers}};
markers.forEach(function (m) {
  L.circleMarker([m.lat, m.lon], { radius: 5, color: 'blue', fill: true })
    .bindPopup('Project: ' + m.project + '<br>' +
               'Facility: ' + m.facility + '<br>' +
               'Capacity: ' + m.capacity)
    .addTo(map);
});
</script>
</body>
</html>
`))
