package svgimport

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/segments/segments"
	"github.com/pkg/errors"
)

// This is not a full svg reader. It walks the document and converts the three
// straight-edged elements into segments, in document order:
//
//   - <line x1 y1 x2 y2> is one segment
//   - <polyline points> is one segment per consecutive pair of points
//   - <polygon points> is the same, plus the edge closing the ring
//
// Transforms, paths and everything else are ignored.

func LoadFile(fname string) ([]segments.LineSegment, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, errors.Wrapf(err, "opening svg %q", fname)
	}
	defer file.Close()

	result, err := Parse(file)
	if err != nil {
		return nil, errors.Wrapf(err, "loading svg %q", fname)
	}
	return result, nil
}

func Parse(r io.Reader) ([]segments.LineSegment, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var result []segments.LineSegment
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		found, err := elementSegments(el)
		if err != nil {
			return err
		}
		result = append(result, found...)
		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	return result, nil
}

func elementSegments(el *svgparser.Element) ([]segments.LineSegment, error) {
	switch el.Name {
	case "line":
		var coords [4]float64
		for i, name := range []string{"x1", "y1", "x2", "y2"} {
			value, err := parseNumber(el.Attributes[name])
			if err != nil {
				return nil, errors.Wrapf(err, "<line> attribute %s", name)
			}
			coords[i] = value
		}
		return []segments.LineSegment{
			segments.NewLineSegment(
				segments.NewPoint(coords[0], coords[1]),
				segments.NewPoint(coords[2], coords[3]),
			),
		}, nil

	case "polyline", "polygon":
		points, err := parsePoints(el.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "<%s> points", el.Name)
		}
		var result []segments.LineSegment
		for i := 0; i+1 < len(points); i++ {
			result = append(result, segments.NewLineSegment(points[i], points[i+1]))
		}
		// Close the ring, unless it is already closed or too short to be one
		if el.Name == "polygon" && len(points) > 2 && !points[0].Equals(points[len(points)-1]) {
			result = append(result, segments.NewLineSegment(points[len(points)-1], points[0]))
		}
		return result, nil
	}
	return nil, nil
}

// Points lists are numbers separated by commas and/or whitespace, taken in
// x, y pairs
func parsePoints(str string) ([]segments.Point, error) {
	fields := strings.Fields(strings.ReplaceAll(str, ",", " "))
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", str)
	}

	points := make([]segments.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := parseNumber(fields[i])
		if err != nil {
			return nil, err
		}
		y, err := parseNumber(fields[i+1])
		if err != nil {
			return nil, err
		}
		points = append(points, segments.NewPoint(x, y))
	}
	return points, nil
}

func parseNumber(str string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return 0, errors.Errorf("invalid number %q", str)
	}
	return value, nil
}
