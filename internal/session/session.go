package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/segments/dbg"
	"github.com/osuushi/segments/internal/logger"
	"github.com/osuushi/segments/segments"
	"github.com/pkg/errors"
)

// A session reads whitespace separated tokens. Unless the capacity is given up
// front, the first token is the number of segments the collection holds. After
// that come commands, each a single letter followed by its operands:
//
//	A x1 y1 x2 y2   add a segment
//	R x1 y1 x2 y2   remove the first segment with exactly these endpoints
//	D               display every segment and how each pair relates
//	I x1 y1 x2 y2   list segments intersecting the given one (not implemented)
//	C x y           find the segment whose line is nearest the point
//	P               closed polygon check (not implemented)
//
// No failure ends the session. Each one prints a message and the next command
// is read. Only the end of input, or a malformed segment count, stops it.

// Called after the report is printed for D
type Drawer interface {
	Draw(c *segments.SegmentCollection) error
}

type Options struct {
	// Negative means read it from the input
	Capacity int
	Color    bool
	// Added right after the collection is created, before any command
	Preload []segments.LineSegment
	// Optional
	Drawer Drawer
}

type Session struct {
	scanner    *bufio.Scanner
	out        io.Writer
	au         aurora.Aurora
	opts       Options
	collection *segments.SegmentCollection
}

var errEndOfInput = errors.New("end of input")

func New(in io.Reader, out io.Writer, opts Options) *Session {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Session{
		scanner: scanner,
		out:     out,
		au:      aurora.NewAurora(opts.Color),
		opts:    opts,
	}
}

// Nil until Run has created it
func (s *Session) Collection() *segments.SegmentCollection {
	return s.collection
}

// Process commands until the input runs out
func (s *Session) Run() error {
	capacity := s.opts.Capacity
	if capacity < 0 {
		token, ok := s.next()
		if !ok {
			if err := s.scanner.Err(); err != nil {
				return errors.Wrap(err, "reading segment count")
			}
			return errors.New("missing segment count")
		}
		var err error
		capacity, err = strconv.Atoi(token)
		if err != nil || capacity < 0 {
			return errors.Errorf("invalid segment count %q", token)
		}
	}
	s.collection = segments.NewSegmentCollection(capacity)
	logger.Debug("Created collection with capacity %d", capacity)
	s.preload()

	for {
		token, ok := s.next()
		if !ok {
			break
		}
		if err := s.dispatch(token); err != nil {
			if errors.Cause(err) == errEndOfInput {
				logger.Debug("Input ended in the middle of command %s", token)
				break
			}
			return err
		}
	}
	return errors.Wrap(s.scanner.Err(), "reading commands")
}

func (s *Session) preload() {
	for _, segment := range s.opts.Preload {
		if err := s.collection.Add(segment); err != nil {
			logger.Warn("Skipped preloaded segment %s: %v", segment, err)
			continue
		}
		logger.Debug("Preloaded %s %s", dbg.Name(segment), segment)
	}
}

func (s *Session) dispatch(command string) error {
	switch command {
	case "A":
		return s.add()
	case "R":
		return s.remove()
	case "D":
		s.display()
	case "I":
		return s.intersects()
	case "C":
		return s.closest()
	case "P":
		s.polygon()
	default:
		logger.Debug("Invalid command %q", command)
		s.respond("Invalid command")
	}
	return nil
}

func (s *Session) add() error {
	segment, ok, err := s.readSegment()
	if err != nil || !ok {
		return err
	}
	if err := s.collection.Add(segment); err != nil {
		logger.Debug("Rejected %s: %v", dbg.Name(segment), err)
		s.exception(err)
		return nil
	}
	logger.Debug("Added %s %s", dbg.Name(segment), segment)
	s.respond("Line segment added")
	return nil
}

func (s *Session) remove() error {
	segment, ok, err := s.readSegment()
	if err != nil || !ok {
		return err
	}
	if err := s.collection.RemoveMatching(segment.P1, segment.P2); err != nil {
		logger.Debug("Remove missed: %v", err)
		s.exception(err)
		return nil
	}
	logger.Debug("Removed %s %s", dbg.Name(segment), segment)
	s.respond("Line segment removed")
	return nil
}

func (s *Session) display() {
	writeReport(s.out, s.au, s.collection.Report())
	fmt.Fprintln(s.out)

	if s.opts.Drawer != nil {
		if err := s.opts.Drawer.Draw(s.collection); err != nil {
			logger.Warn("Drawing failed: %v", err)
		}
	}
}

func (s *Session) intersects() error {
	segment, ok, err := s.readSegment()
	if err != nil || !ok {
		return err
	}
	if _, err := s.collection.FindAllIntersects(segment); err != nil {
		logger.Debug("%v", err)
		s.notImplemented("I")
	}
	return nil
}

func (s *Session) closest() error {
	coords, ok, err := s.readNumbers(2)
	if err != nil || !ok {
		return err
	}
	point := segments.NewPoint(coords[0], coords[1])
	index, err := s.collection.NearestTo(point)
	if err != nil {
		s.exception(err)
		return nil
	}
	s.respond(fmt.Sprintf("The Line segment closest to the given point is:Line segment %d", index+1))
	return nil
}

func (s *Session) polygon() {
	if _, err := s.collection.ClosedPolygon(); err != nil {
		logger.Debug("%v", err)
		s.notImplemented("P")
	}
}

// Output helpers. Every response is followed by a blank line.

func (s *Session) respond(line string) {
	fmt.Fprintf(s.out, "%s\n\n", line)
}

func (s *Session) exception(err error) {
	s.respond(fmt.Sprintf("%s,%s", s.au.Red("Exception"), exceptionMessage(err)))
}

func (s *Session) notImplemented(command string) {
	s.respond(fmt.Sprintf("Command %s %s", command, s.au.Yellow("not implemented")))
}

func exceptionMessage(err error) string {
	switch segments.KindOf(err) {
	case segments.CapacityExceeded:
		return "capacity exceeded"
	case segments.SegmentNotFound:
		return "line segment not found"
	case segments.GeometryUndefined:
		return "geometry undefined"
	case segments.UnsupportedOperation:
		return "not implemented"
	}
	return err.Error()
}

// Input helpers

func (s *Session) next() (string, bool) {
	if s.scanner.Scan() {
		return s.scanner.Text(), true
	}
	return "", false
}

// Read n numbers. All n tokens are consumed even if one is malformed, so that
// a typo doesn't turn the remaining operands into commands. When ok is false
// the problem has already been reported and the command should be dropped.
func (s *Session) readNumbers(n int) (values []float64, ok bool, err error) {
	values = make([]float64, n)
	ok = true
	for i := range values {
		token, more := s.next()
		if !more {
			return nil, false, errEndOfInput
		}
		value, parseErr := strconv.ParseFloat(token, 64)
		if parseErr != nil {
			logger.Debug("Invalid operand %q", token)
			ok = false
			continue
		}
		values[i] = value
	}
	if !ok {
		s.respond("Invalid operands")
		return nil, false, nil
	}
	return values, true, nil
}

func (s *Session) readSegment() (segments.LineSegment, bool, error) {
	coords, ok, err := s.readNumbers(4)
	if err != nil || !ok {
		return segments.LineSegment{}, ok, err
	}
	return segments.NewLineSegment(
		segments.NewPoint(coords[0], coords[1]),
		segments.NewPoint(coords[2], coords[3]),
	), true, nil
}
