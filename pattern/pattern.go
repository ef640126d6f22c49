package pattern

import (
	"strings"

	"github.com/zeebo/errs"
)

// Error is the error class for malformed patterns and text that does not
// fit its pattern.
var Error = errs.Class("pattern")

// Separators configures the decimal and grouping characters of a pattern.
type Separators struct {
	Decimal  rune
	Grouping rune
}

// Default separators: '.' decimal and ',' grouping.
var Default = Separators{
	Decimal:  '.',
	Grouping: ',',
}

// Invert returns the separators with decimal and grouping swapped.
func (s Separators) Invert() Separators {
	return Separators{
		Decimal:  s.Grouping,
		Grouping: s.Decimal,
	}
}

// Choose returns Default, inverted if invert is set.
func Choose(invert bool) Separators {
	if invert {
		return Default.Invert()
	}

	return Default
}

func (s Separators) validate() error {
	switch {
	case s.Decimal == s.Grouping:
		return Error.New("decimal and grouping separators are both %q", s.Decimal)
	case s.Decimal == '#' || s.Decimal == '0':
		return Error.New("invalid decimal separator %q", s.Decimal)
	case s.Grouping == '#' || s.Grouping == '0':
		return Error.New("invalid grouping separator %q", s.Grouping)
	}

	return nil
}

// Class is the class of a pattern character.
type Class struct {
	Abbr string
}

// Pattern character classes.
var (
	Invalid   = Class{"x"}
	Optional  = Class{"#"}
	Mandatory = Class{"0"}
	Grouping  = Class{"g"}
	Point     = Class{"p"}
	Space     = Class{"s"}
)

// Placeholder returns true for digit placeholders.
func (c Class) Placeholder() bool {
	return c == Optional || c == Mandatory
}

// Classify returns the class of r. A grouping separator configured as a
// space classifies as Grouping.
func (s Separators) Classify(r rune) Class {
	switch r {
	case '#':
		return Optional
	case '0':
		return Mandatory
	case s.Grouping:
		return Grouping
	case s.Decimal:
		return Point
	case ' ':
		return Space
	}

	return Invalid
}

// Segment is one side of the decimal point: literal spaces around a
// contiguous run of placeholders and grouping separators.
type Segment struct {
	Lead  string
	Run   []Class
	Trail string
}

func (s Segment) count(c Class) (n int) {
	for _, rc := range s.Run {
		if rc == c {
			n++
		}
	}

	return n
}

// Mandatory returns the number of '0' placeholders.
func (s Segment) Mandatory() int {
	return s.count(Mandatory)
}

// Width returns the number of digit placeholders.
func (s Segment) Width() int {
	return s.count(Optional) + s.count(Mandatory)
}

// Grouped returns true if the run contains a grouping separator.
func (s Segment) Grouped() bool {
	return s.count(Grouping) > 0
}

// Places returns the digit placeholders of the run in order.
func (s Segment) Places() []Class {
	places := make([]Class, 0, len(s.Run))
	for _, c := range s.Run {
		if c.Placeholder() {
			places = append(places, c)
		}
	}

	return places
}

// Compressed returns the run's abbreviations with consecutive mandatory
// placeholders merged into one.
func (s Segment) Compressed() string {
	sb := &strings.Builder{}

	var prev Class
	for _, c := range s.Run {
		if c == Mandatory && prev == Mandatory {
			continue
		}

		sb.WriteString(c.Abbr)
		prev = c
	}

	return sb.String()
}

// Pattern is a parsed display pattern.
type Pattern struct {
	Source     string
	Separators Separators

	Major    Segment
	HasPoint bool
	Minor    Segment
}

// Parse parses and validates pattern using the given separators.
func Parse(pattern string, seps Separators) (p *Pattern, err error) {
	defer Error.WrapP(&err)

	err = seps.validate()
	if err != nil {
		return nil, err
	}

	p = &Pattern{
		Source:     pattern,
		Separators: seps,
	}

	major, minor := pattern, ""
	if i := strings.IndexRune(pattern, seps.Decimal); i >= 0 {
		major = pattern[:i]
		minor = pattern[i+len(string(seps.Decimal)):]
		p.HasPoint = true
	}

	p.Major, err = parseSegment(major, seps)
	if err != nil {
		return nil, err
	}

	if p.HasPoint {
		p.Minor, err = parseSegment(minor, seps)
		if err != nil {
			return nil, err
		}
	}

	if p.Major.Width() == 0 && p.Minor.Width() == 0 {
		return nil, Error.New("no digit placeholders in %q", pattern)
	}

	// Mandatory digits trail the major run: once an optional digit is
	// seen from the end, no mandatory digit may follow.
	optional := false
	for i := len(p.Major.Run) - 1; i >= 0; i-- {
		switch p.Major.Run[i] {
		case Optional:
			optional = true
		case Mandatory:
			if optional {
				return nil, Error.New("mandatory digits not trailing in major part %q", p.Major.Compressed())
			}
		}
	}

	// Mandatory digits lead the minor run, next to the point.
	optional = false
	for _, c := range p.Minor.Run {
		switch c {
		case Optional:
			optional = true
		case Mandatory:
			if optional {
				return nil, Error.New("mandatory digits not leading in minor part %q", p.Minor.Compressed())
			}
		}
	}

	return p, nil
}

func parseSegment(s string, seps Separators) (seg Segment, err error) {
	const (
		lead = iota
		run
		trail
	)

	state := lead
	start, end := 0, len(s)

	for i, r := range s {
		c := seps.Classify(r)

		switch c {
		case Invalid:
			return seg, Error.New("invalid character %q", r)
		case Point:
			return seg, Error.New("more than one decimal separator %q", r)
		case Space:
			if state == run {
				state = trail
				end = i
			}

			continue
		}

		switch state {
		case lead:
			state = run
			start = i
		case trail:
			return seg, Error.New("placeholders not contiguous in %q", s)
		}

		seg.Run = append(seg.Run, c)
	}

	switch state {
	case lead:
		seg.Lead = s
	case run:
		seg.Lead = s[:start]
	case trail:
		seg.Lead = s[:start]
		seg.Trail = s[end:]
	}

	return seg, nil
}

// Money returns the placeholder and separator characters of the pattern
// with literal spaces removed.
func (p *Pattern) Money() string {
	return strings.Map(func(r rune) rune {
		if p.Separators.Classify(r) == Space {
			return -1
		}

		return r
	}, p.Source)
}
