// SPDX-License-Identifier: MIT

package train

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a train from the compact grammar described in the package
// documentation. Surrounding spaces are ignored; letters are
// case-insensitive.
//
// Errors:
//   - ErrBadTrainSpec for anything outside the grammar or non-positive counts
//     (the m of "n+m" may be 0).
func Parse(spec string) (Train, error) {
	name := strings.TrimSpace(spec)
	s := strings.ToUpper(name)
	if s == "" {
		return Train{}, fmt.Errorf("%w: empty", ErrBadTrainSpec)
	}

	mult := 1
	if i := strings.LastIndexByte(s, 'X'); i > 0 {
		k, err := positive(s[i+1:])
		if err != nil {
			return Train{}, fmt.Errorf("%w: %q: multiplier: %v", ErrBadTrainSpec, spec, err)
		}
		mult, s = k, s[:i]
	}

	t := Train{Name: name, MultiplyMajors: 1, MultiplyMinors: 1}
	var err error
	switch {
	case s == "D":
		t.Majors = Unlimited
	case s == "E":
		t.Majors, t.IsETrain, t.IgnoreMinors = Unlimited, true, true
	case s == "TGV":
		t.Majors, t.MultiplyMajors, t.IgnoreMinors = 4, 2, true
	case strings.HasPrefix(s, "H"):
		t.IsHTrain, t.Majors = true, Unlimited
		t.Distance, err = positive(s[1:])
	case strings.HasSuffix(s, "E"):
		t.IsETrain, t.IgnoreMinors = true, true
		t.Majors, err = positive(s[:len(s)-1])
	case strings.Contains(s, "+"):
		major, minor, _ := strings.Cut(s, "+")
		if t.Majors, err = positive(major); err == nil {
			t.Minors, err = nonNegative(minor)
		}
	default:
		t.Majors, err = positive(s)
	}
	if err != nil {
		return Train{}, fmt.Errorf("%w: %q: %v", ErrBadTrainSpec, spec, err)
	}
	t.MultiplyMajors *= mult
	t.MultiplyMinors *= mult

	return t, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// static tables.
func MustParse(spec string) Train {
	t, err := Parse(spec)
	if err != nil {
		panic(err)
	}

	return t
}

// ParseAll parses every spec, stopping at the first error.
func ParseAll(specs []string) ([]Train, error) {
	out := make([]Train, 0, len(specs))
	for _, s := range specs {
		t, err := Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, nil
}

func positive(s string) (int, error) {
	n, err := nonNegative(s)
	if err == nil && n == 0 {
		err = fmt.Errorf("%d is not positive", n)
	}

	return n, err
}

// nonNegative accepts "0"; the minor count of "n+m" may be zero.
func nonNegative(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 || strings.ContainsAny(s[:1], "+-") {
		return 0, fmt.Errorf("%q is not a count", s)
	}

	return n, nil
}

// String returns Name, or a canonical spec when Name is empty.
func (t Train) String() string {
	if t.Name != "" {
		return t.Name
	}
	var s string
	switch {
	case t.IsHTrain:
		s = fmt.Sprintf("H%d", t.Distance)
	case t.IsETrain && t.Majors >= Unlimited:
		s = "E"
	case t.IsETrain:
		s = fmt.Sprintf("%dE", t.Majors)
	case t.Majors >= Unlimited:
		s = "D"
	case t.Minors > 0:
		s = fmt.Sprintf("%d+%d", t.Majors, t.Minors)
	default:
		s = strconv.Itoa(t.Majors)
	}
	if t.MultiplyMajors > 1 && t.MultiplyMajors == t.MultiplyMinors {
		s += "x" + strconv.Itoa(t.MultiplyMajors)
	}

	return s
}

// Type returns the train name without a multiplier suffix, the key used
// by bonus train-type restrictions.
func (t Train) Type() string {
	name := t.String()
	if i := strings.LastIndexAny(name, "xX"); i > 0 {
		if _, err := strconv.Atoi(name[i+1:]); err == nil {
			return name[:i]
		}
	}

	return name
}

// Value returns what t earns at a stop of the given base value.
// Towns score zero for trains that ignore them.
func (t Train) Value(base int, major bool) int {
	if major {
		return base * t.MultiplyMajors
	}
	if t.IgnoreMinors {
		return 0
	}

	return base * t.MultiplyMinors
}

// Dominates reports whether t can do everything u can: same kind, no
// shorter in any limit, strictly longer in one, and no lower multipliers.
// Two identical trains do not dominate each other.
func (t Train) Dominates(u Train) bool {
	if t.IsHTrain != u.IsHTrain || t.IsETrain != u.IsETrain || t.IgnoreMinors != u.IgnoreMinors {
		return false
	}
	if t.MultiplyMajors < u.MultiplyMajors || t.MultiplyMinors < u.MultiplyMinors {
		return false
	}
	if t.IsHTrain {
		return t.Distance > u.Distance ||
			(t.Distance == u.Distance && (t.MultiplyMajors > u.MultiplyMajors || t.MultiplyMinors > u.MultiplyMinors))
	}
	if t.Majors < u.Majors || t.Minors < u.Minors {
		return false
	}

	return t.Majors > u.Majors || t.Minors > u.Minors ||
		t.MultiplyMajors > u.MultiplyMajors || t.MultiplyMinors > u.MultiplyMinors
}
