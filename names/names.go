// Package names generates random first names and groups them by length.
package names

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/Pallinder/go-randomdata"
	"github.com/samber/lo"
)

const separator = "-------------------------------------"

// Generator produces random first names.
type Generator struct {
	gender int
}

// Option configures a Generator.
type Option func(*Generator)

// WithGender restricts names to randomdata.Male or randomdata.Female.
// The default, randomdata.RandomGender, mixes both.
func WithGender(gender int) Option {
	return func(g *Generator) {
		g.gender = gender
	}
}

// WithSeed reseeds the randomdata source shared by every Generator in the
// process. A zero seed leaves the source untouched.
func WithSeed(seed int64) Option {
	return func(*Generator) {
		if seed != 0 {
			randomdata.CustomRand(rand.New(rand.NewSource(seed)))
		}
	}
}

// NewGenerator returns a Generator with opts applied.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{gender: randomdata.RandomGender}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Next returns one random first name.
func (g *Generator) Next() string {
	return randomdata.FirstName(g.gender)
}

// Take returns n random first names. n <= 0 yields an empty slice.
func (g *Generator) Take(n int) []string {
	if n <= 0 {
		return []string{}
	}
	return lo.Times(n, func(int) string { return g.Next() })
}

// GroupByLength buckets names by rune count. Names keep their input order
// within a bucket.
func GroupByLength(names []string) map[int][]string {
	return lo.GroupBy(names, func(name string) int {
		return utf8.RuneCountInString(name)
	})
}

// SortedLengths returns the bucket keys of groups in ascending order.
func SortedLengths(groups map[int][]string) []int {
	lengths := lo.Keys(groups)
	slices.Sort(lengths)
	return lengths
}

// Report is a printable summary of a name list and its length groups.
type Report struct {
	Names  []string
	Groups map[int][]string
}

// NewReport groups names and wraps both in a Report.
func NewReport(names []string) Report {
	return Report{
		Names:  names,
		Groups: GroupByLength(names),
	}
}

// WriteTo implements io.WriterTo. It prints the list, every group, then
// every group again prefixed with its length. Groups are ordered by length.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	lengths := SortedLengths(r.Groups)

	fmt.Fprintf(&buf, "my list: %s\n", bracket(r.Names))
	fmt.Fprintln(&buf, separator)
	for _, n := range lengths {
		fmt.Fprintln(&buf, bracket(r.Groups[n]))
	}
	fmt.Fprintln(&buf, separator)
	for _, n := range lengths {
		fmt.Fprintf(&buf, "%d->%s\n", n, bracket(r.Groups[n]))
	}

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

func bracket(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
