package model_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/tagbump/pkg/domain/model"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		expected model.Version
		matched  bool
	}{
		{name: "full tag", tag: "v1.2.3", expected: model.Version{Major: 1, Minor: 2, Fix: 3}, matched: true},
		{name: "without prefix", tag: "4.5.6", expected: model.Version{Major: 4, Minor: 5, Fix: 6}, matched: true},
		{name: "two groups", tag: "v1.2", expected: model.Version{Major: 1, Minor: 2}, matched: true},
		{name: "one group", tag: "v7", expected: model.Version{Major: 7}, matched: true},
		{name: "wildcard fix", tag: "v1.2.*", expected: model.Version{Major: 1, Minor: 2}, matched: true},
		{name: "seed tag", tag: "v0.0.0", expected: model.Version{}, matched: true},
		{name: "large numbers", tag: "v10.200.3000", expected: model.Version{Major: 10, Minor: 200, Fix: 3000}, matched: true},
		{name: "empty", tag: "", expected: model.Version{}, matched: false},
		{name: "not a version", tag: "latest", expected: model.Version{}, matched: false},
		{name: "prerelease suffix", tag: "v1.2.3-rc.1", expected: model.Version{}, matched: false},
		{name: "four groups", tag: "v1.2.3.4", expected: model.Version{}, matched: false},
		{name: "overflow", tag: "v99999999999999999999.0.0", expected: model.Version{}, matched: false},
		{name: "upper case prefix", tag: "V1.2.3", expected: model.Version{}, matched: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, model.ParseTag(tt.tag)).Equal(tt.expected)

			v, ok := model.LookupTag(tt.tag)
			gt.Value(t, v).Equal(tt.expected)
			gt.Value(t, ok).Equal(tt.matched)
		})
	}
}

func TestLookupTag_BumpOverflow(t *testing.T) {
	maxTag := fmt.Sprintf("v%d.0.0", math.MaxInt)
	v, ok := model.LookupTag(maxTag)
	gt.Value(t, ok).Equal(false)
	gt.Value(t, v).Equal(model.Version{})

	for _, tag := range []string{
		fmt.Sprintf("v1.%d.0", math.MaxInt),
		fmt.Sprintf("v1.2.%d", math.MaxInt),
	} {
		_, ok := model.LookupTag(tag)
		gt.Value(t, ok).Equal(false)
	}

	// the largest accepted number still bumps to a positive value
	v, ok = model.LookupTag(fmt.Sprintf("v%d.0.0", math.MaxInt-1))
	gt.Value(t, ok).Equal(true)
	next := v.Bump(model.BumpMajor)
	gt.Value(t, next.Major).Equal(math.MaxInt)
	gt.True(t, next.Major > 0)
}

func TestParseTag_RoundTrip(t *testing.T) {
	for _, major := range []int{0, 1, 9, 42} {
		for _, minor := range []int{0, 3, 17} {
			for _, fix := range []int{0, 1, 100} {
				v := model.Version{Major: major, Minor: minor, Fix: fix}
				t.Run(v.String(), func(t *testing.T) {
					gt.Value(t, model.ParseTag("v"+v.String())).Equal(v)
					gt.Value(t, model.ParseTag(v.Tag())).Equal(v)
				})
			}
		}
	}
}

func TestParseTag_Total(t *testing.T) {
	inputs := []string{"v", "v.", "v..", "...", "v1..2", "<major>", "v-1.0.0", "\n", "v1.2.3\n", "日本語"}
	for i, in := range inputs {
		t.Run(fmt.Sprintf("input %d", i), func(t *testing.T) {
			gt.Value(t, model.ParseTag(in)).Equal(model.Version{})
		})
	}
}

func TestVersion_Format(t *testing.T) {
	v := model.Version{Major: 1, Minor: 2, Fix: 3}
	gt.String(t, v.String()).Equal("1.2.3")
	gt.String(t, v.Tag()).Equal("v1.2.3")
	gt.String(t, model.Version{}.String()).Equal("0.0.0")
}

func TestVersion_Bump(t *testing.T) {
	v := model.Version{Major: 1, Minor: 2, Fix: 3}

	tests := []struct {
		kind     model.BumpKind
		expected model.Version
	}{
		{kind: model.BumpMajor, expected: model.Version{Major: 2}},
		{kind: model.BumpMinor, expected: model.Version{Major: 1, Minor: 3}},
		{kind: model.BumpPatch, expected: model.Version{Major: 1, Minor: 2, Fix: 4}},
		{kind: model.BumpKind("hotfix"), expected: model.Version{Major: 1, Minor: 2, Fix: 4}},
		{kind: model.BumpKind(""), expected: model.Version{Major: 1, Minor: 2, Fix: 4}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			next := v.Bump(tt.kind)
			gt.Value(t, next).Equal(tt.expected)
			gt.Number(t, next.Compare(v)).Equal(1)
		})
	}

	// original is untouched
	gt.Value(t, v).Equal(model.Version{Major: 1, Minor: 2, Fix: 3})
}

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		a, b     model.Version
		expected int
	}{
		{a: model.Version{Major: 1}, b: model.Version{Major: 1}, expected: 0},
		{a: model.Version{Major: 1, Minor: 10}, b: model.Version{Major: 1, Minor: 9}, expected: 1},
		{a: model.Version{Fix: 1}, b: model.Version{Minor: 1}, expected: -1},
		{a: model.Version{Major: 2}, b: model.Version{Major: 1, Minor: 99, Fix: 99}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.a.String()+" vs "+tt.b.String(), func(t *testing.T) {
			gt.Number(t, tt.a.Compare(tt.b)).Equal(tt.expected)
		})
	}
}
