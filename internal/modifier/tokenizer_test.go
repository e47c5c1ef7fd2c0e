package modifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenizer() *Tokenizer {
	return NewTokenizer(":", []string{"sm", "md", "lg", "xl", "2xl"}, []string{"sm", "md", "lg"})
}

func TestSplit(t *testing.T) {
	tk := newTestTokenizer()

	mods, base := tk.Split("md:hover:rounded-lg")
	require.Len(t, mods, 2)
	assert.Equal(t, "rounded-lg", base)
	assert.Equal(t, Responsive{seg: seg{"md"}, Name: "md"}, mods[0])
	assert.Equal(t, Pseudo{seg: seg{"hover"}, Name: "hover"}, mods[1])

	mods, base = tk.Split("bg-[url(a:b)]")
	assert.Empty(t, mods)
	assert.Equal(t, "bg-[url(a:b)]", base)
}

func TestClassify(t *testing.T) {
	tk := newTestTokenizer()

	tests := []struct {
		segment string
		want    Modifier
	}{
		{"md", Responsive{seg: seg{"md"}, Name: "md"}},
		{"max-lg", Responsive{seg: seg{"max-lg"}, Name: "lg", Max: true}},
		{"min-[900px]", Breakpoint{seg: seg{"min-[900px]"}, Width: "900px"}},
		{"max-[600px]", Breakpoint{seg: seg{"max-[600px]"}, Width: "600px", Max: true}},
		{"hover", Pseudo{seg: seg{"hover"}, Name: "hover"}},
		{"first", Pseudo{seg: seg{"first"}, Name: "first"}},
		{"before", PseudoElement{seg: seg{"before"}, Name: "before"}},
		{"open", State{seg: seg{"open"}, Name: "open"}},
		{"group-hover", Group{seg: seg{"group-hover"}, State: "hover"}},
		{"group-focus/item", Group{seg: seg{"group-focus/item"}, State: "focus", Name: "item"}},
		{"group-[.is-active]", Group{seg: seg{"group-[.is-active]"}, Selector: ".is-active"}},
		{"peer-checked", Peer{seg: seg{"peer-checked"}, State: "checked"}},
		{"aria-checked", Aria{seg: seg{"aria-checked"}, Name: "checked", Value: "true"}},
		{"aria-[sort=ascending]", Aria{seg: seg{"aria-[sort=ascending]"}, Name: "sort", Value: "ascending"}},
		{"data-active", Data{seg: seg{"data-active"}, Name: "active"}},
		{"data-[state=open]", Data{seg: seg{"data-[state=open]"}, Name: "state", Value: "open"}},
		{"[dir=rtl]", Attribute{seg: seg{"[dir=rtl]"}, Attr: "dir", Op: "=", Value: "rtl"}},
		{"[hidden]", Attribute{seg: seg{"[hidden]"}, Attr: "hidden"}},
		{"has-checked", Logical{seg: seg{"has-checked"}, Op: "has", Selector: ":checked"}},
		{"not-[.x]", Logical{seg: seg{"not-[.x]"}, Op: "not", Selector: ".x"}},
		{"nth-3", Nth{seg: seg{"nth-3"}, Value: "3"}},
		{"nth-[2n+1]", Nth{seg: seg{"nth-[2n+1]"}, Value: "2n+1"}},
		{"nth-last-2", Nth{seg: seg{"nth-last-2"}, Value: "2", Last: true}},
		{"nth-of-type-2", NthOfType{seg: seg{"nth-of-type-2"}, Value: "2"}},
		{"nth-last-of-type-4", NthLastOfType{seg: seg{"nth-last-of-type-4"}, Value: "4"}},
		{"[&:nth-child(3)]", Arbitrary{seg: seg{"[&:nth-child(3)]"}, Selector: "&:nth-child(3)"}},
		{"[&_p]", Arbitrary{seg: seg{"[&_p]"}, Selector: "& p"}},
		{"[@media(min-width:900px)]", Arbitrary{seg: seg{"[@media(min-width:900px)]"}, AtRule: "@media(min-width:900px)"}},
		{"dark", DarkMode{seg: seg{"dark"}}},
		{"motion-reduce", Motion{seg: seg{"motion-reduce"}, Reduce: true}},
		{"rtl", Direction{seg: seg{"rtl"}, RTL: true}},
		{"print", Media{seg: seg{"print"}, Name: "print", Query: "print"}},
		{"supports-[display:grid]", Supports{seg: seg{"supports-[display:grid]"}, Condition: "(display: grid)"}},
		{"@md", Container{seg: seg{"@md"}, Size: "md"}},
		{"@max-sm", Container{seg: seg{"@max-sm"}, Size: "sm", Max: true}},
		{"@[400px]", Container{seg: seg{"@[400px]"}, Width: "400px"}},
		{"@lg/sidebar", Container{seg: seg{"@lg/sidebar"}, Size: "lg", Name: "sidebar"}},
		{"wiggle", Unknown{seg: seg{"wiggle"}}},
		{"group-wiggle", Unknown{seg: seg{"group-wiggle"}}},
		{"[no-ampersand.x]", Unknown{seg: seg{"[no-ampersand.x]"}}},
	}

	for _, tt := range tests {
		t.Run(tt.segment, func(t *testing.T) {
			got := tk.Classify(tt.segment)
			require.Equal(t, tt.want, got)
			assert.Equal(t, tt.segment, got.Raw())
		})
	}
}

func TestAriaBeforeAttribute(t *testing.T) {
	tk := newTestTokenizer()
	got := tk.Classify("aria-[expanded=false]")
	assert.Equal(t, KindAria, got.Kind())
}

func TestKeyIsCanonical(t *testing.T) {
	tk := newTestTokenizer()
	a, _ := tk.Split("hover:md:before:group-hover:x")
	b, _ := tk.Split("group-hover:before:md:hover:x")

	assert.Equal(t, "md:group-hover:hover:before", Key(a))
	assert.Equal(t, Key(a), Key(b))
}

func TestPartition(t *testing.T) {
	tk := newTestTokenizer()
	mods, _ := tk.Split("dark:after:md:focus:x")
	selectors, wrappers := Partition(mods)

	require.Len(t, wrappers, 2)
	assert.Equal(t, "dark", wrappers[0].Raw())
	assert.Equal(t, "md", wrappers[1].Raw())
	require.Len(t, selectors, 2)
	assert.Equal(t, "focus", selectors[0].Raw())
	assert.Equal(t, "after", selectors[1].Raw())
}

func TestFamilyOf(t *testing.T) {
	tk := newTestTokenizer()
	assert.Equal(t, FamilyResponsive, FamilyOf(tk.Classify("lg")))
	assert.Equal(t, FamilyResponsive, FamilyOf(tk.Classify("@md")))
	assert.Equal(t, FamilyState, FamilyOf(tk.Classify("hover")))
	assert.Equal(t, FamilyEnvironment, FamilyOf(tk.Classify("dark")))

	_, found := HasUnknown([]Modifier{tk.Classify("hover"), tk.Classify("bogus")})
	assert.True(t, found)
}
