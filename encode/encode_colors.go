package encode

import (
	"fmt"

	"github.com/signadot/bodydump/ir"

	"github.com/fatih/color"
)

// ColorAttr says which part of the output a piece of text is.
type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

// Colors maps pieces of output to color functions.  Pieces without an
// entry in Map go through Default.
type Colors struct {
	Default func(...any) string
	Map     map[Colorable]func(...any) string
}

// NewColors returns the terminal palette: blue field names, cyan numbers,
// green strings and dim punctuation.  The palette is applied even when
// fatih/color would detect no terminal; callers decide.
func NewColors() *Colors {
	c := &Colors{
		Default: fmt.Sprint,
		Map:     map[Colorable]func(...any) string{},
	}
	punct := sprinter(color.FgHiBlack)
	for _, t := range ir.Types() {
		c.Map[Colorable{Type: t, Attr: SepColor}] = punct
	}
	c.Map[Colorable{Type: ir.ObjectType, Attr: FieldColor}] = sprinter(color.FgBlue, color.Bold)
	c.Map[Colorable{Type: ir.NumberType, Attr: ValueColor}] = sprinter(color.FgCyan)
	c.Map[Colorable{Type: ir.StringType, Attr: ValueColor}] = sprinter(color.FgGreen)
	return c
}

func sprinter(attrs ...color.Attribute) func(...any) string {
	c := color.New(attrs...)
	c.EnableColor()
	return c.SprintFunc()
}

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(...any) string {
	if f := c.Map[Colorable{Type: t, Attr: a}]; f != nil {
		return f
	}
	if c.Default == nil {
		return fmt.Sprint
	}
	return c.Default
}
