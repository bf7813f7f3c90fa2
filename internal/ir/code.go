package ir

import (
	"io"
)

// Code is the ordered instruction list produced by a translation run.
type Code struct {
	instrs []Instruction
}

func NewCode() *Code {
	return &Code{}
}

func (c *Code) Append(instrs ...Instruction) {
	c.instrs = append(c.instrs, instrs...)
}

// Instructions returns the emitted list in appearance order.
func (c *Code) Instructions() []Instruction {
	return c.instrs
}

func (c *Code) Len() int {
	return len(c.instrs)
}

// Dump writes the textual listing, one instruction per line.
func (c *Code) Dump(w io.Writer) error {
	for _, ins := range c.instrs {
		if _, err := io.WriteString(w, ins.String()+"\n"); err != nil {
			return err
		}
	}
	return nil
}
