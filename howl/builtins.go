package howl

import "fmt"

// RegisterCoreOps installs the default operation set: arithmetic, stack
// shuffling, and display. New calls this; NewBare does not.
func RegisterCoreOps(interp *Interp) {
	interp.Register("+", func(i *Interp) error {
		b, err := i.stack.PopNumeric()
		if err != nil {
			return err
		}
		a, err := i.stack.PopNumeric()
		if err != nil {
			return err
		}
		i.stack.Push(NewFloat(a + b))
		return nil
	})

	interp.Register("-", func(i *Interp) error {
		b, err := i.stack.PopNumeric()
		if err != nil {
			return err
		}
		a, err := i.stack.PopNumeric()
		if err != nil {
			return err
		}
		i.stack.Push(NewFloat(a - b))
		return nil
	})

	interp.Register("*", func(i *Interp) error {
		b, err := i.stack.PopNumeric()
		if err != nil {
			return err
		}
		a, err := i.stack.PopNumeric()
		if err != nil {
			return err
		}
		i.stack.Push(NewFloat(a * b))
		return nil
	})

	interp.Register("/", func(i *Interp) error {
		b, err := i.stack.PopNumeric()
		if err != nil {
			return err
		}
		a, err := i.stack.PopNumeric()
		if err != nil {
			return err
		}
		if b == 0 {
			return ErrDivisionByZero
		}
		i.stack.Push(NewFloat(a / b))
		return nil
	})

	interp.Register("dup", func(i *Interp) error {
		return i.stack.Dup()
	})

	interp.Register("drop", func(i *Interp) error {
		return i.stack.Drop()
	})

	interp.Register("swap", func(i *Interp) error {
		return i.stack.Swap()
	})

	interp.Register("over", func(i *Interp) error {
		return i.stack.Over()
	})

	// print shows the top value without consuming it.
	interp.Register("print", func(i *Interp) error {
		top, err := i.stack.Peek()
		if err != nil {
			fmt.Fprintln(i.out, "(stack empty)")
			return nil
		}
		fmt.Fprintln(i.out, top.Display())
		return nil
	})

	interp.Register(".s", func(i *Interp) error {
		fmt.Fprintln(i.out, i.stack)
		return nil
	})

	interp.Register("clear", func(i *Interp) error {
		i.stack.Clear()
		return nil
	})
}
