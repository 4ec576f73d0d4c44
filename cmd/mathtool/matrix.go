package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	gomath "math"
	"strconv"

	"github.com/Faultbox/midgard-math/internal/config"
	"github.com/Faultbox/midgard-math/pkg/math"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseMatrix(args []string, usage string) (math.Mat4, error) {
	if len(args) != 16 {
		return math.Mat4{}, errUsage(usage)
	}
	vals, err := parseFloats(args)
	if err != nil {
		return math.Mat4{}, err
	}
	var a [16]float64
	copy(a[:], vals)
	return math.FromArray(a), nil
}

func printMatrix(w io.Writer, m math.Mat4) {
	for r := 0; r < 4; r++ {
		row := m.Row(r)
		fmt.Fprintf(w, "  %12.6f %12.6f %12.6f %12.6f\n", row.X, row.Y, row.Z, row.W)
	}
}

func degrees(v math.Vec3) math.Vec3 {
	return v.Scale(180 / gomath.Pi)
}

func cmdInvert(args []string, out io.Writer) error {
	const usage = "invert [-general] m11 m12 .. m44"
	fs := newFlagSet("invert")
	general := fs.Bool("general", false, "Use Gauss-Jordan with full pivoting")
	if err := fs.Parse(args); err != nil {
		return errUsage(usage)
	}

	m, err := parseMatrix(fs.Args(), usage)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Determinant: %g\n", m.Determinant())

	if *general {
		inv, err := m.InvertGeneral()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Inverse:")
		printMatrix(out, inv)
		return nil
	}

	inv, ok := m.InvertFastOK()
	if !ok {
		fmt.Fprintf(out, "Singular (|det| <= %g): transpose returned instead of an inverse\n", math.EpsilonDouble)
		fmt.Fprintln(out, "Transpose:")
		printMatrix(out, inv)
		return nil
	}
	fmt.Fprintln(out, "Inverse:")
	printMatrix(out, inv)
	return nil
}

func cmdDecompose(cfg *config.Config, args []string, out io.Writer) error {
	m, err := parseMatrix(args, "decompose m11 m12 .. m44")
	if err != nil {
		return err
	}
	if !m.IsAffine() {
		return errors.New("matrix is not affine (bottom row must be 0 0 0 1)")
	}

	order := cfg.EulerOrder()
	t, r, _ := m.Decompose()
	s := m.Scale()
	e := degrees(r.EulerAngles(order))

	fmt.Fprintf(out, "Translation: %g %g %g\n", t.X, t.Y, t.Z)
	fmt.Fprintf(out, "Rotation (%s, degrees): %g %g %g\n", order, e.X, e.Y, e.Z)
	fmt.Fprintf(out, "Scale: %g %g %g\n", s.X, s.Y, s.Z)
	return nil
}

func cmdEuler(cfg *config.Config, args []string, out io.Writer) error {
	const usage = "euler [-order zxy] x y z"
	fs := newFlagSet("euler")
	orderName := fs.String("order", cfg.Math.EulerOrder, "Rotation order")
	if err := fs.Parse(args); err != nil {
		return errUsage(usage)
	}
	if fs.NArg() != 3 {
		return errUsage(usage)
	}

	order, err := math.ParseEulerOrder(*orderName)
	if err != nil {
		return err
	}
	vals, err := parseFloats(fs.Args())
	if err != nil {
		return err
	}

	in := math.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}
	m := math.RotateEuler(in.Scale(gomath.Pi/180), order)
	back := degrees(m.EulerAngles(order))

	fmt.Fprintf(out, "Order: %s\n", order)
	fmt.Fprintln(out, "Matrix:")
	printMatrix(out, m)
	fmt.Fprintf(out, "Extracted (degrees): %g %g %g\n", back.X, back.Y, back.Z)
	return nil
}
