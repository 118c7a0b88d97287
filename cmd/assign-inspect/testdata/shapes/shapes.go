// Package shapes is a fixture for the assign-inspect tests.
package shapes

type Shape interface{ Area() float64 }

type Named interface{ Name() string }

type NamedShape interface {
	Shape
	Named
}

type Square struct{ Side float64 }

func (s Square) Area() float64 { return s.Side * s.Side }

func (s *Square) Name() string { return "square" }

type Circle struct{ R float64 }

func (c Circle) Area() float64 { return 3 * c.R * c.R }
