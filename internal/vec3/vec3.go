// Package vec3 provides the three-component vector used for positions,
// tile coordinates and directions on the wire.
package vec3

import "fmt"

// Number is the set of component types a Vec3 can carry.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Vec3 is an (x, y, z) triple.
type Vec3[T Number] struct {
	X, Y, Z T
}

// Of builds a Vec3 from its components.
func Of[T Number](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Components returns the components in wire order so a Vec3 flattens to
// three positional arguments.
func (v Vec3[T]) Components() []any {
	return []any{v.X, v.Y, v.Z}
}

// Add returns the component-wise sum.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("Vec3(%v, %v, %v)", v.X, v.Y, v.Z)
}

// ToInt truncates each component toward zero.
func ToInt[T Number](v Vec3[T]) Vec3[int] {
	return Vec3[int]{X: int(v.X), Y: int(v.Y), Z: int(v.Z)}
}
