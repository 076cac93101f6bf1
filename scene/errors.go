package scene

import "errors"

var (
	ErrUnknownGeometry = errors.New("scene: unknown geometry handle")
	ErrUnknownMaterial = errors.New("scene: unknown material handle")
	ErrUnknownCamera   = errors.New("scene: unknown camera handle")
)
