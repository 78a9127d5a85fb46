package convert

import "errors"

var (
	ErrInvalidChoice = errors.New("invalid choice")
	ErrNonPositive   = errors.New("value must be positive")
)

type Intish interface {
	int | int8 | int16 | int32 | int64
}

type Uintish interface {
	uint | uint8 | uint16 | uint32 | uint64
}

type Floatish interface {
	float32 | float64
}
