package room

import "errors"

var ErrInvalidRoomType = errors.New("invalid room type")

type Type string

const (
	TypeSingle    Type = "SINGLE"
	TypeDouble    Type = "DOUBLE"
	TypeTwin      Type = "TWIN"
	TypeSuite     Type = "SUITE"
	TypeDeluxe    Type = "DELUXE"
	TypePenthouse Type = "PENTHOUSE"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeSingle, TypeDouble, TypeTwin, TypeSuite, TypeDeluxe, TypePenthouse:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidRoomType
	}
	return t, nil
}
