package enemy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-leo/enemy-factory/factory"
)

var (
	// ErrUnknownKind name does not denote an enemy kind
	ErrUnknownKind = errors.New("unknown enemy kind")
)

// Kind identifies an enemy variant.
type Kind string

const (
	KindBoo    Kind = "Boo"
	KindKoopa  Kind = "Koopa"
	KindGoomba Kind = "Goomba"
)

// Enemy interface.
type Enemy interface {
	Kind() Kind
	Speed() int
}

// Boo This is the ghost.
type Boo struct{}

func (Boo) Kind() Kind { return KindBoo }

func (Boo) Speed() int { return 2 }

// Koopa This is the turtle.
type Koopa struct{}

func (Koopa) Kind() Kind { return KindKoopa }

func (Koopa) Speed() int { return 3 }

// Goomba This is the mushroom.
type Goomba struct{}

func (Goomba) Kind() Kind { return KindGoomba }

func (Goomba) Speed() int { return 2 }

func NewBoo() Enemy { return Boo{} }

func NewKoopa() Enemy { return Koopa{} }

func NewGoomba() Enemy { return Goomba{} }

// Kinds returns every enemy kind in canonical order.
func Kinds() []Kind {
	return []Kind{KindBoo, KindKoopa, KindGoomba}
}

// ParseKind returns the kind named s, ignoring case.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// Constructor returns the constructor of kind k.
func Constructor(k Kind) (factory.Func[Enemy], error) {
	switch k {
	case KindBoo:
		return NewBoo, nil
	case KindKoopa:
		return NewKoopa, nil
	case KindGoomba:
		return NewGoomba, nil
	default:
		return nil, fmt.Errorf("%q: %w", string(k), ErrUnknownKind)
	}
}
