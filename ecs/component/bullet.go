package component

import "fmt"

// BulletKind is a closed enumeration of projectile variants. Adding a kind
// means adding a constant here and a metadata entry under bullets in
// tuning.yaml.
type BulletKind int

const (
	BulletBall BulletKind = iota
)

func (k BulletKind) String() string {
	switch k {
	case BulletBall:
		return "ball"
	default:
		return fmt.Sprintf("BulletKind(%d)", int(k))
	}
}

// ParseBulletKind maps a prefab kind name to its variant.
func ParseBulletKind(name string) (BulletKind, error) {
	switch name {
	case "ball":
		return BulletBall, nil
	default:
		return 0, fmt.Errorf("unknown bullet kind %q", name)
	}
}

// Bullet marks a pooled projectile slot. The pool is the only mutator of
// bullet state.
type Bullet struct {
	Kind BulletKind
}

var BulletComponent = NewComponent[Bullet]()

// BulletInactive tags a parked slot: hidden, excluded from collision, and
// available for reuse by the next spawn request.
type BulletInactive struct{}

var BulletInactiveComponent = NewComponent[BulletInactive]()
