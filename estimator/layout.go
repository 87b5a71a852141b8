package estimator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLayoutTarget is returned when the target dimensions cannot be
// applied by a layout policy.
var ErrInvalidLayoutTarget = errors.New("invalid layout target")

// LayoutMode selects how the computed dimensions of a unit are reconciled
// with a target footprint.
type LayoutMode int

// Layout modes.
const (
	LayoutNone LayoutMode = iota
	LayoutAutoRescale
	LayoutOverride
)

func (m LayoutMode) String() string {
	switch m {
	case LayoutNone:
		return "none"
	case LayoutAutoRescale:
		return "auto"
	case LayoutOverride:
		return "override"
	default:
		return fmt.Sprintf("LayoutMode(%d)", int(m))
	}
}

// ParseLayoutMode converts "none", "auto", or "override" into a LayoutMode.
func ParseLayoutMode(s string) (LayoutMode, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return LayoutNone, nil
	case "auto", "magic":
		return LayoutAutoRescale, nil
	case "override":
		return LayoutOverride, nil
	default:
		return LayoutNone, fmt.Errorf("unknown layout mode %q", s)
	}
}

// LayoutPolicy adjusts the area, height, and width of a unit toward its
// target dimensions.
type LayoutPolicy interface {
	Adjust(u *Unit) error
}

// PolicyFor returns the policy that implements the given mode.
func PolicyFor(mode LayoutMode) LayoutPolicy {
	switch mode {
	case LayoutAutoRescale:
		return AutoRescale{}
	case LayoutOverride:
		return Override{}
	default:
		return KeepLayout{}
	}
}

// KeepLayout leaves the unit as computed.
type KeepLayout struct{}

// Adjust does nothing.
func (KeepLayout) Adjust(*Unit) error {
	return nil
}

// AutoRescale keeps the area and derives one dimension from the other. Only
// one of NewHeight and NewWidth can be given.
type AutoRescale struct{}

// Adjust fixes the given dimension and stretches the other to keep the area.
func (AutoRescale) Adjust(u *Unit) error {
	switch {
	case u.NewHeight != 0 && u.NewWidth != 0:
		return fmt.Errorf("%w: auto rescale takes either a height or a width",
			ErrInvalidLayoutTarget)
	case u.NewHeight < 0 || u.NewWidth < 0:
		return fmt.Errorf("%w: negative target dimension",
			ErrInvalidLayoutTarget)
	case u.NewHeight > 0:
		u.Height = u.NewHeight
		u.Width = u.Area / u.Height
	case u.NewWidth > 0:
		u.Width = u.NewWidth
		u.Height = u.Area / u.Width
	}

	return nil
}

// Override replaces the dimensions with the targets. The area follows the new
// dimensions.
type Override struct{}

// Adjust sets the height and width to the targets.
func (Override) Adjust(u *Unit) error {
	if u.NewHeight == 0 || u.NewWidth == 0 {
		return fmt.Errorf("%w: override requires both a height and a width",
			ErrInvalidLayoutTarget)
	}

	u.Height = u.NewHeight
	u.Width = u.NewWidth
	u.Area = u.Height * u.Width

	return nil
}
