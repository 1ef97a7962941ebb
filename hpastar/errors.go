package hpastar

import (
	"errors"
	"fmt"
)

// Sentinel errors for precondition violations (§7 kind 1). A no-route result
// is not an error — GetIDPath and GetPointPath simply return an empty slice
// and populate the proximity buffer; see api.go.
var (
	// ErrNegativeID indicates a point or region id below zero was supplied.
	ErrNegativeID = errors.New("hpastar: id must be non-negative")

	// ErrWeightBelowZero indicates a weight_scale below zero was supplied.
	ErrWeightBelowZero = errors.New("hpastar: weight_scale must be >= 0")

	// ErrLayerBitReserved indicates a layer mask referenced bit 31 or higher.
	ErrLayerBitReserved = errors.New("hpastar: layer mask bit 31 is reserved")

	// ErrPointNotFound indicates an operation referenced a non-existent point.
	ErrPointNotFound = errors.New("hpastar: point not found")

	// ErrRegionNotFound indicates an operation referenced a non-existent region.
	ErrRegionNotFound = errors.New("hpastar: region not found")

	// ErrEmptyRegionMembers indicates AddRegion was called with no member ids.
	ErrEmptyRegionMembers = errors.New("hpastar: region must have at least one member")

	// ErrRegionMemberMissing indicates a declared region member point does not exist.
	ErrRegionMemberMissing = errors.New("hpastar: region member point does not exist")

	// ErrRegionMemberOwned indicates a declared region member already belongs to another region.
	ErrRegionMemberOwned = errors.New("hpastar: region member already belongs to another region")

	// ErrRegionOriginNotMember indicates the declared origin id is not among the admitted members.
	ErrRegionOriginNotMember = errors.New("hpastar: region origin must be one of its members")

	// ErrStraightLineInstall indicates the straight-line callback failed its
	// installation test against points 0 and 1.
	ErrStraightLineInstall = errors.New("hpastar: straight-line function failed installation test")

	// ErrSamePoint indicates a segment was requested between a point (or
	// region) and itself, by Connect/Disconnect Points or Regions.
	ErrSamePoint = errors.New("hpastar: from and to must differ")
)

// wrapf wraps a sentinel error with additional context, matching the
// teacher's fmt.Errorf("%w: ...", sentinel, ...) idiom used throughout
// dijkstra and core.
func wrapf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
