package types

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/cosmos/ibc-tm-lightclient/modules/core/exported"
)

var _ exported.Height = Height{}

// Height is a monotonically increasing data type that can be compared
// against another Height for the purposes of updating and freezing clients.
//
// It consists of two pieces: a revision number, and a height within that
// revision. Revisions bump on a counterparty chain's upgrade; height resets
// to zero at the start of each revision.
type Height struct {
	RevisionNumber uint64 `json:"revision_number" yaml:"revision_number"`
	RevisionHeight uint64 `json:"revision_height" yaml:"revision_height"`
}

// NewHeight constructs a new Height instance.
func NewHeight(revisionNumber, revisionHeight uint64) Height {
	return Height{RevisionNumber: revisionNumber, RevisionHeight: revisionHeight}
}

// ZeroHeight returns a zero-value height.
func ZeroHeight() Height {
	return Height{}
}

// MinHeight returns the reserved "frozen-marker" height for the given
// revision: (revisionNumber, 0). This value is never a legitimate block
// height and is used exclusively to flag a frozen client.
func MinHeight(revisionNumber uint64) Height {
	return Height{RevisionNumber: revisionNumber, RevisionHeight: 0}
}

// GetRevisionNumber returns the revision-number component.
func (h Height) GetRevisionNumber() uint64 { return h.RevisionNumber }

// GetRevisionHeight returns the revision-height component.
func (h Height) GetRevisionHeight() uint64 { return h.RevisionHeight }

// IsZero returns true if both the revision number and height are zero.
func (h Height) IsZero() bool {
	return h.RevisionNumber == 0 && h.RevisionHeight == 0
}

// Compare implements lexicographic ordering on (RevisionNumber, RevisionHeight):
// -1 if h < other, 0 if equal, 1 if h > other.
func (h Height) Compare(other Height) int {
	switch {
	case h.RevisionNumber < other.RevisionNumber:
		return -1
	case h.RevisionNumber > other.RevisionNumber:
		return 1
	case h.RevisionHeight < other.RevisionHeight:
		return -1
	case h.RevisionHeight > other.RevisionHeight:
		return 1
	default:
		return 0
	}
}

// LT returns true if h < other.
func (h Height) LT(other exported.Height) bool {
	return h.Compare(Height{other.GetRevisionNumber(), other.GetRevisionHeight()}) < 0
}

// LTE returns true if h <= other.
func (h Height) LTE(other exported.Height) bool {
	return h.Compare(Height{other.GetRevisionNumber(), other.GetRevisionHeight()}) <= 0
}

// EQ returns true if h == other.
func (h Height) EQ(other exported.Height) bool {
	return h.Compare(Height{other.GetRevisionNumber(), other.GetRevisionHeight()}) == 0
}

// GT returns true if h > other.
func (h Height) GT(other exported.Height) bool {
	return h.Compare(Height{other.GetRevisionNumber(), other.GetRevisionHeight()}) > 0
}

// GTE returns true if h >= other.
func (h Height) GTE(other exported.Height) bool {
	return h.Compare(Height{other.GetRevisionNumber(), other.GetRevisionHeight()}) >= 0
}

// Increment returns a copy of h with the revision height bumped by one.
func (h Height) Increment() exported.Height {
	return Height{RevisionNumber: h.RevisionNumber, RevisionHeight: h.RevisionHeight + 1}
}

// String returns the canonical "revision-height" rendering used throughout
// ibc-go client-state paths and logs.
func (h Height) String() string {
	return fmt.Sprintf("%d-%d", h.RevisionNumber, h.RevisionHeight)
}

// ParseHeight parses a "revision-height" string back into a Height.
func ParseHeight(s string) (Height, error) {
	split := strings.Split(s, "-")
	if len(split) != 2 {
		return Height{}, fmt.Errorf("expected height string format: {revision}-{height}, got: %s", s)
	}
	revisionNumber, err := strconv.ParseUint(split[0], 10, 64)
	if err != nil {
		return Height{}, fmt.Errorf("invalid revision number in height: %s: %w", s, err)
	}
	revisionHeight, err := strconv.ParseUint(split[1], 10, 64)
	if err != nil {
		return Height{}, fmt.Errorf("invalid revision height in height: %s: %w", s, err)
	}
	return Height{RevisionNumber: revisionNumber, RevisionHeight: revisionHeight}, nil
}

// SortHeights sorts heights ascending, lexicographically on
// (RevisionNumber, RevisionHeight) — the ordering archive enumeration and
// pruning rely on.
func SortHeights(heights []Height) {
	sort.Slice(heights, func(i, j int) bool {
		return heights[i].Compare(heights[j]) < 0
	})
}

// revisionFormatRegexp matches chain IDs of the form "{chain-name}-{revision}",
// the convention a counterparty chain's IBC revision number is carried in
// across an upgrade that changes its chain ID.
var revisionFormatRegexp = regexp.MustCompile(`^.*[^-]-([1-9][0-9]*)$`)

// IsRevisionFormat returns true if the chain ID encodes an explicit revision
// number suffix.
func IsRevisionFormat(chainID string) bool {
	return revisionFormatRegexp.MatchString(chainID)
}

// ParseChainID returns the revision number encoded in chainID's "-{N}"
// suffix, or 0 if chainID does not follow the revision-number format.
func ParseChainID(chainID string) uint64 {
	if !IsRevisionFormat(chainID) {
		return 0
	}
	split := strings.Split(chainID, "-")
	revisionNumber, err := strconv.ParseUint(split[len(split)-1], 10, 64)
	if err != nil {
		// IsRevisionFormat already confirmed the suffix is numeric.
		panic(err)
	}
	return revisionNumber
}
