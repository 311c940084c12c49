package valueobject

import "fmt"

// RepairType is an immutable value object for the most recent repair category
// recorded against an asset.
type RepairType struct {
	value string
}

var (
	RepairTypeRoutine    = RepairType{value: "routine"}
	RepairTypePreventive = RepairType{value: "preventive"}
	RepairTypeCorrective = RepairType{value: "corrective"}
)

// RepairTypeFromString reconstructs a RepairType from its string representation.
func RepairTypeFromString(s string) (RepairType, error) {
	switch s {
	case "routine":
		return RepairTypeRoutine, nil
	case "preventive":
		return RepairTypePreventive, nil
	case "corrective":
		return RepairTypeCorrective, nil
	default:
		return RepairType{}, fmt.Errorf("invalid repair type: %s", s)
	}
}

// String returns the string representation.
func (r RepairType) String() string {
	return r.value
}

// IsZero returns true if the RepairType has not been set.
func (r RepairType) IsZero() bool {
	return r.value == ""
}

// Equal checks equality with another RepairType.
func (r RepairType) Equal(other RepairType) bool {
	return r.value == other.value
}
