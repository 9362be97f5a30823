package courier

import (
	"fmt"
	"strings"

	"pizzeria/internal/pkg/errs"
)

type VehicleType int

const (
	VehicleUnknown VehicleType = iota
	VehicleBike
	VehicleScooter
	VehicleCar
)

func getVehicleStrings() map[VehicleType]string {
	return map[VehicleType]string{
		VehicleUnknown: "Unknown",
		VehicleBike:    "Bike",
		VehicleScooter: "Scooter",
		VehicleCar:     "Car",
	}
}

// ParseVehicleType maps a case-insensitive vehicle name to its VehicleType.
func ParseVehicleType(s string) (VehicleType, error) {
	for vehicle, name := range getVehicleStrings() {
		if vehicle != VehicleUnknown && strings.EqualFold(strings.TrimSpace(s), name) {
			return vehicle, nil
		}
	}
	return VehicleUnknown, errs.NewValueIsInvalidErrorWithCause("vehicle type", fmt.Errorf("%q is not Bike, Scooter or Car", s))
}

func (v VehicleType) Validate() error {
	if v <= VehicleUnknown || v > VehicleCar {
		return errs.NewValueIsInvalidErrorWithCause("vehicle type", fmt.Errorf("%d is not a valid vehicle type", v))
	}
	return nil
}

func (v VehicleType) String() string {
	if str, ok := getVehicleStrings()[v]; ok {
		return str
	}
	return "Unknown"
}
