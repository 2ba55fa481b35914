package models

import "slices"

// Category is the product category code sent over the wire.
type Category string

const (
	CategoryLaptop        Category = "LAPTOP"
	CategoryDesktop       Category = "DESKTOP"
	CategorySmartphone    Category = "SMARTPHONE"
	CategoryTablet        Category = "TABLET"
	CategoryWearable      Category = "WEARABLE"
	CategoryMonitor       Category = "MONITOR"
	CategoryPrinter       Category = "PRINTER"
	CategoryAccessory     Category = "ACCESSORY"
	CategoryNetworkDevice Category = "NETWORK_DEVICE"
)

// Categories lists every category in display order. The first entry is the
// default for a blank form.
var Categories = []Category{
	CategoryLaptop,
	CategoryDesktop,
	CategorySmartphone,
	CategoryTablet,
	CategoryWearable,
	CategoryMonitor,
	CategoryPrinter,
	CategoryAccessory,
	CategoryNetworkDevice,
}

var categoryLabels = map[Category]string{
	CategoryLaptop:        "Laptop",
	CategoryDesktop:       "Desktop computer",
	CategorySmartphone:    "Smartphone",
	CategoryTablet:        "Tablet",
	CategoryWearable:      "Wearable device",
	CategoryMonitor:       "Monitor",
	CategoryPrinter:       "Printer",
	CategoryAccessory:     "Accessory",
	CategoryNetworkDevice: "Network device",
}

// DefaultCategory is preselected in a blank product form.
func DefaultCategory() Category {
	return Categories[0]
}

// Valid reports exact, case-sensitive membership.
func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}

// Label is the human readable name, or the raw code for unknown values.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}
