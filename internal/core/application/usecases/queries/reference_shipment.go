package queries

import "shiprates/internal/core/domain/model/shipment"

// ReferenceShipment is the fixed 5 kg, 30×20×15 cm US→US request used for the
// default quote set and the rate probe.
func ReferenceShipment() shipment.Request {
	origin, err := shipment.NewAddress("origin", "US", "New York", "10001", "NY")
	if err != nil {
		panic(err)
	}
	destination, err := shipment.NewAddress("destination", "US", "Los Angeles", "90001", "CA")
	if err != nil {
		panic(err)
	}
	parcel, err := shipment.NewParcel(5, 30, 20, 15)
	if err != nil {
		panic(err)
	}
	req, err := shipment.NewRequest(origin, destination, parcel, "", 0)
	if err != nil {
		panic(err)
	}
	return req
}
