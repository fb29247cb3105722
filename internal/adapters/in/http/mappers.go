package http

import (
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/company"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func uuidPtr(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toOrder(o *order.Order, v *vehicle.Vehicle) servers.Order {
	dims := o.Dimensions()
	response := servers.Order{
		Id:                o.ID().Bytes(),
		UserId:            o.OwnerID().Bytes(),
		ItemName:          optionalText(o.ItemName()),
		LengthCm:          dims.LengthCm(),
		WidthCm:           dims.WidthCm(),
		HeightCm:          dims.HeightCm(),
		WeightKg:          o.WeightKg(),
		VolumeM3:          o.VolumeM3(),
		Latitude:          o.Pickup().Latitude(),
		Longitude:         o.Pickup().Longitude(),
		Status:            servers.OrderStatus(o.Status().String()),
		AssignedVehicleId: uuidPtr(o.VehicleID()),
	}
	if v != nil && o.VehicleID() != nil {
		number := v.Number()
		response.AssignedVehicleNumber = &number
	}
	return response
}

func toOrderFromView(view queries.OrderView) servers.Order {
	return servers.Order{
		Id:                    view.ID.Bytes(),
		UserId:                view.OwnerID.Bytes(),
		ItemName:              optionalText(view.ItemName),
		LengthCm:              view.LengthCm,
		WidthCm:               view.WidthCm,
		HeightCm:              view.HeightCm,
		WeightKg:              view.WeightKg,
		VolumeM3:              view.VolumeM3,
		Latitude:              view.Latitude,
		Longitude:             view.Longitude,
		Status:                servers.OrderStatus(view.Status),
		AssignedVehicleId:     uuidPtr(view.VehicleID),
		AssignedVehicleNumber: view.VehicleNumber,
	}
}

func toZone(z *zone.Zone) servers.Zone {
	coordinates := [][]float64{}
	if boundary, err := z.Boundary(); err == nil {
		coordinates = boundary.Pairs()
	}
	return servers.Zone{Id: z.ID().Bytes(), Name: z.Name(), Coordinates: coordinates}
}

func toZoneFromView(view queries.ZoneView) servers.Zone {
	coordinates := view.Coordinates
	if coordinates == nil {
		coordinates = [][]float64{}
	}
	return servers.Zone{Id: view.ID.Bytes(), Name: view.Name, Coordinates: coordinates}
}

// toNewVehicle renders a vehicle that has just been registered, so it
// carries no committed load yet.
func toNewVehicle(v *vehicle.Vehicle, z *zone.Zone) servers.Vehicle {
	response := servers.Vehicle{
		Id:            v.ID().Bytes(),
		VehicleNumber: v.Number(),
		MaxVolumeM3:   v.MaxVolumeM3(),
		MaxWeightKg:   v.MaxWeightKg(),
		ZoneId:        uuidPtr(v.ZoneID()),
	}
	if z != nil {
		zoneResponse := toZone(z)
		response.Zone = &zoneResponse
	}
	return response
}

func toVehicleFromView(view queries.VehicleView) servers.Vehicle {
	response := servers.Vehicle{
		Id:                    view.ID.Bytes(),
		VehicleNumber:         view.Number,
		MaxVolumeM3:           view.MaxVolumeM3,
		MaxWeightKg:           view.MaxWeightKg,
		ZoneId:                uuidPtr(view.ZoneID),
		CurrentVolumeM3:       view.CurrentVolumeM3,
		UtilizationPercentage: view.UtilizationPercentage,
	}
	if view.Zone != nil {
		zoneResponse := toZoneFromView(*view.Zone)
		response.Zone = &zoneResponse
	}
	return response
}

func toCompany(c *company.Company) servers.Company {
	return servers.Company{
		Id:        c.ID().Bytes(),
		Name:      c.Name(),
		GstNumber: c.GSTNumber(),
		Address:   c.Address(),
	}
}

func toUser(u *user.User, c *company.Company) servers.User {
	response := servers.User{
		Id:        u.ID().Bytes(),
		Email:     u.Email(),
		Role:      servers.UserRole(u.Role().String()),
		CompanyId: uuidPtr(u.CompanyID()),
	}
	if c != nil {
		companyResponse := toCompany(c)
		response.Company = &companyResponse
	}
	return response
}

func toUserFromView(view queries.UserView) servers.User {
	response := servers.User{
		Id:        view.ID.Bytes(),
		Email:     view.Email,
		Role:      servers.UserRole(view.Role.String()),
		CompanyId: uuidPtr(view.CompanyID),
	}
	if view.Company != nil {
		response.Company = &servers.Company{
			Id:        view.Company.ID.Bytes(),
			Name:      view.Company.Name,
			GstNumber: view.Company.GSTNumber,
			Address:   view.Company.Address,
		}
	}
	return response
}
