package http

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// fromAPIUUID returns the zero kernel.UUID for ids that do not convert, so that
// command constructors report them as required values.
func fromAPIUUID(id openapi_types.UUID) kernel.UUID {
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}
	}
	return converted
}

func toAPIUUIDPtr(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	converted := id.Bytes()
	return &converted
}

func toAPIStatus(status order.Status) servers.OrderStatus {
	return servers.OrderStatus(status.String())
}
