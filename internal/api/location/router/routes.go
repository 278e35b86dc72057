// Package router đăng ký các route thuộc domain location.
package router

import (
	"github.com/gofiber/fiber/v3"

	locationhdl "cellic_store/internal/api/location/handler"
	apirouter "cellic_store/internal/api/router"
)

// Register đăng ký tất cả route location lên v1. Toàn bộ là route công khai.
func Register(v1 fiber.Router, _ *apirouter.Router) error {
	locationHandler := locationhdl.NewLocationHandler()

	v1.Get("/locations/provinces", locationHandler.HandleProvinces)
	v1.Get("/locations/districts/:provinceCode", locationHandler.HandleDistricts)
	v1.Get("/locations/wards/:districtCode", locationHandler.HandleWards)

	return nil
}
