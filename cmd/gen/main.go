package main

import (
	"campusmarket/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ShopModel{},
		model.FoodItemModel{},
		model.ElectronicsItemModel{},
		model.GroceryItemModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.PaymentModel{},
		model.UserProfileModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
